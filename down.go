// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bounds

import "github.com/google/cel-go-stdbounds/types"

// down implements the nullability-aware SLB rule (§4.2), mutually
// recursive with up through the structural Function case.
func down(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	// 1. Identity.
	if t1.Equals(t2) {
		return t1, nil
	}
	// 2. Unknown passes through.
	if isUnknown(t1) {
		return t2, nil
	}
	if isUnknown(t2) {
		return t1, nil
	}

	top1, top2 := types.TOP(oracle, t1), types.TOP(oracle, t2)
	if top1 && top2 {
		// 3. Both TOP: the higher MORETOP wins.
		return types.MoreTop(oracle, t1, t2)
	}
	if top1 {
		return t2, nil
	}
	if top2 {
		return t1, nil
	}

	bot1, bot2 := types.BOTTOM(oracle, t1), types.BOTTOM(oracle, t2)
	if bot1 && bot2 {
		// 4. Both BOTTOM: the lower MOREBOTTOM wins.
		return types.MoreBottom(oracle, t1, t2)
	}
	if bot1 {
		return t1, nil
	}
	if bot2 {
		return t2, nil
	}

	null1, null2 := types.NULL(oracle, t1), types.NULL(oracle, t2)
	if null1 && null2 {
		// 5. Both NULL: the lower MOREBOTTOM wins.
		return types.MoreBottom(oracle, t1, t2)
	}
	if null1 {
		if types.IsPotentiallyNullable(t2) {
			return t1, nil
		}
		return types.NewNever(types.NonNullable), nil
	}
	if null2 {
		if types.IsPotentiallyNullable(t1) {
			return t2, nil
		}
		return types.NewNever(types.NonNullable), nil
	}

	obj1, obj2 := types.OBJECT(oracle, t1), types.OBJECT(oracle, t2)
	if obj1 && obj2 {
		// 6. Both OBJECT: MORETOP wins.
		return types.MoreTop(oracle, t1, t2)
	}
	if obj1 {
		return downObjectWithOther(t2), nil
	}
	if obj2 {
		return downObjectWithOther(t1), nil
	}

	f1, ok1 := t1.(*types.FunctionType)
	f2, ok2 := t2.(*types.FunctionType)
	if ok1 && ok2 {
		// 7. Both Function: structural rule (§4.4).
		return downFunction(oracle, client, f1, f2)
	}

	// 8/9. Fall back to the general subtype relation.
	mode := subtypeMode(client)
	n1, n2 := t1.Nullability(), t2.Nullability()
	nn1, nn2 := types.NonNull(t1), types.NonNull(t2)
	if oracle.IsSubtype(nn1, nn2, mode) {
		return t1.WithNullability(types.Intersect(n1, n2)), nil
	}
	if oracle.IsSubtype(nn2, nn1, mode) {
		return t2.WithNullability(types.Intersect(n1, n2)), nil
	}
	return types.NewNever(types.Intersect(n1, n2)), nil
}

// downObjectWithOther resolves the "one OBJECT" branch of rule 6: every
// ordinary (non-TOP, non-BOTTOM, non-NULL, non-OBJECT) type is assumed
// Object-rooted, so a non-nullable other is already the tighter bound and
// a nullable/legacy other loses its nullability against non-nullable
// Object. The source's defensive `Never(nonNullable)` fallback for an
// `other` whose non-nullable form somehow still failed is unreachable
// under NonNull's postcondition and is intentionally not reproduced here
// (see DESIGN.md).
func downObjectWithOther(other types.Type) types.Type {
	if other.Nullability() == types.NonNullable {
		return other
	}
	return types.NonNull(other)
}

func subtypeMode(client ClientContext) SubtypeMode {
	if client.Aware() {
		return WithNullabilities
	}
	return IgnoringNullabilities
}

func isUnknown(t types.Type) bool {
	return t.Kind() == types.KindUnknown
}
