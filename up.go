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

// up implements the nullability-aware SUB rule (§4.3), mutually recursive
// with down.
func up(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	// Identity, Unknown: as in SLB.
	if t1.Equals(t2) {
		return t1, nil
	}
	if isUnknown(t1) {
		return t2, nil
	}
	if isUnknown(t2) {
		return t1, nil
	}

	top1, top2 := types.TOP(oracle, t1), types.TOP(oracle, t2)
	if top1 && top2 {
		return types.MoreTop(oracle, t1, t2)
	}
	if top1 {
		return t1, nil
	}
	if top2 {
		return t2, nil
	}

	bot1, bot2 := types.BOTTOM(oracle, t1), types.BOTTOM(oracle, t2)
	if bot1 && bot2 {
		// Both BOTTOM: the lower MOREBOTTOM loses; the higher wins.
		loser, err := types.MoreBottom(oracle, t1, t2)
		if err != nil {
			return nil, err
		}
		if loser == t1 {
			return t2, nil
		}
		return t1, nil
	}
	if bot1 {
		return t2, nil
	}
	if bot2 {
		return t1, nil
	}

	null1, null2 := types.NULL(oracle, t1), types.NULL(oracle, t2)
	if null1 && null2 {
		// Both NULL: the higher MOREBOTTOM (reversed polarity) wins.
		loser, err := types.MoreBottom(oracle, t1, t2)
		if err != nil {
			return nil, err
		}
		if loser == t1 {
			return t2, nil
		}
		return t1, nil
	}
	if null1 {
		return t2.WithNullability(types.Nullable), nil
	}
	if null2 {
		return t1.WithNullability(types.Nullable), nil
	}

	obj1, obj2 := types.OBJECT(oracle, t1), types.OBJECT(oracle, t2)
	if obj1 && obj2 {
		return types.MoreTop(oracle, t1, t2)
	}
	if obj1 {
		return upObjectWithOther(oracle, t2), nil
	}
	if obj2 {
		return upObjectWithOther(oracle, t1), nil
	}

	if tp1, ok := t1.(*types.TypeParameterType); ok {
		return upTypeParameter(oracle, client, tp1, t2)
	}
	if tp2, ok := t2.(*types.TypeParameterType); ok {
		return upTypeParameter(oracle, client, tp2, t1)
	}

	f1, isF1 := t1.(*types.FunctionType)
	f2, isF2 := t2.(*types.FunctionType)
	if isF1 && isF2 {
		return upFunction(oracle, client, f1, f2)
	}
	if isF1 != isF2 {
		fn, iface := f1, t2
		if isF2 {
			fn, iface = f2, t1
		}
		n := types.Unite(fn.Nullability(), iface.Nullability())
		if ifc, ok := iface.(*types.InterfaceType); ok && ifc.Class == oracle.FunctionClass() {
			return fn.WithNullability(n), nil
		}
		return types.NewInterface(oracle.ObjectClass(), n, nil), nil
	}

	mode := subtypeMode(client)
	n1, n2 := t1.Nullability(), t2.Nullability()
	if oracle.IsSubtype(t1, t2, mode) {
		return t2.WithNullability(types.Unite(n1, n2)), nil
	}
	if oracle.IsSubtype(t2, t1, mode) {
		return t1.WithNullability(types.Unite(n1, n2)), nil
	}

	i1, ok1 := t1.(*types.InterfaceType)
	i2, ok2 := t2.(*types.InterfaceType)
	if ok1 && ok2 && i1.Class == i2.Class {
		result, ok := upSameClassInterface(oracle, client, i1, i2)
		if ok {
			return result, nil
		}
	}
	if ok1 && ok2 {
		return oracle.LegacyLeastUpperBound(i1, i2, client), nil
	}
	return nil, wrapUnsupported("up: no common representation", t1, t2, nil)
}

func upObjectWithOther(oracle Oracle, other types.Type) types.Type {
	n := types.Nullable
	if other.Nullability() == types.NonNullable {
		n = types.NonNullable
	}
	return types.NewInterface(oracle.ObjectClass(), n, nil)
}

// upSameClassInterface computes the pointwise SUB of two uses of the same
// class, recursing per each type parameter's declared variance: covariant
// arguments use SUB, contravariant use SLB, invariant arguments must be
// mutual subtypes (falling back to the legacy LUB oracle otherwise).
func upSameClassInterface(oracle Oracle, client ClientContext, i1, i2 *types.InterfaceType) (types.Type, bool) {
	n := types.Unite(i1.Nullability(), i2.Nullability())
	params := i1.Class.TypeParams
	if len(params) != len(i1.TypeArguments) || len(params) != len(i2.TypeArguments) {
		return nil, false
	}
	args := make([]types.Type, len(params))
	mode := subtypeMode(client)
	for idx, p := range params {
		a1, a2 := i1.TypeArguments[idx], i2.TypeArguments[idx]
		switch p.Variance {
		case types.Contravariant:
			r, err := down(oracle, client, a1, a2)
			if err != nil {
				return nil, false
			}
			args[idx] = r
		case types.Invariant:
			if !oracle.AreMutualSubtypes(a1, a2, mode) {
				return nil, false
			}
			args[idx] = a1
		default: // Covariant
			r, err := up(oracle, client, a1, a2)
			if err != nil {
				return nil, false
			}
			args[idx] = r
		}
	}
	return types.NewInterface(i1.Class, n, args), true
}
