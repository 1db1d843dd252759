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

// obliviousDown implements the legacy, nullability-oblivious SLB (§4.6),
// used when the client library predates nullability tracking.
func obliviousDown(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	if t1.Equals(t2) {
		return t1, nil
	}
	if isUnknown(t1) {
		return t2, nil
	}
	if isUnknown(t2) {
		return t1, nil
	}

	// Void/Dynamic/legacy-Object are neutral downward: the other operand
	// wins outright. Void is checked first since it out-ranks Dynamic.
	if t1.Kind() == types.KindVoid {
		return t2, nil
	}
	if t2.Kind() == types.KindVoid {
		return t1, nil
	}
	if t1.Kind() == types.KindDynamic {
		return t2, nil
	}
	if t2.Kind() == types.KindDynamic {
		return t1, nil
	}
	if types.IsObjectUse(oracle, t1) {
		return t2, nil
	}
	if types.IsObjectUse(oracle, t2) {
		return t1, nil
	}

	// Bottom/Null are absorbing downward.
	if t1.Kind() == types.KindBottom || t1.Equals(oracle.NullType()) {
		return t1, nil
	}
	if t2.Kind() == types.KindBottom || t2.Equals(oracle.NullType()) {
		return t2, nil
	}

	if r, ok, err := obliviousFutureOrDown(oracle, client, t1, t2); ok {
		return r, err
	}

	f1, isF1 := t1.(*types.FunctionType)
	f2, isF2 := t2.(*types.FunctionType)
	if isF1 && isF2 {
		result, err := downFunction(oracle, obliviousClientContext, f1, f2)
		if err != nil {
			return nil, err
		}
		if fn, ok := result.(*types.FunctionType); ok && len(fn.Named) > 0 && fn.HasOptionalPositional() {
			return types.Bottom, nil
		}
		return result, nil
	}

	i1, ok1 := t1.(*types.InterfaceType)
	i2, ok2 := t2.(*types.InterfaceType)
	if ok1 && ok2 && i1.Class == i2.Class {
		if result, ok := obliviousSameClassInterface(oracle, i1, i2, false); ok {
			return result, nil
		}
		return oracle.LegacyLeastUpperBound(i1, i2, client), nil
	}

	mode := subtypeMode(client)
	if oracle.IsSubtype(t1, t2, mode) {
		return t1, nil
	}
	if oracle.IsSubtype(t2, t1, mode) {
		return t2, nil
	}

	return types.Bottom, nil
}

// obliviousUp implements the legacy, nullability-oblivious SUB (§4.6).
func obliviousUp(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	if t1.Equals(t2) {
		return t1, nil
	}
	if isUnknown(t1) {
		return t2, nil
	}
	if isUnknown(t2) {
		return t1, nil
	}

	// Void/Dynamic/legacy-Object are absorbing upward.
	if t1.Kind() == types.KindVoid || t2.Kind() == types.KindVoid {
		return types.Void, nil
	}
	if t1.Kind() == types.KindDynamic || t2.Kind() == types.KindDynamic {
		return types.Dynamic, nil
	}
	if types.IsObjectUse(oracle, t1) {
		return t1, nil
	}
	if types.IsObjectUse(oracle, t2) {
		return t2, nil
	}

	// Bottom/Null are neutral upward.
	if t1.Kind() == types.KindBottom || t1.Equals(oracle.NullType()) {
		return t2, nil
	}
	if t2.Kind() == types.KindBottom || t2.Equals(oracle.NullType()) {
		return t1, nil
	}

	f1, isF1 := t1.(*types.FunctionType)
	f2, isF2 := t2.(*types.FunctionType)
	if isF1 != isF2 {
		// Mixed Function/Interface: replace the Function by its legacy
		// raw form and retry as two interfaces.
		if isF1 {
			t1 = types.NewInterface(oracle.FunctionClass(), t1.Nullability(), nil)
		} else {
			t2 = types.NewInterface(oracle.FunctionClass(), t2.Nullability(), nil)
		}
		return obliviousUp(oracle, client, t1, t2)
	}
	if isF1 && isF2 {
		return upFunction(oracle, obliviousClientContext, f1, f2)
	}

	mode := subtypeMode(client)
	if oracle.IsSubtype(t1, t2, mode) {
		return t2, nil
	}
	if oracle.IsSubtype(t2, t1, mode) {
		return t1, nil
	}

	i1, ok1 := t1.(*types.InterfaceType)
	i2, ok2 := t2.(*types.InterfaceType)
	if ok1 && ok2 && i1.Class == i2.Class {
		if result, ok := obliviousSameClassInterface(oracle, i1, i2, true); ok {
			return result, nil
		}
		return oracle.LegacyLeastUpperBound(i1, i2, client), nil
	}
	if ok1 && ok2 {
		return oracle.LegacyLeastUpperBound(i1, i2, client), nil
	}

	// Unreachable fall-through (§4.7): the source asserts here. We
	// return Dynamic defensively rather than panic, an acceptable
	// strengthening per spec.
	return types.Dynamic, nil
}

// obliviousFutureOrDown applies the special FutureOr/Future SLB
// combination rules (§4.6). ok=false means neither operand is a FutureOr
// use and the caller should continue with the general rules.
func obliviousFutureOrDown(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, bool, error) {
	a1, isFutureOr1 := types.FutureOrArgument(oracle, t1)
	a2, isFutureOr2 := types.FutureOrArgument(oracle, t2)

	switch {
	case isFutureOr1 && isFutureOr2:
		inner, err := obliviousDown(oracle, client, a1, a2)
		if err != nil {
			return nil, true, err
		}
		n := types.Intersect(types.ComputeNullabilityOfFutureOr(t1.Nullability(), a1), types.ComputeNullabilityOfFutureOr(t2.Nullability(), a2))
		return types.NewInterface(oracle.FutureOrClass(), n, []types.Type{inner}), true, nil
	case isFutureOr1:
		if fa, isFuture := types.FutureArgument(oracle, t2); isFuture {
			inner, err := obliviousDown(oracle, client, a1, fa)
			if err != nil {
				return nil, true, err
			}
			n := types.Intersect(types.ComputeNullabilityOfFutureOr(t1.Nullability(), a1), t2.Nullability())
			return types.NewInterface(oracle.FutureClass(), n, []types.Type{inner}), true, nil
		}
		result, err := obliviousDown(oracle, client, a1, t2)
		return result, true, err
	case isFutureOr2:
		if fa, isFuture := types.FutureArgument(oracle, t1); isFuture {
			inner, err := obliviousDown(oracle, client, fa, a2)
			if err != nil {
				return nil, true, err
			}
			n := types.Intersect(t1.Nullability(), types.ComputeNullabilityOfFutureOr(t2.Nullability(), a2))
			return types.NewInterface(oracle.FutureClass(), n, []types.Type{inner}), true, nil
		}
		result, err := obliviousDown(oracle, client, t1, a2)
		return result, true, err
	default:
		return nil, false, nil
	}
}

// obliviousSameClassInterface is the oblivious-mode pointwise bound by
// variance. For SUB (forUp) it uses the same per-parameter rules as
// upSameClassInterface: covariant arguments use SUB, contravariant use SLB.
// For SLB the two are swapped: covariant arguments use SLB, contravariant
// use SUB. Mismatch in an invariant argument signals the caller to fall
// back to the legacy LUB oracle.
func obliviousSameClassInterface(oracle Oracle, i1, i2 *types.InterfaceType, forUp bool) (types.Type, bool) {
	params := i1.Class.TypeParams
	if len(params) != len(i1.TypeArguments) || len(params) != len(i2.TypeArguments) {
		return nil, false
	}
	args := make([]types.Type, len(params))
	mode := IgnoringNullabilities
	for idx, p := range params {
		a1, a2 := i1.TypeArguments[idx], i2.TypeArguments[idx]
		variance := p.Variance
		if forUp && variance != types.Invariant {
			if variance == types.Contravariant {
				variance = types.Covariant
			} else {
				variance = types.Contravariant
			}
		}
		switch variance {
		case types.Contravariant:
			r, err := obliviousUp(oracle, obliviousClientContext, a1, a2)
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
			r, err := obliviousDown(oracle, obliviousClientContext, a1, a2)
			if err != nil {
				return nil, false
			}
			args[idx] = r
		}
	}
	return types.NewInterface(i1.Class, types.NonNullable, args), true
}

// obliviousClientContext is a fixed, not-nullability-aware ClientContext
// used internally when a helper (downFunction/upFunction, the variance
// recursion) needs to force SubtypeCheckMode.ignoringNullabilities
// regardless of the caller's own client.
var obliviousClientContext = ClientContext{IsNonNullableByDefault: false}
