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

// upTypeParameter implements the type-parameter SUB rule (§4.5). tp is
// the type-parameter operand (bare `X extends B` or promoted `X & B`);
// other is the remaining operand. Termination: each recursive step
// substitutes X -> Object in B before recursing, strictly shrinking the
// portion of the bound graph that can still refer back to X.
func upTypeParameter(oracle Oracle, client ClientContext, tp *types.TypeParameterType, other types.Type) (types.Type, error) {
	self := tp.Demoted()
	n1, n2 := tp.Nullability(), other.Nullability()
	mode := subtypeMode(client)

	if oracle.IsSubtype(self, other, mode) {
		return other.WithNullability(types.Unite(n1, n2)), nil
	}
	if oracle.IsSubtype(other, self, mode) {
		return self.WithNullability(types.Unite(n1, n2)), nil
	}

	s := types.NewSubstitution()
	s.Add(tp.Param, types.NewInterface(oracle.ObjectClass(), types.NonNullable, nil))
	substitutedBound := types.Substitute(tp.EffectiveBound(), s)

	result, err := up(oracle, client, substitutedBound, other)
	if err != nil {
		return nil, err
	}
	return result.WithNullability(types.Unite(n1, n2)), nil
}
