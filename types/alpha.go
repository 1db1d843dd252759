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

package types

// BuildAlphaRenaming returns a substitution mapping each of g's type
// parameters to the corresponding parameter of f, for comparing the
// bounds of two generic function types up to alpha-renaming (§4.4). It
// requires len(f) == len(g); callers check that first.
func BuildAlphaRenaming(f, g []*TypeParamDecl) *Substitution {
	s := NewSubstitution()
	for i, gp := range g {
		s.Add(gp, NewTypeParameterUse(f[i], forAlphaRenaming))
	}
	return s
}

// forAlphaRenaming is the nullability tag attached to the renamed
// parameter uses built by BuildAlphaRenaming; only its identity matters
// for the bound-equality check, never its nullability, so NonNullable is
// as good a choice as any stable one.
const forAlphaRenaming = NonNullable
