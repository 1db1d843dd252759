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

import "testing"

func TestSubstituteReplacesBareUse(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	use := NewTypeParameterUse(x, NonNullable)

	s := NewSubstitution()
	replacement := NewInterface(object, NonNullable, nil)
	s.Add(x, replacement)

	got := Substitute(use, s)
	if !got.Equals(replacement) {
		t.Errorf("Substitute(X, {X->Object}) = %v, want %v", got, replacement)
	}
}

func TestSubstituteLeavesUnboundParametersAlone(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	y := &TypeParamDecl{Name: "Y", Bound: NewInterface(object, Nullable, nil)}
	useY := NewTypeParameterUse(y, NonNullable)

	s := NewSubstitution()
	s.Add(x, NewInterface(object, NonNullable, nil))

	if got := Substitute(useY, s); got != useY {
		t.Errorf("Substitute(Y, {X->Object}) = %v, want Y unchanged", got)
	}
}

func TestSubstituteUnitesNullability(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	use := NewTypeParameterUse(x, Nullable)

	s := NewSubstitution()
	s.Add(x, NewInterface(object, NonNullable, nil))

	got := Substitute(use, s)
	if got.Nullability() != Nullable {
		t.Errorf("Substitute(X?, {X->Object}).Nullability() = %v, want Nullable (unite(nonNullable, nullable))", got.Nullability())
	}
}

func TestSubstituteIntoInterfaceArguments(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	list := &ClassRef{Name: "List", TypeParams: []*TypeParamDecl{{Name: "E", Variance: Covariant}}}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	listOfX := NewInterface(list, NonNullable, []Type{NewTypeParameterUse(x, NonNullable)})

	s := NewSubstitution()
	intType := NewInterface(&ClassRef{Name: "int"}, NonNullable, nil)
	s.Add(x, intType)

	got := Substitute(listOfX, s)
	want := NewInterface(list, NonNullable, []Type{intType})
	if !got.Equals(want) {
		t.Errorf("Substitute(List<X>, {X->int}) = %v, want %v", got, want)
	}
}

func TestSubstituteNestedFunctionTypeParameterShadows(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	innerX := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}

	// <X>(X) -> X, where the positional parameter and return type use the
	// function's OWN X (innerX), a distinct declaration from the outer X
	// being substituted.
	inner := NewFunction(
		[]*TypeParamDecl{innerX},
		1,
		[]Type{NewTypeParameterUse(innerX, NonNullable)},
		nil,
		NewTypeParameterUse(innerX, NonNullable),
		NonNullable,
	)

	s := NewSubstitution()
	s.Add(x, NewInterface(&ClassRef{Name: "int"}, NonNullable, nil))

	got := Substitute(inner, s)
	if !got.Equals(inner) {
		t.Errorf("Substitute(<X>(X)->X, {outerX->int}) = %v, want unchanged (shadowed)", got)
	}
}

func TestSubstitutionCopyIsIndependent(t *testing.T) {
	object := &ClassRef{Name: "Object"}
	x := &TypeParamDecl{Name: "X", Bound: NewInterface(object, Nullable, nil)}
	s := NewSubstitution()
	s.Add(x, NewInterface(object, NonNullable, nil))

	c := s.Copy()
	y := &TypeParamDecl{Name: "Y", Bound: NewInterface(object, Nullable, nil)}
	c.Add(y, NewInterface(object, NonNullable, nil))

	if _, ok := s.Find(y); ok {
		t.Error("mutating a copy affected the original substitution")
	}
	if _, ok := c.Find(x); !ok {
		t.Error("Copy() lost an entry present before copying")
	}
}
