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

// Package boundstest supplies a small, hand-built Oracle implementation
// good enough to drive the bounds package's own test suite: a fixed
// class hierarchy (Object at the root, Function/Future/FutureOr/Null as
// the engine's special classes, and Declare for adding ordinary classes
// such as num/int/double or a generic List) and a structural subtype
// checker over it. It is a test fixture, not a production
// subtype checker: the hierarchy is a single-superclass chain per class,
// no multiple inheritance, no diamond resolution.
package boundstest

import (
	bounds "github.com/google/cel-go-stdbounds"
	"github.com/google/cel-go-stdbounds/types"
)

// Oracle is a fixture class hierarchy: every class but Object has
// exactly one direct superclass, recorded here by pointer identity.
type Oracle struct {
	objectClass   *types.ClassRef
	functionClass *types.ClassRef
	futureClass   *types.ClassRef
	futureOrClass *types.ClassRef
	nullType      types.Type

	superOf map[*types.ClassRef]*types.ClassRef
}

var (
	_ types.ClassProvider = (*Oracle)(nil)
	_ bounds.Oracle        = (*Oracle)(nil)
)

// New returns an Oracle pre-populated with the engine's four special
// classes (Object, Function, Future<T>, FutureOr<T>) and the canonical
// Null interface type, all linked directly under Object.
func New() *Oracle {
	object := &types.ClassRef{Name: "Object"}
	function := &types.ClassRef{Name: "Function"}
	future := &types.ClassRef{Name: "Future", TypeParams: []*types.TypeParamDecl{{Name: "T", Variance: types.Covariant, Bound: types.NewInterface(object, types.Nullable, nil)}}}
	futureOr := &types.ClassRef{Name: "FutureOr", TypeParams: []*types.TypeParamDecl{{Name: "T", Variance: types.Covariant, Bound: types.NewInterface(object, types.Nullable, nil)}}}
	null := &types.ClassRef{Name: "Null"}

	o := &Oracle{
		objectClass:   object,
		functionClass: function,
		futureClass:   future,
		futureOrClass: futureOr,
		nullType:      types.NewInterface(null, types.NonNullable, nil),
		superOf:       make(map[*types.ClassRef]*types.ClassRef),
	}
	o.superOf[function] = object
	o.superOf[future] = object
	o.superOf[futureOr] = object
	o.superOf[null] = object
	return o
}

func (o *Oracle) ObjectClass() *types.ClassRef   { return o.objectClass }
func (o *Oracle) FunctionClass() *types.ClassRef { return o.functionClass }
func (o *Oracle) FutureClass() *types.ClassRef   { return o.futureClass }
func (o *Oracle) FutureOrClass() *types.ClassRef { return o.futureOrClass }
func (o *Oracle) NullType() types.Type           { return o.nullType }

// Declare registers a new class as a direct subclass of super (pass
// o.ObjectClass() for a class that derives directly from Object), and
// returns the new ClassRef for the caller to build InterfaceType uses
// with.
func (o *Oracle) Declare(name string, super *types.ClassRef, typeParams ...*types.TypeParamDecl) *types.ClassRef {
	c := &types.ClassRef{Name: name, TypeParams: typeParams}
	o.superOf[c] = super
	return c
}

// isAncestor reports whether ancestor is class or one of its transitive
// superclasses.
func (o *Oracle) isAncestor(ancestor, class *types.ClassRef) bool {
	for c := class; c != nil; c = o.superOf[c] {
		if c == ancestor {
			return true
		}
	}
	return false
}

func nullabilityCompatible(sub, sup types.Nullability, mode bounds.SubtypeMode) bool {
	if mode == bounds.IgnoringNullabilities {
		return true
	}
	if sup == types.Legacy || sub == types.Legacy {
		return true
	}
	if sup == types.Nullable {
		return true
	}
	return sub == types.NonNullable
}

// IsSubtype is a structural subtype check: identical class with pointwise
// variance-correct type arguments, or sub's chain of single-superclass
// links reaching sup's class (arity-1 generics pass their single type
// argument straight through to the superclass use, since every fixture
// class here has at most one type parameter).
func (o *Oracle) IsSubtype(sub, sup types.Type, mode bounds.SubtypeMode) bool {
	if sub.Equals(sup) {
		return true
	}
	switch sup.Kind() {
	case types.KindDynamic, types.KindVoid, types.KindUnknown:
		return true
	}
	switch sub.Kind() {
	case types.KindNever, types.KindBottom, types.KindUnknown:
		return true
	}
	if !nullabilityCompatible(sub.Nullability(), sup.Nullability(), mode) {
		return false
	}

	if subFn, ok := sub.(*types.FunctionType); ok {
		supFn, ok := sup.(*types.FunctionType)
		if !ok {
			return types.IsObjectUse(o, sup)
		}
		return o.functionIsSubtype(subFn, supFn, mode)
	}

	subI, ok := sub.(*types.InterfaceType)
	if !ok {
		return false
	}
	supI, ok := sup.(*types.InterfaceType)
	if !ok {
		return false
	}
	if supI.Class == o.objectClass {
		return true
	}
	if subI.Class == supI.Class {
		if len(subI.TypeArguments) != len(supI.TypeArguments) {
			return false
		}
		for i, p := range subI.Class.TypeParams {
			a, b := subI.TypeArguments[i], supI.TypeArguments[i]
			switch p.Variance {
			case types.Contravariant:
				if !o.IsSubtype(b, a, mode) {
					return false
				}
			case types.Invariant:
				if !o.IsSubtype(a, b, mode) || !o.IsSubtype(b, a, mode) {
					return false
				}
			default:
				if !o.IsSubtype(a, b, mode) {
					return false
				}
			}
		}
		return true
	}
	if !o.isAncestor(supI.Class, subI.Class) {
		return false
	}
	// Fixture limitation: every non-Object class here derives directly
	// from Object, so sub's own type arguments are sup's without any
	// intermediate substitution to carry out.
	args := subI.TypeArguments
	if len(args) != len(supI.TypeArguments) {
		return len(supI.TypeArguments) == 0
	}
	for i, a := range args {
		if !o.IsSubtype(a, supI.TypeArguments[i], mode) {
			return false
		}
	}
	return true
}

func (o *Oracle) functionIsSubtype(sub, sup *types.FunctionType, mode bounds.SubtypeMode) bool {
	if len(sub.TypeParameters) != len(sup.TypeParameters) {
		return false
	}
	if len(sub.Positional) < len(sup.Positional) {
		return false
	}
	if sub.RequiredPositionalCount > sup.RequiredPositionalCount {
		return false
	}
	for i, supParam := range sup.Positional {
		if !o.IsSubtype(supParam, sub.Positional[i], mode) {
			return false
		}
	}
	for _, supNamed := range sup.Named {
		found := false
		for _, subNamed := range sub.Named {
			if subNamed.Name == supNamed.Name {
				found = true
				if supNamed.IsRequired && !subNamed.IsRequired {
					return false
				}
				if !o.IsSubtype(supNamed.Type, subNamed.Type, mode) {
					return false
				}
				break
			}
		}
		if !found {
			return false
		}
	}
	return o.IsSubtype(sub.ReturnType, sup.ReturnType, mode)
}

// AreMutualSubtypes reports whether a and b are subtypes of each other.
func (o *Oracle) AreMutualSubtypes(a, b types.Type, mode bounds.SubtypeMode) bool {
	return o.IsSubtype(a, b, mode) && o.IsSubtype(b, a, mode)
}

// LegacyLeastUpperBound walks both chains to Object, returning the
// nearest common ancestor use. Type arguments are kept only when a and b
// are uses of the same class (a's arguments are returned); any other
// common ancestor is returned without type arguments.
func (o *Oracle) LegacyLeastUpperBound(a, b *types.InterfaceType, client bounds.ClientContext) *types.InterfaceType {
	ancestors := make(map[*types.ClassRef]bool)
	for c := a.Class; c != nil; c = o.superOf[c] {
		ancestors[c] = true
	}
	for c := b.Class; c != nil; c = o.superOf[c] {
		if ancestors[c] {
			if c == a.Class && c == b.Class {
				return types.NewInterface(c, types.Unite(a.Nullability(), b.Nullability()), a.TypeArguments)
			}
			return types.NewInterface(c, types.Unite(a.Nullability(), b.Nullability()), nil)
		}
	}
	return types.NewInterface(o.objectClass, types.Unite(a.Nullability(), b.Nullability()), nil)
}
