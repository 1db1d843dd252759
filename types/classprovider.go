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

// ClassProvider gives the predicates and structural rules access to the
// handful of class identities the lattice treats specially, and to the
// canonical "Null" type used outside nullability-aware mode. Each
// accessor is expected to return the same pointer on every call.
type ClassProvider interface {
	ObjectClass() *ClassRef
	FunctionClass() *ClassRef
	FutureClass() *ClassRef
	FutureOrClass() *ClassRef
	NullType() Type
}

// IsObjectUse reports whether t is a bare use of the Object class (any
// nullability, no type arguments).
func IsObjectUse(classes ClassProvider, t Type) bool {
	i, ok := t.(*InterfaceType)
	return ok && i.Class == classes.ObjectClass() && len(i.TypeArguments) == 0
}

// FutureOrArgument returns the single type argument of t if t is a use of
// FutureOr, and ok=true.
func FutureOrArgument(classes ClassProvider, t Type) (Type, bool) {
	i, ok := t.(*InterfaceType)
	if !ok || i.Class != classes.FutureOrClass() || len(i.TypeArguments) != 1 {
		return nil, false
	}
	return i.TypeArguments[0], true
}

// FutureArgument returns the single type argument of t if t is a use of
// Future, and ok=true.
func FutureArgument(classes ClassProvider, t Type) (Type, bool) {
	i, ok := t.(*InterfaceType)
	if !ok || i.Class != classes.FutureClass() || len(i.TypeArguments) != 1 {
		return nil, false
	}
	return i.TypeArguments[0], true
}

// ComputeNullabilityOfFutureOr implements invariant 5: the nullability a
// `FutureOr<inner>` wrapper effectively has, given the wrapper's own tag
// and the nullability of inner. It is non-nullable iff both are; nullable
// if either is; legacy otherwise.
func ComputeNullabilityOfFutureOr(wrapperNullability Nullability, inner Type) Nullability {
	innerNullability := inner.Nullability()
	if wrapperNullability == NonNullable && innerNullability == NonNullable {
		return NonNullable
	}
	if wrapperNullability == Nullable || innerNullability == Nullable {
		return Nullable
	}
	return Legacy
}

// ComputeNullability returns the effective nullability of t, resolving
// FutureOr wrappers per ComputeNullabilityOfFutureOr and otherwise
// returning t's own tag.
func ComputeNullability(classes ClassProvider, t Type) Nullability {
	if inner, ok := FutureOrArgument(classes, t); ok {
		return ComputeNullabilityOfFutureOr(t.Nullability(), inner)
	}
	return t.Nullability()
}
