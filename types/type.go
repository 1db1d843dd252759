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

// Package types declares the tagged-variant type representation shared by
// the standard bounds engine: the nullary and structural forms a client
// language can build, plus the nullability algebra that every variant
// carries.
package types

import "fmt"

// TypeKind identifies which concrete shape a Type value holds.
type TypeKind int

const (
	KindDynamic TypeKind = iota
	KindVoid
	KindInvalid
	KindNever
	KindBottom
	KindUnknown
	KindInterface
	KindFunction
	KindTypeParameter
)

func (k TypeKind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindVoid:
		return "void"
	case KindInvalid:
		return "invalid"
	case KindNever:
		return "never"
	case KindBottom:
		return "bottom"
	case KindUnknown:
		return "unknown"
	case KindInterface:
		return "interface"
	case KindFunction:
		return "function"
	case KindTypeParameter:
		return "typeParameter"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Type is implemented by every form in the type lattice. Types are
// immutable; WithNullability returns a fresh value rather than mutating
// the receiver.
type Type interface {
	Kind() TypeKind
	Equals(other Type) bool
	String() string

	// Nullability returns the type's nullability tag. Nullary forms that
	// never carry a tag (Dynamic, Void, Invalid, Unknown) report
	// NonNullable.
	Nullability() Nullability

	// WithNullability returns a copy of the receiver carrying n. Forms
	// that never carry a tag return the receiver unchanged.
	WithNullability(n Nullability) Type
}

// NonNull strips the nullability tag from t, returning the non-nullable
// form of the same shape. This is the nonNull(T) helper referenced
// throughout the predicate and SLB/SUB rules.
func NonNull(t Type) Type {
	if t.Nullability() == NonNullable {
		return t
	}
	return t.WithNullability(NonNullable)
}

// IsPotentiallyNullable reports whether t's tag is Nullable or Legacy --
// either could denote a null value at runtime.
func IsPotentiallyNullable(t Type) bool {
	n := t.Nullability()
	return n == Nullable || n == Legacy
}
