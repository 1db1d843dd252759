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

import (
	"fmt"
	"strings"
)

// Named is a named parameter in a function type's named-parameter suffix.
type Named struct {
	Name       string
	Type       Type
	IsRequired bool
}

func (n Named) equals(other Named) bool {
	return n.Name == other.Name && n.IsRequired == other.IsRequired && n.Type.Equals(other.Type)
}

func (n Named) String() string {
	prefix := ""
	if n.IsRequired {
		prefix = "required "
	}
	return fmt.Sprintf("%s%s %s", prefix, n.Type.String(), n.Name)
}

// FunctionType is a structural function type: positional parameters (a
// prefix of which are required), a sorted suffix of named parameters, an
// optional list of generic type parameters, and a return type.
//
// Named is assumed sorted lexicographically by name with no duplicate
// names; construction sites are responsible for that invariant, the
// engine does not re-check it (see IsSortedNamed for a test helper that
// does).
type FunctionType struct {
	TypeParameters          []*TypeParamDecl
	RequiredPositionalCount int
	Positional              []Type
	Named                   []Named
	ReturnType              Type
	nullability             Nullability
}

var _ Type = &FunctionType{}

// NewFunction constructs a function type.
func NewFunction(typeParameters []*TypeParamDecl, requiredPositionalCount int, positional []Type, named []Named, returnType Type, n Nullability) *FunctionType {
	return &FunctionType{
		TypeParameters:          typeParameters,
		RequiredPositionalCount: requiredPositionalCount,
		Positional:              positional,
		Named:                   named,
		ReturnType:              returnType,
		nullability:             n,
	}
}

func (f *FunctionType) Kind() TypeKind { return KindFunction }

func (f *FunctionType) Equals(t Type) bool {
	other, ok := t.(*FunctionType)
	if !ok {
		return false
	}
	if f.nullability != other.nullability {
		return false
	}
	if f.RequiredPositionalCount != other.RequiredPositionalCount {
		return false
	}
	if len(f.TypeParameters) != len(other.TypeParameters) {
		return false
	}
	for i, tp := range f.TypeParameters {
		if tp.Name != other.TypeParameters[i].Name || !tp.Bound.Equals(other.TypeParameters[i].Bound) {
			return false
		}
	}
	if len(f.Positional) != len(other.Positional) {
		return false
	}
	for i, p := range f.Positional {
		if !p.Equals(other.Positional[i]) {
			return false
		}
	}
	if len(f.Named) != len(other.Named) {
		return false
	}
	for i, nm := range f.Named {
		if !nm.equals(other.Named[i]) {
			return false
		}
	}
	return f.ReturnType.Equals(other.ReturnType)
}

func (f *FunctionType) String() string {
	var b strings.Builder
	if len(f.TypeParameters) > 0 {
		b.WriteString("<")
		for i, tp := range f.TypeParameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(tp.Name)
		}
		b.WriteString(">")
	}
	b.WriteString("(")
	for i, p := range f.Positional {
		if i > 0 {
			b.WriteString(", ")
		}
		if i >= f.RequiredPositionalCount {
			b.WriteString("[")
			b.WriteString(p.String())
			b.WriteString("]")
		} else {
			b.WriteString(p.String())
		}
	}
	if len(f.Named) > 0 {
		if len(f.Positional) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("{")
		for i, nm := range f.Named {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(nm.String())
		}
		b.WriteString("}")
	}
	b.WriteString(") -> ")
	b.WriteString(f.ReturnType.String())
	b.WriteString(f.nullability.String())
	return b.String()
}

func (f *FunctionType) Nullability() Nullability { return f.nullability }

func (f *FunctionType) WithNullability(n Nullability) Type {
	if n == f.nullability {
		return f
	}
	return NewFunction(f.TypeParameters, f.RequiredPositionalCount, f.Positional, f.Named, f.ReturnType, n)
}

// HasOptionalPositional reports whether f has any positional parameter
// beyond its required prefix.
func (f *FunctionType) HasOptionalPositional() bool {
	return len(f.Positional) > f.RequiredPositionalCount
}

// IsSortedNamed reports whether named is sorted lexicographically by name
// with no duplicates -- the invariant construction sites must maintain.
func IsSortedNamed(named []Named) bool {
	for i := 1; i < len(named); i++ {
		if named[i-1].Name >= named[i].Name {
			return false
		}
	}
	return true
}
