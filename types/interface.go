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

// InterfaceType is a use of a nominal class, e.g. `List<int>` or the
// canonical `Object` (class ref with no type arguments).
type InterfaceType struct {
	Class         *ClassRef
	TypeArguments []Type
	nullability   Nullability
}

var _ Type = &InterfaceType{}

// NewInterface returns a use of class with the given nullability and type
// arguments (pass nil/empty for a non-generic class).
func NewInterface(class *ClassRef, n Nullability, typeArguments []Type) *InterfaceType {
	return &InterfaceType{Class: class, nullability: n, TypeArguments: typeArguments}
}

func (i *InterfaceType) Kind() TypeKind { return KindInterface }

func (i *InterfaceType) Equals(t Type) bool {
	other, ok := t.(*InterfaceType)
	if !ok {
		return false
	}
	if i.Class != other.Class || i.nullability != other.nullability {
		return false
	}
	if len(i.TypeArguments) != len(other.TypeArguments) {
		return false
	}
	for k, a := range i.TypeArguments {
		if !a.Equals(other.TypeArguments[k]) {
			return false
		}
	}
	return true
}

func (i *InterfaceType) String() string {
	if len(i.TypeArguments) == 0 {
		return i.Class.Name + i.nullability.String()
	}
	args := make([]string, len(i.TypeArguments))
	for k, a := range i.TypeArguments {
		args[k] = a.String()
	}
	return fmt.Sprintf("%s<%s>%s", i.Class.Name, strings.Join(args, ", "), i.nullability.String())
}

func (i *InterfaceType) Nullability() Nullability { return i.nullability }

func (i *InterfaceType) WithNullability(n Nullability) Type {
	if n == i.nullability {
		return i
	}
	return NewInterface(i.Class, n, i.TypeArguments)
}
