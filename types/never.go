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

// NeverType is the bottom of the nullability-aware lattice. Unlike
// Dynamic/Void/Invalid/Unknown it carries a nullability tag: Never? and
// Never* both reduce semantically to Null, which is why BOTTOM(T) in
// predicates.go only matches the non-nullable form.
type NeverType struct {
	nullability Nullability
}

var _ Type = &NeverType{}

// NewNever returns the Never type carrying nullability n.
func NewNever(n Nullability) *NeverType {
	return &NeverType{nullability: n}
}

func (nv *NeverType) Kind() TypeKind { return KindNever }

func (nv *NeverType) Equals(t Type) bool {
	other, ok := t.(*NeverType)
	if !ok {
		return false
	}
	return nv.nullability == other.nullability
}

func (nv *NeverType) String() string { return "Never" + nv.nullability.String() }

func (nv *NeverType) Nullability() Nullability { return nv.nullability }

func (nv *NeverType) WithNullability(n Nullability) Type { return NewNever(n) }
