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

// Void is the singleton "void" type.
var Void Type = &voidType{}

type voidType struct{}

var _ Type = &voidType{}

func (v *voidType) Kind() TypeKind { return KindVoid }

func (v *voidType) Equals(t Type) bool {
	_, ok := t.(*voidType)
	return ok
}

func (v *voidType) String() string { return "void" }

func (v *voidType) Nullability() Nullability { return NonNullable }

func (v *voidType) WithNullability(Nullability) Type { return v }
