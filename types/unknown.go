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

// Unknown is the inference placeholder "?": DOWN/UP pass the other operand
// through unchanged whenever either side is Unknown.
var Unknown Type = &unknownType{}

type unknownType struct{}

var _ Type = &unknownType{}

func (u *unknownType) Kind() TypeKind { return KindUnknown }

func (u *unknownType) Equals(t Type) bool {
	_, ok := t.(*unknownType)
	return ok
}

func (u *unknownType) String() string { return "?" }

func (u *unknownType) Nullability() Nullability { return NonNullable }

func (u *unknownType) WithNullability(Nullability) Type { return u }
