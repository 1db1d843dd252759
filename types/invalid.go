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

// Invalid marks a type that failed elaboration upstream. The bounds
// engine never produces it, but must not crash when handed one -- TOP,
// OBJECT, BOTTOM, and NULL are all false on Invalid per spec.
var Invalid Type = &invalidType{}

type invalidType struct{}

var _ Type = &invalidType{}

func (i *invalidType) Kind() TypeKind { return KindInvalid }

func (i *invalidType) Equals(t Type) bool {
	_, ok := t.(*invalidType)
	return ok
}

func (i *invalidType) String() string { return "<invalid>" }

func (i *invalidType) Nullability() Nullability { return NonNullable }

func (i *invalidType) WithNullability(Nullability) Type { return i }
