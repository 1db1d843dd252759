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

// Bottom is the legacy, nullability-oblivious bottom type. It only
// appears in oblivious-mode results (§4.6); it never carries a
// nullability tag.
var Bottom Type = &bottomType{}

type bottomType struct{}

var _ Type = &bottomType{}

func (b *bottomType) Kind() TypeKind { return KindBottom }

func (b *bottomType) Equals(t Type) bool {
	_, ok := t.(*bottomType)
	return ok
}

func (b *bottomType) String() string { return "Bottom" }

func (b *bottomType) Nullability() Nullability { return NonNullable }

func (b *bottomType) WithNullability(Nullability) Type { return b }
