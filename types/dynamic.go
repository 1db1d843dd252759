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

// Dynamic is the singleton "dynamic" type: the fully permissive top type
// that never carries a nullability tag.
var Dynamic Type = &dynamicType{}

type dynamicType struct{}

var _ Type = &dynamicType{}

func (d *dynamicType) Kind() TypeKind { return KindDynamic }

func (d *dynamicType) Equals(t Type) bool {
	_, ok := t.(*dynamicType)
	return ok
}

func (d *dynamicType) String() string { return "dynamic" }

func (d *dynamicType) Nullability() Nullability { return NonNullable }

func (d *dynamicType) WithNullability(Nullability) Type { return d }
