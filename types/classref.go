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

// Variance classifies how a class's type-parameter declaration behaves
// under pointwise SLB/SUB recursion on interface type arguments (§4.3).
// Covariant is the default when a declaration site leaves it unspecified.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
	Invariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	case Invariant:
		return "invariant"
	default:
		return "invariant"
	}
}

// TypeParamDecl is a declaration site for a type parameter: a class's
// generic parameter (where Variance matters) or a generic function type's
// parameter (where Variance is unused). Declarations are compared by
// pointer identity; a TypeParameterType's Param field points back at the
// declaration it is a use of.
type TypeParamDecl struct {
	Name     string
	Bound    Type
	Variance Variance
}

// ClassRef identifies a nominal class. Two references denote the same
// class iff they are the same pointer -- callers construct one ClassRef
// per class and share it.
type ClassRef struct {
	Name       string
	TypeParams []*TypeParamDecl
}
