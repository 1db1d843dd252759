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

// Package bounds implements the standard bounds engine: SLB (DOWN) and SUB
// (UP) over the type lattice defined in package types, parameterized by a
// client context and a caller-supplied Oracle for the handful of
// judgments (subtyping, legacy LUB) that live outside the structural
// algorithm.
package bounds

import "github.com/google/cel-go-stdbounds/types"

// SubtypeMode selects which subtype relation Oracle.IsSubtype consults:
// the nullability-aware one, or the legacy one that erases nullability
// tags before comparing.
type SubtypeMode int

const (
	WithNullabilities SubtypeMode = iota
	IgnoringNullabilities
)

// Oracle collects every external collaborator the engine consumes: the
// general subtype relation, the legacy class-hierarchy LUB walk, and the
// handful of class identities (§6). The engine never constructs one --
// callers supply an implementation backed by their own subtype checker
// and class hierarchy.
type Oracle interface {
	types.ClassProvider

	// IsSubtype reports whether sub is a subtype of sup under mode.
	IsSubtype(sub, sup types.Type, mode SubtypeMode) bool

	// AreMutualSubtypes reports whether a and b are subtypes of each
	// other under mode; a convenience over two IsSubtype calls.
	AreMutualSubtypes(a, b types.Type, mode SubtypeMode) bool

	// LegacyLeastUpperBound walks the class hierarchy to find the least
	// upper bound of two interface types. Called only when the
	// structural rules in §4.3/§4.6 fall through.
	LegacyLeastUpperBound(a, b *types.InterfaceType, client ClientContext) *types.InterfaceType
}
