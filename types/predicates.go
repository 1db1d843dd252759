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

import "fmt"

// PreconditionError signals that MoreTop or MoreBottom was invoked on
// operands that do not both satisfy the predicate the comparison assumes
// (TOP∪OBJECT or BOTTOM∪NULL respectively). Per spec §7 this is an
// internal-consistency failure, not a recoverable condition.
type PreconditionError struct {
	Operation string
	Left      Type
	Right     Type
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: unsupported operands %q and %q", e.Operation, e.Left.String(), e.Right.String())
}

// OBJECT reports whether t is the Object class (non-nullable) or a
// non-nullable FutureOr<S> with OBJECT(S).
func OBJECT(classes ClassProvider, t Type) bool {
	if t.Nullability() != NonNullable {
		return false
	}
	if IsObjectUse(classes, t) {
		return true
	}
	if inner, ok := FutureOrArgument(classes, t); ok {
		return OBJECT(classes, inner)
	}
	return false
}

// TOP reports whether t is one of the top types: dynamic, void, a
// nullable/legacy wrapper over a TOP or OBJECT form, or a FutureOr<S>
// where TOP(S).
func TOP(classes ClassProvider, t Type) bool {
	if _, ok := t.(*invalidType); ok {
		return false
	}
	switch t.(type) {
	case *dynamicType, *voidType:
		return true
	}
	if t.Nullability() != NonNullable {
		nn := NonNull(t)
		return TOP(classes, nn) || OBJECT(classes, nn)
	}
	if inner, ok := FutureOrArgument(classes, t); ok {
		return TOP(classes, inner)
	}
	return false
}

// BOTTOM reports whether t is Never (non-nullable), a promoted or
// bare type-parameter use whose bound is itself BOTTOM, or the legacy
// Bottom type.
func BOTTOM(classes ClassProvider, t Type) bool {
	if _, ok := t.(*invalidType); ok {
		return false
	}
	switch v := t.(type) {
	case *NeverType:
		return v.Nullability() == NonNullable
	case *bottomType:
		return true
	case *TypeParameterType:
		if v.Nullability() != NonNullable {
			return false
		}
		if v.PromotedBound != nil {
			return BOTTOM(classes, v.PromotedBound)
		}
		return BOTTOM(classes, v.Param.Bound)
	}
	return false
}

// NULL reports whether t is the canonical Null type, or a nullable/legacy
// wrapper whose non-nullable form is BOTTOM.
func NULL(classes ClassProvider, t Type) bool {
	if _, ok := t.(*invalidType); ok {
		return false
	}
	if t.Equals(classes.NullType()) {
		return true
	}
	if t.Nullability() != NonNullable {
		return BOTTOM(classes, NonNull(t))
	}
	return false
}

// topForm classifies an operand already known to satisfy TOP∪OBJECT, for
// use by MoreTop's cascade.
type topForm int

const (
	formNotTop topForm = iota
	formFutureOr
	formObject
	formDynamic
	formVoid
)

func classifyTop(classes ClassProvider, t Type) (topForm, Type) {
	switch t.(type) {
	case *voidType:
		return formVoid, nil
	case *dynamicType:
		return formDynamic, nil
	}
	if IsObjectUse(classes, t) {
		return formObject, nil
	}
	if inner, ok := FutureOrArgument(classes, t); ok {
		if TOP(classes, inner) || OBJECT(classes, inner) {
			return formFutureOr, inner
		}
	}
	if t.Nullability() != NonNullable {
		return classifyTop(classes, NonNull(t))
	}
	return formNotTop, nil
}

// moreTopNullabilityRank orders nullability tags for the MORETOP tie-break
// (§4.1 rule 2): nonNullable > nullable > legacy. This keeps the upstream
// TODO-flagged asymmetry (nullable ranks above legacy) intentionally,
// rather than reusing the Intersect/Unite ordinal order.
func moreTopNullabilityRank(n Nullability) int {
	switch n {
	case NonNullable:
		return 2
	case Nullable:
		return 1
	default: // Legacy
		return 0
	}
}

// MoreTop returns whichever of s, t is strictly more "top" under the total
// order MORETOP defines over TOP∪OBJECT. Both operands must satisfy
// TOP(t) || OBJECT(t); violating that is an internal-consistency failure.
func MoreTop(classes ClassProvider, s, t Type) (Type, error) {
	sf, sInner := classifyTop(classes, s)
	tf, tInner := classifyTop(classes, t)
	if sf == formNotTop || tf == formNotTop {
		return nil, &PreconditionError{Operation: "MoreTop", Left: s, Right: t}
	}
	if sf != tf {
		if sf > tf {
			return s, nil
		}
		return t, nil
	}
	if sf == formFutureOr {
		winner, err := MoreTop(classes, sInner, tInner)
		if err != nil {
			return nil, err
		}
		if winner == sInner {
			return s, nil
		}
		return t, nil
	}
	sn, tn := moreTopNullabilityRank(s.Nullability()), moreTopNullabilityRank(t.Nullability())
	if sn >= tn {
		return s, nil
	}
	return t, nil
}

// bottomForm classifies an operand already known to satisfy BOTTOM∪NULL,
// for use by MoreBottom's cascade.
type bottomForm int

const (
	formNotBottom bottomForm = iota
	formBoundOnly
	formPromoted
	formLegacyBottom
	formNullLit
	formNever
)

func classifyBottom(classes ClassProvider, t Type) (bottomForm, Type) {
	if t.Equals(classes.NullType()) {
		return formNullLit, nil
	}
	switch v := t.(type) {
	case *NeverType:
		if v.Nullability() == NonNullable {
			return formNever, nil
		}
	case *bottomType:
		return formLegacyBottom, nil
	case *TypeParameterType:
		if v.Nullability() == NonNullable {
			if v.PromotedBound != nil && BOTTOM(classes, v.PromotedBound) {
				return formPromoted, v.PromotedBound
			}
			if v.PromotedBound == nil && BOTTOM(classes, v.Param.Bound) {
				return formBoundOnly, v.Param.Bound
			}
		}
	}
	if t.Nullability() != NonNullable {
		return classifyBottom(classes, NonNull(t))
	}
	return formNotBottom, nil
}

// moreBottomNullabilityRank orders nullability tags for the MOREBOTTOM
// tie-break; the lower rank is more bottom: nonNullable, then legacy, then
// nullable. Legacy beats nullable here, the reverse of MORETOP's
// nullable-over-legacy tie-break.
func moreBottomNullabilityRank(n Nullability) int {
	switch n {
	case NonNullable:
		return 0
	case Nullable:
		return 2
	default: // Legacy
		return 1
	}
}

// MoreBottom returns whichever of s, t is strictly more "bottom" under the
// total order MOREBOTTOM defines over BOTTOM∪NULL. Both operands must
// satisfy BOTTOM(t) || NULL(t); violating that is an internal-consistency
// failure.
func MoreBottom(classes ClassProvider, s, t Type) (Type, error) {
	sf, sInner := classifyBottom(classes, s)
	tf, tInner := classifyBottom(classes, t)
	if sf == formNotBottom || tf == formNotBottom {
		return nil, &PreconditionError{Operation: "MoreBottom", Left: s, Right: t}
	}
	// Rank order, most-bottom first: Never, Null, promoted (X&S), bound-only
	// (X extends S), legacy Bottom. A promoted use is more bottom than a
	// bound-only one at the same nesting (X&S < Y when Y has no promotion).
	rank := func(f bottomForm) int {
		switch f {
		case formNever:
			return 0
		case formNullLit:
			return 1
		case formPromoted:
			return 2
		case formBoundOnly:
			return 3
		default: // formLegacyBottom
			return 4
		}
	}
	sr, tr := rank(sf), rank(tf)
	if sr != tr {
		if sr < tr {
			return s, nil
		}
		return t, nil
	}
	if sf == formPromoted || sf == formBoundOnly {
		winner, err := MoreBottom(classes, sInner, tInner)
		if err != nil {
			return nil, err
		}
		if winner == sInner {
			return s, nil
		}
		return t, nil
	}
	sn, tn := moreBottomNullabilityRank(s.Nullability()), moreBottomNullabilityRank(t.Nullability())
	if sn <= tn {
		return s, nil
	}
	return t, nil
}
