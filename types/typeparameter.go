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

// TypeParameterType is a use of a type parameter: either a bare use (`X`,
// bounded by Param.Bound) or, when PromotedBound is non-nil, the
// flow-promoted intersection form `X & PromotedBound`.
type TypeParameterType struct {
	Param         *TypeParamDecl
	PromotedBound Type
	nullability   Nullability
}

var _ Type = &TypeParameterType{}

// NewTypeParameterUse returns a bare use of param.
func NewTypeParameterUse(param *TypeParamDecl, n Nullability) *TypeParameterType {
	return &TypeParameterType{Param: param, nullability: n}
}

// NewPromotedTypeParameterUse returns the intersection form `param & bound`,
// demoted form carrying nullability n.
func NewPromotedTypeParameterUse(param *TypeParamDecl, n Nullability, bound Type) *TypeParameterType {
	return &TypeParameterType{Param: param, nullability: n, PromotedBound: bound}
}

func (p *TypeParameterType) Kind() TypeKind { return KindTypeParameter }

func (p *TypeParameterType) Equals(t Type) bool {
	other, ok := t.(*TypeParameterType)
	if !ok {
		return false
	}
	if p.Param != other.Param || p.nullability != other.nullability {
		return false
	}
	if (p.PromotedBound == nil) != (other.PromotedBound == nil) {
		return false
	}
	if p.PromotedBound == nil {
		return true
	}
	return p.PromotedBound.Equals(other.PromotedBound)
}

func (p *TypeParameterType) String() string {
	if p.PromotedBound != nil {
		return p.Param.Name + " & " + p.PromotedBound.String() + p.nullability.String()
	}
	return p.Param.Name + p.nullability.String()
}

func (p *TypeParameterType) Nullability() Nullability { return p.nullability }

func (p *TypeParameterType) WithNullability(n Nullability) Type {
	if n == p.nullability {
		return p
	}
	if p.PromotedBound != nil {
		return NewPromotedTypeParameterUse(p.Param, n, p.PromotedBound)
	}
	return NewTypeParameterUse(p.Param, n)
}

// Demoted returns the bare (non-promoted) use of the same parameter and
// nullability, dropping any promoted bound.
func (p *TypeParameterType) Demoted() *TypeParameterType {
	if p.PromotedBound == nil {
		return p
	}
	return NewTypeParameterUse(p.Param, p.nullability)
}

// EffectiveBound returns the bound the type-parameter SUB rule (§4.5)
// should expand: PromotedBound when promoted, otherwise the declaration's
// bound.
func (p *TypeParameterType) EffectiveBound() Type {
	if p.PromotedBound != nil {
		return p.PromotedBound
	}
	return p.Param.Bound
}
