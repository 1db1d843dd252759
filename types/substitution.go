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

// Substitution is a capture-avoiding replacement map from type-parameter
// declarations to types, modeled on the teacher's checker.Mapping: a
// string-keyed map built from each parameter declaration's identity, with
// Add/Find/Copy for building one up incrementally.
type Substitution struct {
	byKey map[string]Type
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{byKey: make(map[string]Type)}
}

func paramKey(p *TypeParamDecl) string {
	return fmt.Sprintf("%p:%s", p, p.Name)
}

// Add records that param should be replaced by to.
func (s *Substitution) Add(param *TypeParamDecl, to Type) {
	s.byKey[paramKey(param)] = to
}

// Find returns the replacement for param, if any.
func (s *Substitution) Find(param *TypeParamDecl) (Type, bool) {
	t, ok := s.byKey[paramKey(param)]
	return t, ok
}

// Copy returns an independent copy of s.
func (s *Substitution) Copy() *Substitution {
	c := NewSubstitution()
	for k, v := range s.byKey {
		c.byKey[k] = v
	}
	return c
}

// Substitute walks t, replacing every TypeParameterType use whose
// declaration appears in s. It is capture-avoiding because parameter
// identity is the declaration pointer, never a name: a nested generic
// function's own type parameters shadow automatically since their
// declarations are distinct pointers from any outer parameter in s.
func Substitute(t Type, s *Substitution) Type {
	switch v := t.(type) {
	case *TypeParameterType:
		repl, ok := s.Find(v.Param)
		if !ok {
			if v.PromotedBound == nil {
				return v
			}
			substBound := Substitute(v.PromotedBound, s)
			if substBound == v.PromotedBound {
				return v
			}
			return NewPromotedTypeParameterUse(v.Param, v.Nullability(), substBound)
		}
		return repl.WithNullability(Unite(repl.Nullability(), v.Nullability()))
	case *InterfaceType:
		args := substituteAll(v.TypeArguments, s)
		if sameSlice(args, v.TypeArguments) {
			return v
		}
		return NewInterface(v.Class, v.Nullability(), args)
	case *FunctionType:
		// A nested function type's own type parameters are distinct
		// declaration pointers from anything already in s, so they shadow
		// automatically -- no explicit scoping needed.
		positional := substituteAll(v.Positional, s)
		named := make([]Named, len(v.Named))
		namedChanged := false
		for i, n := range v.Named {
			nt := Substitute(n.Type, s)
			named[i] = Named{Name: n.Name, Type: nt, IsRequired: n.IsRequired}
			if nt != n.Type {
				namedChanged = true
			}
		}
		ret := Substitute(v.ReturnType, s)
		if sameSlice(positional, v.Positional) && !namedChanged && ret == v.ReturnType {
			return v
		}
		return NewFunction(v.TypeParameters, v.RequiredPositionalCount, positional, named, ret, v.Nullability())
	default:
		return t
	}
}

func substituteAll(ts []Type, s *Substitution) []Type {
	out := make([]Type, len(ts))
	changed := false
	for i, t := range ts {
		out[i] = Substitute(t, s)
		if out[i] != t {
			changed = true
		}
	}
	if !changed {
		return ts
	}
	return out
}

func sameSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
