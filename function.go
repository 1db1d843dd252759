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

package bounds

import "github.com/google/cel-go-stdbounds/types"

// alphaEquivalentBounds checks the shared precondition for the function
// structural rule (§4.4): f and g declare the same number of generic type
// parameters, and each pair of bounds is mutually a subtype of the other
// once g's parameters are renamed to f's.
func alphaEquivalentBounds(oracle Oracle, client ClientContext, f, g *types.FunctionType) (*types.Substitution, bool) {
	if len(f.TypeParameters) != len(g.TypeParameters) {
		return nil, false
	}
	subst := types.BuildAlphaRenaming(f.TypeParameters, g.TypeParameters)
	mode := subtypeMode(client)
	for i, fp := range f.TypeParameters {
		renamedGBound := types.Substitute(g.TypeParameters[i].Bound, subst)
		if !oracle.AreMutualSubtypes(fp.Bound, renamedGBound, mode) {
			return nil, false
		}
	}
	return subst, true
}

// functionGatesBlockStructuralRule applies the §4.4 applicability gates:
// true means the structural rule does not apply and the caller must use
// its fallback.
func functionGatesBlockStructuralRule(f, g *types.FunctionType, forUp bool) bool {
	hasNamed := len(f.Named) > 0 || len(g.Named) > 0
	hasOptionalPositional := f.HasOptionalPositional() || g.HasOptionalPositional()
	if hasNamed && hasOptionalPositional {
		return true
	}
	if hasNamed {
		if len(f.Positional) != len(g.Positional) {
			return true
		}
		if forUp && namedOnlyInOneSideRequired(f.Named, g.Named) {
			return true
		}
		return false
	}
	if forUp {
		return f.RequiredPositionalCount != g.RequiredPositionalCount
	}
	return false
}

func namedOnlyInOneSideRequired(f, g []types.Named) bool {
	gByName := make(map[string]types.Named, len(g))
	for _, n := range g {
		gByName[n.Name] = n
	}
	seen := make(map[string]bool, len(f))
	for _, n := range f {
		seen[n.Name] = true
		if _, ok := gByName[n.Name]; !ok && n.IsRequired {
			return true
		}
	}
	for _, n := range g {
		if !seen[n.Name] && n.IsRequired {
			return true
		}
	}
	return false
}

// downFunction is the SLB half of the structural function rule (§4.4).
func downFunction(oracle Oracle, client ClientContext, f, g *types.FunctionType) (types.Type, error) {
	nf, ng := f.Nullability(), g.Nullability()
	subst, ok := alphaEquivalentBounds(oracle, client, f, g)
	if !ok || functionGatesBlockStructuralRule(f, g, false) {
		return types.NewNever(types.Intersect(nf, ng)), nil
	}

	minPos := len(f.Positional)
	if len(g.Positional) < minPos {
		minPos = len(g.Positional)
	}
	maxPos := len(f.Positional)
	if len(g.Positional) > maxPos {
		maxPos = len(g.Positional)
	}
	positional := make([]types.Type, maxPos)
	for i := 0; i < maxPos; i++ {
		switch {
		case i < minPos:
			r, err := dispatchUp(oracle, client, f.Positional[i], types.Substitute(g.Positional[i], subst))
			if err != nil {
				return nil, err
			}
			positional[i] = r
		case i < len(f.Positional):
			positional[i] = f.Positional[i]
		default:
			positional[i] = types.Substitute(g.Positional[i], subst)
		}
	}

	named, err := mergeNamedUnion(oracle, client, f.Named, g.Named, subst)
	if err != nil {
		return nil, err
	}

	ret, err := dispatchDown(oracle, client, f.ReturnType, types.Substitute(g.ReturnType, subst))
	if err != nil {
		return nil, err
	}

	required := f.RequiredPositionalCount
	if g.RequiredPositionalCount < required {
		required = g.RequiredPositionalCount
	}

	return types.NewFunction(f.TypeParameters, required, positional, named, ret, types.Intersect(nf, ng)), nil
}

// mergeNamedUnion builds the SLB named-parameter list: every name present
// on either side, typed by SUB when present on both (contravariant
// parameter position), required only when required on both.
func mergeNamedUnion(oracle Oracle, client ClientContext, f, g []types.Named, subst *types.Substitution) ([]types.Named, error) {
	gByName := make(map[string]types.Named, len(g))
	for _, n := range g {
		gByName[n.Name] = n
	}
	var out []types.Named
	for _, fn := range f {
		if gn, ok := gByName[fn.Name]; ok {
			t, err := dispatchUp(oracle, client, fn.Type, types.Substitute(gn.Type, subst))
			if err != nil {
				return nil, err
			}
			out = append(out, types.Named{Name: fn.Name, Type: t, IsRequired: fn.IsRequired && gn.IsRequired})
		} else {
			out = append(out, types.Named{Name: fn.Name, Type: fn.Type, IsRequired: false})
		}
	}
	fByName := make(map[string]bool, len(f))
	for _, n := range f {
		fByName[n.Name] = true
	}
	for _, gn := range g {
		if !fByName[gn.Name] {
			out = append(out, types.Named{Name: gn.Name, Type: types.Substitute(gn.Type, subst), IsRequired: false})
		}
	}
	sortNamed(out)
	return out, nil
}

// upFunction is the SUB half of the structural function rule (§4.4).
func upFunction(oracle Oracle, client ClientContext, f, g *types.FunctionType) (types.Type, error) {
	nf, ng := f.Nullability(), g.Nullability()
	subst, ok := alphaEquivalentBounds(oracle, client, f, g)
	if !ok || functionGatesBlockStructuralRule(f, g, true) {
		return types.NewInterface(oracle.FunctionClass(), types.Unite(nf, ng), nil), nil
	}

	minPos := len(f.Positional)
	if len(g.Positional) < minPos {
		minPos = len(g.Positional)
	}
	positional := make([]types.Type, minPos)
	for i := 0; i < minPos; i++ {
		r, err := dispatchDown(oracle, client, f.Positional[i], types.Substitute(g.Positional[i], subst))
		if err != nil {
			return nil, err
		}
		positional[i] = r
	}

	named, err := intersectNamed(oracle, client, f.Named, g.Named, subst)
	if err != nil {
		return nil, err
	}

	ret, err := dispatchUp(oracle, client, f.ReturnType, types.Substitute(g.ReturnType, subst))
	if err != nil {
		return nil, err
	}

	return types.NewFunction(f.TypeParameters, f.RequiredPositionalCount, positional, named, ret, types.Unite(nf, ng)), nil
}

// intersectNamed builds the SUB named-parameter list: only names present
// on both sides survive, typed by SLB (contravariant parameter position),
// required if required on either side.
func intersectNamed(oracle Oracle, client ClientContext, f, g []types.Named, subst *types.Substitution) ([]types.Named, error) {
	gByName := make(map[string]types.Named, len(g))
	for _, n := range g {
		gByName[n.Name] = n
	}
	var out []types.Named
	for _, fn := range f {
		gn, ok := gByName[fn.Name]
		if !ok {
			continue
		}
		t, err := dispatchDown(oracle, client, fn.Type, types.Substitute(gn.Type, subst))
		if err != nil {
			return nil, err
		}
		out = append(out, types.Named{Name: fn.Name, Type: t, IsRequired: fn.IsRequired || gn.IsRequired})
	}
	sortNamed(out)
	return out, nil
}

func sortNamed(named []types.Named) {
	for i := 1; i < len(named); i++ {
		for j := i; j > 0 && named[j-1].Name > named[j].Name; j-- {
			named[j-1], named[j] = named[j], named[j-1]
		}
	}
}
