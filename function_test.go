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

package bounds_test

import (
	"testing"

	bounds "github.com/google/cel-go-stdbounds"
	"github.com/google/cel-go-stdbounds/types"
)

// TestSUBFunctionContravariantParameters checks the worked contravariance
// example: two one-argument functions returning int, taking num and int
// respectively, unite to a function taking their parameter SLB (int) and
// returning the return types' SUB (int).
func TestSUBFunctionContravariantParameters(t *testing.T) {
	f := newFixture()
	fNum := types.NewFunction(nil, 0, []types.Type{f.num_(types.NonNullable)}, nil, f.int_(types.NonNullable), types.NonNullable)
	fInt := types.NewFunction(nil, 0, []types.Type{f.int_(types.NonNullable)}, nil, f.int_(types.NonNullable), types.NonNullable)

	got, err := bounds.GetStandardUpperBound(fNum, fInt, f.client, f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	fn, ok := got.(*types.FunctionType)
	if !ok {
		t.Fatalf("SUB(fNum, fInt) = %T, want *types.FunctionType", got)
	}
	if len(fn.Positional) != 1 || !fn.Positional[0].Equals(f.int_(types.NonNullable)) {
		t.Errorf("SUB(fNum, fInt).Positional = %v, want [int] (SLB of num, int)", fn.Positional)
	}
	if !fn.ReturnType.Equals(f.int_(types.NonNullable)) {
		t.Errorf("SUB(fNum, fInt).ReturnType = %v, want int", fn.ReturnType)
	}
}

// TestSUBFunctionNamedOnlyOnOneSideRequiredFallsBack checks the SUB
// applicability gate: a named parameter present on only one side and
// required there triggers the fallback `Function` (raw).
func TestSUBFunctionNamedOnlyOnOneSideRequiredFallsBack(t *testing.T) {
	f := newFixture()
	withRequiredX := types.NewFunction(nil, 0, nil,
		[]types.Named{{Name: "x", Type: f.int_(types.NonNullable), IsRequired: true}},
		f.int_(types.NonNullable), types.NonNullable)
	withNoNamed := types.NewFunction(nil, 0, nil, nil, f.int_(types.NonNullable), types.NonNullable)

	got, err := bounds.GetStandardUpperBound(withRequiredX, withNoNamed, f.client, f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	fn, ok := got.(*types.InterfaceType)
	if !ok {
		t.Fatalf("SUB fallback = %T, want *types.InterfaceType", got)
	}
	if fn.Class != f.oracle.FunctionClass() || len(fn.TypeArguments) != 0 {
		t.Errorf("SUB fallback = %v, want raw Function", fn)
	}
	if fn.Nullability() != types.NonNullable {
		t.Errorf("SUB fallback nullability = %v, want non-nullable", fn.Nullability())
	}
}

// TestSLBFunctionMergesNamedParameters checks the SLB named-parameter
// union: a name present on only one side survives as not-required.
func TestSLBFunctionMergesNamedParameters(t *testing.T) {
	f := newFixture()
	withX := types.NewFunction(nil, 0, nil,
		[]types.Named{{Name: "x", Type: f.int_(types.NonNullable), IsRequired: true}},
		f.int_(types.NonNullable), types.NonNullable)
	withY := types.NewFunction(nil, 0, nil,
		[]types.Named{{Name: "y", Type: f.int_(types.NonNullable), IsRequired: true}},
		f.int_(types.NonNullable), types.NonNullable)

	got, err := bounds.GetStandardLowerBound(withX, withY, f.client, f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	fn, ok := got.(*types.FunctionType)
	if !ok {
		t.Fatalf("SLB(withX, withY) = %T, want *types.FunctionType", got)
	}
	if len(fn.Named) != 2 {
		t.Fatalf("SLB(withX, withY).Named = %v, want both x and y", fn.Named)
	}
	for _, n := range fn.Named {
		if n.IsRequired {
			t.Errorf("SLB(withX, withY) named parameter %q is required, want not-required (only present on one side)", n.Name)
		}
	}
}
