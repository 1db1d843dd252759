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
	"github.com/google/cel-go-stdbounds/boundstest"
	"github.com/google/cel-go-stdbounds/types"
)

// fixture wires a small Num/Int/Double hierarchy plus a covariant List on
// top of boundstest's built-in Object/Function/Future/FutureOr/Null
// classes, mirroring the worked examples in the engine's own examples.
type fixture struct {
	oracle             *boundstest.Oracle
	client             bounds.ClientContext
	num, intC, doubleC *types.ClassRef
	boolC, stringC     *types.ClassRef
	listC              *types.ClassRef
}

func newFixture() *fixture {
	o := boundstest.New()
	num := o.Declare("num", o.ObjectClass())
	intC := o.Declare("int", num)
	doubleC := o.Declare("double", num)
	boolC := o.Declare("bool", o.ObjectClass())
	stringC := o.Declare("string", o.ObjectClass())
	listC := o.Declare("List", o.ObjectClass(), &types.TypeParamDecl{Name: "E", Variance: types.Covariant})
	return &fixture{
		oracle: o, client: bounds.ClientContext{IsNonNullableByDefault: true},
		num: num, intC: intC, doubleC: doubleC, boolC: boolC, stringC: stringC, listC: listC,
	}
}

func (f *fixture) iface(c *types.ClassRef, n types.Nullability, args ...types.Type) *types.InterfaceType {
	return types.NewInterface(c, n, args)
}

func (f *fixture) int_(n types.Nullability) *types.InterfaceType    { return f.iface(f.intC, n) }
func (f *fixture) double_(n types.Nullability) *types.InterfaceType { return f.iface(f.doubleC, n) }
func (f *fixture) num_(n types.Nullability) *types.InterfaceType    { return f.iface(f.num, n) }
func (f *fixture) object_(n types.Nullability) *types.InterfaceType {
	return f.iface(f.oracle.ObjectClass(), n)
}

func TestSLBIdentity(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardLowerBound(f.int_(types.NonNullable), f.int_(types.NonNullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	if !got.Equals(f.int_(types.NonNullable)) {
		t.Errorf("SLB(int, int) = %v, want int", got)
	}
}

func TestSLBIntNullableAndInt(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardLowerBound(f.int_(types.Nullable), f.int_(types.NonNullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	if !got.Equals(f.int_(types.NonNullable)) {
		t.Errorf("SLB(int?, int) = %v, want int", got)
	}
}

func TestSUBIntAndDoubleIsNum(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardUpperBound(f.int_(types.NonNullable), f.double_(types.NonNullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	if !got.Equals(f.num_(types.NonNullable)) {
		t.Errorf("SUB(int, double) = %v, want num", got)
	}
}

func TestSUBNeverAndIntIsInt(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardUpperBound(types.NewNever(types.NonNullable), f.int_(types.NonNullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	if !got.Equals(f.int_(types.NonNullable)) {
		t.Errorf("SUB(Never, int) = %v, want int", got)
	}
}

func TestSUBNullAndIntIsNullableInt(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardUpperBound(f.oracle.NullType(), f.int_(types.NonNullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	if !got.Equals(f.int_(types.Nullable)) {
		t.Errorf("SUB(Null, int) = %v, want int?", got)
	}
}

func TestSLBNullableObjectAndNullableIntIsNullableInt(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardLowerBound(f.object_(types.Nullable), f.int_(types.Nullable), f.client, f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	if !got.Equals(f.int_(types.Nullable)) {
		t.Errorf("SLB(Object?, int?) = %v, want int?", got)
	}
}

func TestSLBUnrelatedClassesIsNever(t *testing.T) {
	f := newFixture()
	stringT := f.iface(f.stringC, types.NonNullable)
	got, err := bounds.GetStandardLowerBound(f.int_(types.NonNullable), stringT, f.client, f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	if _, ok := got.(*types.NeverType); !ok {
		t.Errorf("SLB(int, string) = %v, want Never", got)
	}
}
