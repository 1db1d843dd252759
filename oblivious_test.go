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

func (f *fixture) obliviousClient() bounds.ClientContext {
	return bounds.ClientContext{IsNonNullableByDefault: false}
}

func (f *fixture) futureOr(arg types.Type) *types.InterfaceType {
	return types.NewInterface(f.oracle.FutureOrClass(), types.NonNullable, []types.Type{arg})
}

func (f *fixture) future(arg types.Type) *types.InterfaceType {
	return types.NewInterface(f.oracle.FutureClass(), types.NonNullable, []types.Type{arg})
}

// TestObliviousSUBFutureOrAndFutureFallsBackToLegacyLUB checks the worked
// example: SUB(FutureOr<int>, Future<int>) has no structural rule (the
// FutureOr/Future combination rules in §4.6 only apply to SLB) so it falls
// to the legacy LUB oracle over the two interfaces.
func TestObliviousSUBFutureOrAndFutureFallsBackToLegacyLUB(t *testing.T) {
	f := newFixture()
	a := f.futureOr(f.int_(types.NonNullable))
	b := f.future(f.int_(types.NonNullable))

	got, err := bounds.GetStandardUpperBound(a, b, f.obliviousClient(), f.oracle)
	if err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	want := f.oracle.LegacyLeastUpperBound(a, b, f.obliviousClient())
	if !got.Equals(want) {
		t.Errorf("oblivious SUB(FutureOr<int>, Future<int>) = %v, want legacy LUB %v", got, want)
	}
}

// TestObliviousSLBFutureOrAndFutureIsFutureOfSLB checks the worked
// example: SLB(FutureOr<int>, Future<num>) = Future<int>, via the
// FutureOr-vs-Future special rule in §4.6.
func TestObliviousSLBFutureOrAndFutureIsFutureOfSLB(t *testing.T) {
	f := newFixture()
	a := f.futureOr(f.int_(types.NonNullable))
	b := f.future(f.num_(types.NonNullable))

	got, err := bounds.GetStandardLowerBound(a, b, f.obliviousClient(), f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	want := f.future(f.int_(types.NonNullable))
	if !got.Equals(want) {
		t.Errorf("oblivious SLB(FutureOr<int>, Future<num>) = %v, want %v", got, want)
	}
}

// TestObliviousSLBFutureOrAndFutureOrIsFutureOrOfSLB checks the
// FutureOr/FutureOr special rule: both wrappers reduce, recursing on the
// arguments.
func TestObliviousSLBFutureOrAndFutureOrIsFutureOrOfSLB(t *testing.T) {
	f := newFixture()
	a := f.futureOr(f.num_(types.NonNullable))
	b := f.futureOr(f.int_(types.NonNullable))

	got, err := bounds.GetStandardLowerBound(a, b, f.obliviousClient(), f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	want := f.futureOr(f.int_(types.NonNullable))
	if !got.Equals(want) {
		t.Errorf("oblivious SLB(FutureOr<num>, FutureOr<int>) = %v, want %v", got, want)
	}
}

// TestObliviousSLBUnrelatedInterfacesIsBottom checks the oblivious
// fall-through: two unrelated, non-generic interfaces with no common
// class relation reduce to Bottom, not Never.
func TestObliviousSLBUnrelatedInterfacesIsBottom(t *testing.T) {
	f := newFixture()
	got, err := bounds.GetStandardLowerBound(
		f.iface(f.stringC, types.NonNullable),
		f.iface(f.boolC, types.NonNullable),
		f.obliviousClient(), f.oracle)
	if err != nil {
		t.Fatalf("SLB error: %v", err)
	}
	if got.Kind() != types.KindBottom {
		t.Errorf("oblivious SLB(string, bool) = %v, want Bottom", got)
	}
}
