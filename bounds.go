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

// GetStandardLowerBound returns SLB(t1, t2): the greatest type below both
// operands in the subtype lattice, selecting the nullability-aware or
// oblivious family per client.
func GetStandardLowerBound(t1, t2 types.Type, client ClientContext, oracle Oracle) (types.Type, error) {
	return dispatchDown(oracle, client, t1, t2)
}

// GetStandardUpperBound returns SUB(t1, t2): the least type above both
// operands in the subtype lattice, selecting the nullability-aware or
// oblivious family per client.
func GetStandardUpperBound(t1, t2 types.Type, client ClientContext, oracle Oracle) (types.Type, error) {
	return dispatchUp(oracle, client, t1, t2)
}

// dispatchDown re-selects the SLB family by client on every recursive
// call, the same way the source re-dispatches on mode at each step: the
// structural function-type rule (§4.4) recurses into component bounds
// through this, not directly into down, so a function bound computed in
// oblivious mode keeps its component recursion in the oblivious family.
func dispatchDown(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	if client.Aware() {
		return down(oracle, client, t1, t2)
	}
	return obliviousDown(oracle, client, t1, t2)
}

// dispatchUp is dispatchDown's SUB counterpart.
func dispatchUp(oracle Oracle, client ClientContext, t1, t2 types.Type) (types.Type, error) {
	if client.Aware() {
		return up(oracle, client, t1, t2)
	}
	return obliviousUp(oracle, client, t1, t2)
}
