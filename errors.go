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

import (
	"fmt"

	"github.com/google/cel-go-stdbounds/types"
)

// UnsupportedError is the internal-consistency failure up returns when two
// operands match none of its rules and are not both interface types.
// MoreTop/MoreBottom precondition violations are not wrapped in it: they
// reach the caller as the *types.PreconditionError those functions return.
// The enclosing compiler driver is expected to report this as an internal
// compiler error, mirroring how the teacher's checker.TypeErrors surfaces
// a named, structured report rather than a bare fmt.Errorf string.
type UnsupportedError struct {
	Stage string
	Left  types.Type
	Right types.Type
	cause error
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("internal error: unsupported bounds computation in %s for %q and %q", e.Stage, e.Left.String(), e.Right.String())
}

func (e *UnsupportedError) Unwrap() error { return e.cause }

func wrapUnsupported(stage string, left, right types.Type, cause error) *UnsupportedError {
	return &UnsupportedError{Stage: stage, Left: left, Right: right, cause: cause}
}
