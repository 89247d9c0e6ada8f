// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package route

// InvalidArgumentError is raised at registration time when a Route
// cannot be constructed from the arguments given: an empty handler
// chain or a non-canonical HTTP method name.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "route: invalid argument: " + e.Reason
}

// PatternCompilationError wraps a pattern compilation failure with the
// identity of the route that triggered it.
type PatternCompilationError struct {
	Path string
	Err  error
}

func (e *PatternCompilationError) Error() string {
	return "route: pattern compilation failed for " + e.Path + ": " + e.Err.Error()
}

func (e *PatternCompilationError) Unwrap() error { return e.Err }
