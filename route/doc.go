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

// Package route defines the Route type: the compiled, registration-time
// identity of one method/pattern/handler-chain triple, plus the method
// constraint helpers it composes with.
//
// A Route wraps a pattern.Pattern with the metadata a dispatcher needs
// that isn't part of matching itself: its handler chain, its method
// constraint, a process-unique hash used for dedup and matched-set
// membership, and the original, pre-namespace path used for reverse
// routing. Route construction is the last point at which a malformed
// registration (a bad pattern, an empty handler chain, a non-canonical
// method name) can be rejected before the route becomes reachable by dispatch.
package route
