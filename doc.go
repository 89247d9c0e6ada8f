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

// Package router implements an HTTP request router driven by
// human-friendly path patterns: typed placeholders, optional segments,
// custom regular expressions, and negation.
//
// # Constructor pattern
//
// Router construction never fails: New always returns a usable
// *Router. MustNew exists purely for symmetry with the rest of the
// Rivaas ecosystem's constructor conventions; it never panics today,
// but callers that prefer a single-value constructor should use it
// instead of discarding New's (nil) error.
//
//	r := router.MustNew()
//	r.GET("/users/[i:id]", func(c *router.Context) (any, error) {
//	    return "user " + c.Param("id"), nil
//	})
//	http.ListenAndServe(":8080", r)
//
// # Route patterns
//
// Path segments may be literal ("/users/profile"), typed placeholders
// ("/users/[i:id]"), optional ("/users/[i:id]?"), custom regular
// expressions ("@^/foo/bar$"), or negated ("!/foo"). See the pattern
// package for the full placeholder grammar.
//
// # Dispatch order
//
// Routes are tried in registration order. Every candidate route whose
// method and path both match runs its handler chain; this is not a
// first-match-wins router. A handler can steer the loop with the
// ErrSkipThis, SkipNext, and ErrSkipRemaining flow-control values, or end
// dispatch early with an HTTP error via Abort.
package router
