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

// Package index implements the radix-style literal-prefix multimap that
// narrows the candidate set of routes a dispatcher needs to test against
// a given URI, before falling back to regex evaluation.
//
// The index is append-only: routes are added at registration time and
// never removed. Each route lands in exactly one primary bucket, keyed
// by the longest literal (non-regex, non-placeholder) prefix of its
// path, and that bucket is additionally referenced from every proper
// ancestor prefix, so a lookup at any ancestor finds every descendant
// without copying route data around. Routes with no usable literal
// prefix (custom regex, empty prefix, or the wildcard sentinel), and
// negated routes, whose literal prefix names what they exclude rather
// than where they can be found, skip the prefix buckets entirely and
// live in a single catch-all bucket.
//
// FindCandidates only narrows; it is always safe for a caller to treat
// its result as a subset of "routes that might match" and confirm with
// the route's own compiled regex. The root bucket ("/") ends up
// referencing every prefixed route in the index, so in the worst case
// (a route whose literal prefix doesn't fall on a path-segment
// boundary) candidates degrade to "every indexed route" rather than
// silently excluding a true match.
package index
