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

// Package pattern turns route pattern strings into matcher artifacts.
//
// A pattern is a namespace plus a user-supplied path that may carry a
// leading sentinel (negation "!", custom regex "@", or both "!@"), and,
// for non-regex paths, bracketed placeholder blocks such as [i:id] or
// [:name]. Compile resolves all of that into a Pattern: an anchored
// regular expression, the longest literal prefix usable for index
// narrowing, and the boolean flags callers need to drive matching
// (negation, custom-regex, dynamic-ness).
//
// # Placeholder grammar
//
// A placeholder block is one of:
//
//	[<type>:<name>]   [<type>]   [:<name>]   [<name>]   suffix ? marks it optional
//
// The type token expands per a small fixed table (i, a, h, s, *, **, or
// empty); any other token is used verbatim as a regex fragment. A
// colon-less token that isn't a recognized type alias is treated as a
// bare name instead (see parseBlock for the disambiguation rule).
//
// # Compilation is pure
//
// Compile(namespace, path) is a pure function of its two string
// arguments: the same inputs always produce an equal Pattern. Cache
// wraps Compile with an optional, advisory LRU; correctness never
// depends on the cache being present or warm.
package pattern
