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

package pattern

import "regexp"

// Pattern is the compiled artifact produced by Compile. It is immutable
// and safe for concurrent use once returned.
type Pattern struct {
	// Normalized is the namespace-prefixed path with sentinel markers
	// ("!", "@", "!@") stripped. For custom-regex patterns this is the
	// namespace concatenated with the raw regex body.
	Normalized string

	// Regex is the compiled matcher. Placeholder patterns are anchored
	// with "^...$"; wildcard-sentinel patterns and custom regexes under a
	// namespace have no trailing "$", and a custom regex with no namespace
	// is compiled exactly as written. See Compile for the composition rules.
	Regex *regexp.Regexp

	// LiteralPrefix is the longest prefix of Normalized that contains no
	// regex metacharacter and no placeholder opener. Used by the route
	// index to narrow candidates; meaningless (and ignored) for
	// IsCustomRegex patterns, which are always routed through the
	// catch-all bucket.
	LiteralPrefix string

	// IsWildcardSentinel is true iff the original user path was exactly "*".
	IsWildcardSentinel bool

	// IsCustomRegex is true iff the pattern started with "@" or "!@".
	IsCustomRegex bool

	// IsNegated is true iff the pattern started with "!" or "!@"; the
	// dispatcher XORs this with the raw match outcome.
	IsNegated bool

	// IsNegatedCustomRegex is true iff the pattern started with "!@".
	// Implies IsCustomRegex && IsNegated.
	IsNegatedCustomRegex bool

	// IsDynamic is true iff the pattern contains at least one placeholder
	// block or the wildcard sentinel is false and the pattern body is
	// non-literal. Always false when IsCustomRegex is true: custom regex
	// bodies are never placeholder-expanded.
	IsDynamic bool
}
