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

import (
	"regexp"
	"strings"
)

// literalPrefixStarters is the set of characters that end a literal
// prefix: any regex metacharacter or placeholder opener.
const literalPrefixStarters = "[(.?+*{}"

// LiteralPrefix returns the longest prefix of path containing none of
// the characters in literalPrefixStarters. Shared by the compiler (to
// populate Pattern.LiteralPrefix) and by the route index and dispatcher
// pre-filter, which must derive the identical prefix from a route's
// original/normalized path independently (spec.md §4.2, §4.3).
func LiteralPrefix(path string) string {
	if i := strings.IndexAny(path, literalPrefixStarters); i >= 0 {
		return path[:i]
	}
	return path
}

// CompileError reports that a pattern failed to compile into a regular
// expression. Route construction (outside this package) wraps this
// with the offending route's identity before surfacing it to callers.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return "pattern: cannot compile " + e.Pattern + ": " + e.Err.Error()
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile turns a namespace and a user-supplied path into a Pattern.
//
// Sentinel detection happens first, on the unmodified path: a leading
// "!@" marks a negated custom regex, a leading "@" a custom regex, a
// leading "!" (when not "!@") a negated plain path, and the path being
// exactly "*" marks the wildcard sentinel. Namespace composition and
// (for plain paths) placeholder expansion follow, per the rules in
// spec.md §4.1.
func Compile(namespace, userPath string) (*Pattern, error) {
	p := &Pattern{}

	p.IsNegatedCustomRegex = strings.HasPrefix(userPath, "!@")
	p.IsCustomRegex = p.IsNegatedCustomRegex || strings.HasPrefix(userPath, "@")
	p.IsNegated = p.IsNegatedCustomRegex || (!p.IsCustomRegex && strings.HasPrefix(userPath, "!"))
	p.IsWildcardSentinel = userPath == "*"

	body := userPath
	switch {
	case p.IsNegatedCustomRegex:
		body = userPath[2:]
	case p.IsCustomRegex:
		body = userPath[1:]
	case p.IsNegated:
		body = userPath[1:]
	}

	var regexSrc string

	switch {
	case p.IsWildcardSentinel:
		if namespace == "" {
			p.Normalized = "*"
			regexSrc = "^.*$"
		} else {
			p.Normalized = namespace
			regexSrc = "^" + regexp.QuoteMeta(namespace) + "(/|$)"
		}

	case p.IsCustomRegex:
		if namespace == "" {
			p.Normalized = body
			regexSrc = body
		} else {
			stripped := body
			if strings.HasPrefix(stripped, "^") {
				stripped = stripped[1:]
			} else {
				stripped = ".*" + stripped
			}
			p.Normalized = namespace + body
			if p.IsNegated {
				regexSrc = "^" + namespace + "(?!" + stripped + ")"
			} else {
				regexSrc = "^" + namespace + stripped
			}
		}

	default:
		if namespace != "" && body == "/" {
			// Registering the literal root path under a namespace must match
			// both the bare namespace and the namespace with a trailing
			// slash (spec.md §8 boundary scenario 2), the same optional-
			// trailing-slash composition the wildcard sentinel uses above.
			// The trailing slash is optional, so the pattern is dynamic and the
			// dispatcher runs the regex instead of its exact-string fast path.
			p.Normalized = namespace
			p.IsDynamic = true
			regexSrc = "^" + regexp.QuoteMeta(namespace) + "(/|$)"
		} else {
			p.Normalized = namespace + body
			regexSrc, p.IsDynamic = compilePlaceholders(p.Normalized)
		}
	}

	re, err := regexp.Compile(regexSrc)
	if err != nil {
		return nil, &CompileError{Pattern: userPath, Err: err}
	}
	// Validation: a zero-length match attempt surfaces engine-level
	// issues beyond plain syntax errors (spec.md §4.1 "Validation").
	re.MatchString("")

	p.Regex = re
	p.LiteralPrefix = LiteralPrefix(p.Normalized)

	return p, nil
}
