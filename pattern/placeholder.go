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
	"net/url"
	"regexp"
	"strings"
)

// typeAliases maps a placeholder type token to its regex expansion.
//
// The "**" alias is documented in spec as a greedy *possessive*
// any-character match. Go's regexp package (RE2) has no possessive or
// atomic-group construct, so it is approximated with a plain greedy
// ".+", which gives back characters to later parts of the pattern where
// a possessive match would not.
var typeAliases = map[string]string{
	"i":  `\d+`,
	"a":  `[A-Za-z0-9]+`,
	"h":  `[0-9A-Fa-f]+`,
	"s":  `[0-9A-Za-z_-]+`,
	"*":  `.+?`,
	"**": `.+`,
	"":   `[^/]+?`,
}

// placeholderRe finds one bracketed placeholder block per match,
// including an optional leading path delimiter ("/" or ".") that is
// folded into the block so an optional block can erase its own
// delimiter. Group 1: delimiter (optional). Group 2: text before ':',
// or the whole bracket body if there is no ':'. Group 3: text after
// ':', present only when a ':' appears. Group 4: trailing "?".
var placeholderRe = regexp.MustCompile(`([/.])?\[([^:\]]*)(?::([^\]]*))?\](\?)?`)

// block is one parsed placeholder occurrence.
type block struct {
	delim    string // "" or "/" or "."
	typeTok  string // raw type token, "" if untyped
	hasColon bool
	name     string // capture name, "" if unnamed
	optional bool
}

// isKnownType reports whether tok is one of the fixed type aliases.
func isKnownType(tok string) bool {
	_, ok := typeAliases[tok]
	return ok
}

// parseBlock disambiguates the four placeholder forms:
//
//	[<type>:<name>]  colon present: group2 is the type, group3 is the name.
//	[<type>]         no colon, group2 is a recognized type alias: anonymous capture of that type.
//	[<name>]         no colon, group2 is NOT a recognized type alias: named capture of default type.
//	[:<name>]        colon present with an empty type: named capture of default type.
func parseBlock(delim, g2 string, g3 *string, optional bool) block {
	b := block{delim: delim, optional: optional}
	if g3 != nil {
		b.hasColon = true
		b.typeTok = g2
		b.name = *g3
		return b
	}
	if isKnownType(g2) {
		b.typeTok = g2
		return b
	}
	b.name = g2
	return b
}

// regexFragment returns the regex text a block's capture group should
// wrap: the alias expansion when typeTok is a recognized alias, else
// typeTok itself as a raw sub-regex supplied by the caller.
func (b block) regexFragment() string {
	if re, ok := typeAliases[b.typeTok]; ok {
		return re
	}
	// "(anything else) | treated as a raw sub-regex"
	return b.typeTok
}

// compilePlaceholders expands a namespace-prefixed, sentinel-stripped
// path into an anchored regex, quoting literal regions and turning each
// placeholder block into a (possibly optional) capturing group. Returns
// the assembled regex source and whether any placeholder was found.
func compilePlaceholders(path string) (regexSrc string, isDynamic bool) {
	matches := placeholderRe.FindAllStringSubmatchIndex(path, -1)
	if len(matches) == 0 {
		return "^" + regexp.QuoteMeta(path) + "$", false
	}

	var out strings.Builder
	out.WriteByte('^')

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		out.WriteString(regexp.QuoteMeta(path[last:start]))

		delim := submatch(path, m, 1)
		g2 := submatch(path, m, 2)
		var g3 *string
		if m[6] >= 0 {
			v := submatch(path, m, 3)
			g3 = &v
		}
		opt := submatch(path, m, 4) == "?"

		b := parseBlock(delim, g2, g3, opt)
		out.WriteString(renderBlock(b))

		last = end
	}
	out.WriteString(regexp.QuoteMeta(path[last:]))
	out.WriteByte('$')

	return out.String(), true
}

// Substitute renders path (a route's original, pre-namespace pattern)
// back into a concrete URL by replacing each placeholder block with
// params[name], percent-encoded. A missing optional block is erased
// entirely, including its delimiter; a missing required block (or an
// anonymous block, which has no name to look up) is left exactly as
// written. substituted reports whether at least one block was actually
// replaced, which callers use to detect "nothing to substitute" for
// custom-regex routes (spec.md §6.4).
func Substitute(path string, params map[string]string) (result string, substituted bool) {
	matches := placeholderRe.FindAllStringSubmatchIndex(path, -1)
	if len(matches) == 0 {
		return path, false
	}

	var out strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		out.WriteString(path[last:start])

		delim := submatch(path, m, 1)
		g2 := submatch(path, m, 2)
		var g3 *string
		if m[6] >= 0 {
			v := submatch(path, m, 3)
			g3 = &v
		}
		opt := submatch(path, m, 4) == "?"
		b := parseBlock(delim, g2, g3, opt)

		if b.name != "" {
			if v, ok := params[b.name]; ok {
				out.WriteString(delim)
				out.WriteString(url.PathEscape(v))
				substituted = true
				last = end
				continue
			}
			if b.optional {
				// Erase the whole block, delimiter included.
				last = end
				continue
			}
		}
		// Required, anonymous, or optional-but-unsubstituted: keep the
		// placeholder syntax exactly as written.
		out.WriteString(path[start:end])
		last = end
	}
	out.WriteString(path[last:])

	return out.String(), substituted
}

// submatch extracts submatch group g (1-indexed as in FindAllSubmatchIndex
// pairs) from path using the index pairs in m, returning "" if the group
// did not participate in the match.
func submatch(path string, m []int, g int) string {
	lo, hi := m[2*g], m[2*g+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return path[lo:hi]
}

// renderBlock turns one parsed placeholder into its regex text: a
// non-capturing group wrapping a capturing group (named if b.name is
// non-empty), preceded by the quoted delimiter, followed by "?" when
// the block is optional.
func renderBlock(b block) string {
	var inner strings.Builder
	if b.name != "" {
		inner.WriteString("(?P<")
		inner.WriteString(b.name)
		inner.WriteString(">")
	} else {
		inner.WriteString("(")
	}
	inner.WriteString(b.regexFragment())
	inner.WriteString(")")

	var out strings.Builder
	out.WriteString("(?:")
	out.WriteString(regexp.QuoteMeta(b.delim))
	out.WriteString(inner.String())
	out.WriteString(")")
	if b.optional {
		out.WriteString("?")
	}
	return out.String()
}
