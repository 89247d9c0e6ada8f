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

package router

import "net/url"

// Params is the ordered name -> decoded-value mapping captured from a
// matched route's placeholders (spec.md §3 "Parameter capture"). Named
// captures overwrite an existing entry of the same name; unnamed
// (numeric-indexed) captures are appended positionally under their
// 0-based index, stringified.
type Params struct {
	names  []string
	values []string
}

// Get returns the decoded value captured under name, and whether it
// was present.
func (p *Params) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return "", false
}

// Names returns the captured parameter names in first-seen order.
func (p *Params) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// set stores value under name, overwriting any existing entry with
// that name in place (spec.md §4.3 step 5, "named captures overwrite
// existing same-name entries").
func (p *Params) set(name, value string) {
	for i, n := range p.names {
		if n == name {
			p.values[i] = value
			return
		}
	}
	p.names = append(p.names, name)
	p.values = append(p.values, value)
}

// decodeParam percent-decodes value per RFC 3986: %XX sequences are
// decoded, "+" is left exactly as written (never folded to a space),
// and a decoded "%2F" is delivered to the handler unchanged, i.e. no
// further re-splitting of the result on "/" (spec.md §6.5). url.Path
// Unescape has exactly this behavior, unlike url.QueryUnescape which
// also folds "+" to a space.
func decodeParam(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}
