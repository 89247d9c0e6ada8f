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

import "strings"

// canonicalMethods is the fixed set of HTTP method names this package
// accepts at registration time.
var canonicalMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"HEAD":    true,
	"OPTIONS": true,
	"PATCH":   true,
	"TRACE":   true,
	"CONNECT": true,
}

// methodSet is a Route's method constraint. A nil methodSet means
// "unset": matches every method.
type methodSet map[string]bool

// newMethodSet canonicalizes and validates methods, returning nil (the
// unconstrained set) when methods is empty.
func newMethodSet(methods []string) (methodSet, error) {
	if len(methods) == 0 {
		return nil, nil
	}
	set := make(methodSet, len(methods))
	for _, m := range methods {
		canon := strings.ToUpper(strings.TrimSpace(m))
		if !canonicalMethods[canon] {
			return nil, &InvalidArgumentError{Reason: "not a canonical HTTP method: " + m}
		}
		set[canon] = true
	}
	return set, nil
}

// Matches reports whether reqMethod (already canonical, uppercase)
// satisfies this set. A HEAD request also satisfies a set that
// contains GET, per the HEAD-as-GET dispatch rule.
func (s methodSet) Matches(reqMethod string) bool {
	if s == nil {
		return true
	}
	if s[reqMethod] {
		return true
	}
	return reqMethod == "HEAD" && s["GET"]
}

// Names returns the canonical method names in this set. Order is
// unspecified; callers that need a stable Allow header should sort.
func (s methodSet) Names() []string {
	names := make([]string, 0, len(s))
	for m := range s {
		names = append(names, m)
	}
	return names
}
