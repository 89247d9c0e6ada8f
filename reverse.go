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

import (
	"net/url"

	"github.com/rivaas-dev/rivaas/router/pattern"
)

// PathFor builds the path for the route registered under name,
// substituting each of its placeholder blocks with params (spec.md
// §6.4). A missing optional placeholder's block is erased entirely; a
// missing required one is left as literal placeholder syntax in the
// result, which is very likely not what the caller wants but matches
// the specified behavior rather than failing outright.
//
// If no placeholder was actually substituted and the route is a custom
// regex (which has no placeholder syntax to substitute in the first
// place), PathFor returns "/" when flattenRegex is true, or the route's
// original pattern string otherwise.
//
// If query is non-nil and non-empty, it is appended as a "?"-prefixed
// query string.
func (r *Router) PathFor(name string, params map[string]string, query url.Values, flattenRegex bool) (string, error) {
	r.routes.PrepareNamed()
	rt, ok := r.routes.ByName(name)
	if !ok {
		return "", ErrRouteNameNotFound
	}

	path, substituted := pattern.Substitute(rt.OriginalPath, params)
	switch {
	case !substituted && rt.IsCustomRegex() && flattenRegex:
		path = "/"
	case !substituted && rt.IsCustomRegex():
		path = rt.OriginalPath
	default:
		path = rt.Namespace + path
	}

	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}
