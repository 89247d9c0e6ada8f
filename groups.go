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

import "github.com/rivaas-dev/rivaas/router/route"

// Group is the registration-time API surface for spec.md §4.1's
// namespace composition: every route registered through a Group has
// its namespace passed straight to the pattern compiler, which is what
// lets the wildcard sentinel and custom-regex patterns compose
// correctly under a prefix (simple string concatenation would not;
// see Compile's namespace rules).
//
// Middleware added with Use runs, for every route registered through
// this Group, after the router's global middleware and before the
// route's own handlers.
type Group struct {
	router     *Router
	namespace  string
	middleware []HandlerFunc
}

// With returns a Group whose routes are all registered under
// namespace. A nested group's With call concatenates its suffix onto
// the parent's namespace, and the combined string is what reaches the
// pattern compiler as its single namespace parameter.
func (r *Router) With(namespace string) *Group {
	return &Group{router: r, namespace: namespace}
}

// With returns a nested Group under g's namespace plus the given
// suffix, inheriting g's middleware.
func (g *Group) With(namespace string) *Group {
	mw := make([]HandlerFunc, len(g.middleware))
	copy(mw, g.middleware)
	return &Group{router: g.router, namespace: g.namespace + namespace, middleware: mw}
}

// Use appends middleware that runs for every route subsequently
// registered through g, and through any Group derived from g after this
// call (a derived Group copies g's middleware when With creates it).
func (g *Group) Use(handlers ...HandlerFunc) {
	g.middleware = append(g.middleware, handlers...)
}

// Handle registers path under g's namespace for the given methods,
// running g's middleware ahead of handlers.
func (g *Group) Handle(methods []string, path string, handlers ...HandlerFunc) (*route.Route, error) {
	chain := make([]HandlerFunc, 0, len(g.middleware)+len(handlers))
	chain = append(chain, g.middleware...)
	chain = append(chain, handlers...)
	return g.router.addRoute(g.namespace, methods, path, chain)
}

// GET registers a GET route under g's namespace. Panics on a
// registration error (invalid pattern or method), matching Router.GET.
func (g *Group) GET(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle([]string{"GET"}, path, handlers...))
}

// POST registers a POST route under g's namespace.
func (g *Group) POST(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle([]string{"POST"}, path, handlers...))
}

// PUT registers a PUT route under g's namespace.
func (g *Group) PUT(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle([]string{"PUT"}, path, handlers...))
}

// DELETE registers a DELETE route under g's namespace.
func (g *Group) DELETE(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle([]string{"DELETE"}, path, handlers...))
}

// PATCH registers a PATCH route under g's namespace.
func (g *Group) PATCH(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle([]string{"PATCH"}, path, handlers...))
}

// Any registers path under g's namespace with no method constraint.
func (g *Group) Any(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(g.Handle(nil, path, handlers...))
}
