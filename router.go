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
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rivaas-dev/rivaas/router/index"
	"github.com/rivaas-dev/rivaas/router/pattern"
	"github.com/rivaas-dev/rivaas/router/route"
)

// RouteInfo is a read-only snapshot of one registered route, returned by
// Routes for introspection. It carries no behavior; mutating a returned
// value has no effect on the router.
type RouteInfo struct {
	Name      string
	Namespace string
	Methods   []string
	Path      string
}

// Router matches HTTP requests against registered routes and dispatches
// to their handler chains. The zero value is not usable; construct with
// New or MustNew.
//
// A Router is safe for concurrent use once constructed: registration may
// race with in-flight dispatch (late registrations are picked up by
// subsequent requests, not the one in flight), but registering routes
// concurrently with each other is the caller's responsibility to
// serialize, matching the Route Collection's and Route Index's own
// locking.
type Router struct {
	routes *RouteCollection
	index  *index.Index
	cache  *pattern.Cache

	middlewareMu sync.RWMutex
	middleware   []HandlerFunc

	handlersMu        sync.RWMutex
	httpErrorHandlers []HTTPErrorHandler
	errorHandlers     []ErrorHandler
	afterDispatch     []AfterDispatchFunc

	diagnostics DiagnosticHandler

	dispatched          atomic.Bool
	catchAllOrderWarned atomic.Bool
}

// New constructs a Router from opts. It never fails on its own; the
// error return exists for symmetry with route registration and so a
// future option can validate without breaking callers.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		routes: NewRouteCollection(),
		index:  index.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics instead of returning an error.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("router.MustNew: %v", err))
	}
	return r
}

// mustRoute panics if registration failed, otherwise returns r. Used by
// every fluent registration method (GET, POST, Group.GET, ...), which by
// convention surface registration failures as panics rather than errors.
func mustRoute(r *route.Route, err error) *route.Route {
	if err != nil {
		panic(err)
	}
	return r
}

// addRoute compiles and installs a route under namespace, with handlers
// run after the router's global middleware. It is the single path every
// registration method funnels through, which is what makes global
// middleware apply uniformly whether a route was registered directly on
// the Router or through a Group.
func (r *Router) addRoute(namespace string, methods []string, path string, handlers []HandlerFunc) (*route.Route, error) {
	r.middlewareMu.RLock()
	chain := make([]HandlerFunc, 0, len(r.middleware)+len(handlers))
	chain = append(chain, r.middleware...)
	chain = append(chain, handlers...)
	r.middlewareMu.RUnlock()

	opaque := make([]route.Handler, len(chain))
	for i, h := range chain {
		opaque[i] = h
	}

	rt, err := route.New(route.Options{
		Namespace: namespace,
		Path:      path,
		Methods:   methods,
		Handlers:  opaque,
		Cache:     r.cache,
	})
	if err != nil {
		return nil, err
	}

	r.routes.Add(rt)
	r.index.Add(rt)

	if r.dispatched.Load() {
		r.emit(DiagLateRegistration, "route registered after first dispatch", map[string]any{
			"path": path, "namespace": namespace,
		})
	} else {
		r.emit(DiagRouteRegistered, "route registered", map[string]any{
			"path": path, "namespace": namespace,
		})
	}

	return rt, nil
}

// Use appends handlers to the router's global middleware chain, run
// ahead of the own handlers (and ahead of any Group's middleware) of
// every route registered after this call, in the order Use was called.
// Routes registered before the call do not get these handlers.
func (r *Router) Use(handlers ...HandlerFunc) {
	r.middlewareMu.Lock()
	defer r.middlewareMu.Unlock()
	r.middleware = append(r.middleware, handlers...)
}

// GET registers path for GET requests at the router's root namespace.
func (r *Router) GET(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"GET"}, path, handlers))
}

// POST registers path for POST requests.
func (r *Router) POST(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"POST"}, path, handlers))
}

// PUT registers path for PUT requests.
func (r *Router) PUT(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"PUT"}, path, handlers))
}

// DELETE registers path for DELETE requests.
func (r *Router) DELETE(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"DELETE"}, path, handlers))
}

// PATCH registers path for PATCH requests.
func (r *Router) PATCH(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"PATCH"}, path, handlers))
}

// HEAD registers path for HEAD requests explicitly. Registering GET
// already makes a route reachable by HEAD (spec.md §4.3's HEAD-as-GET
// rule); use this only when HEAD needs handlers distinct from GET's.
func (r *Router) HEAD(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"HEAD"}, path, handlers))
}

// OPTIONS registers path for OPTIONS requests explicitly.
func (r *Router) OPTIONS(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", []string{"OPTIONS"}, path, handlers))
}

// Any registers path for every request method.
func (r *Router) Any(path string, handlers ...HandlerFunc) *route.Route {
	return mustRoute(r.addRoute("", nil, path, handlers))
}

// Handle registers path for methods (nil or empty means unconstrained).
func (r *Router) Handle(methods []string, path string, handlers ...HandlerFunc) (*route.Route, error) {
	return r.addRoute("", methods, path, handlers)
}

// OnHTTPError registers a handler invoked for HTTP-kind errors (404,
// 405, an explicit Abort(code), or an *HTTPError a handler returned).
// Handlers run in registration order; every registered handler runs
// (spec.md §4.3's HTTP-error path does not stop at the first).
func (r *Router) OnHTTPError(handler HTTPErrorHandler) {
	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()
	r.httpErrorHandlers = append(r.httpErrorHandlers, handler)
}

// OnError registers a handler invoked for errors that are neither
// flow-control signals nor HTTP-kind errors. Handlers run in
// registration order until one returns claimed=true; an error no
// handler claims becomes an UnhandledError.
func (r *Router) OnError(handler ErrorHandler) {
	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()
	r.errorHandlers = append(r.errorHandlers, handler)
}

// AfterDispatch registers a callback run once per request, after the
// main dispatch loop and before the response is sent.
func (r *Router) AfterDispatch(fn AfterDispatchFunc) {
	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()
	r.afterDispatch = append(r.afterDispatch, fn)
}

// Routes returns a snapshot of every registered route, in registration
// order. Purely informational; the dispatcher does not consult it.
func (r *Router) Routes() []RouteInfo {
	all := r.routes.All()
	out := make([]RouteInfo, len(all))
	for i, rt := range all {
		out[i] = RouteInfo{
			Name:      rt.Name,
			Namespace: rt.Namespace,
			Methods:   rt.MethodNames(),
			Path:      rt.OriginalPath,
		}
	}
	return out
}

// ServeHTTP implements http.Handler, running the dispatch loop for req
// and writing the result to w.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.dispatched.Store(true)
	r.serve(w, req)
}

func (r *Router) snapshotHTTPErrorHandlers() []HTTPErrorHandler {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()
	out := make([]HTTPErrorHandler, len(r.httpErrorHandlers))
	copy(out, r.httpErrorHandlers)
	return out
}

func (r *Router) snapshotErrorHandlers() []ErrorHandler {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()
	out := make([]ErrorHandler, len(r.errorHandlers))
	copy(out, r.errorHandlers)
	return out
}

func (r *Router) snapshotAfterDispatch() []AfterDispatchFunc {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()
	out := make([]AfterDispatchFunc, len(r.afterDispatch))
	copy(out, r.afterDispatch)
	return out
}
