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

import "net/http"

// Context is the canonical argument the dispatcher hands to every
// handler, HTTP-error handler, and after-dispatch callback. It bundles
// exactly the collaborators spec.md §6.2 names the core as owning:
// Request, Response, Router, Matched, MethodsMatched, plus two opaque
// pass-through slots, Service and App, that the core never reads but a
// host application can stash arbitrary context in.
//
// A Context is taken from a pool and reset for each request (see
// pool.go) and must not be retained past the handler call that
// received it.
type Context struct {
	Request  *http.Request
	Response *Response
	Router   *Router

	// Matched accumulates the routes that have counted as matches so
	// far in this request's dispatch loop (spec.md §4.3 "matched").
	Matched *RouteCollection

	// MethodsMatched accumulates every method name from a route that
	// matched path-wise in this request, whether or not it also matched
	// the request method (spec.md §4.3 step 6). Used to populate the
	// Allow header on 405/OPTIONS.
	MethodsMatched map[string]bool

	// Service and App are opaque slots a handler or middleware may use
	// for its own context; the core never inspects them and resets both
	// to nil for each request (spec.md §6.2).
	Service any
	App     any

	params *Params
}

// Param returns the decoded value captured under name so far in this
// request (a later matching route overwrites an earlier route's value
// of the same name), or "" if there is no such parameter.
func (c *Context) Param(name string) string {
	v, _ := c.params.Get(name)
	return v
}

// ParamOK is like Param but also reports whether name was captured.
func (c *Context) ParamOK(name string) (string, bool) {
	return c.params.Get(name)
}

// ParamNames returns the names of every parameter captured so far in
// this request, in first-capture order.
func (c *Context) ParamNames() []string {
	return c.params.Names()
}

// HandlerFunc is the signature every entry in a route's handler chain
// satisfies. Its return value is spec.md §4.3 step 5's "return value
// of the callback": nil is ignored, a *Response replaces ctx.Response
// outright, anything else is stringified and (if non-empty) appended
// to the current response body.
//
// A non-nil error is interpreted by the dispatcher before it reaches
// any caller: a flow-control value (ErrSkipThis, SkipNext,
// ErrSkipRemaining, or ErrAbort from Abort(0)) steers the dispatch loop
// and never surfaces past it; an *HTTPError, including Abort with a
// non-zero code, is routed to the HTTP-error handler chain; anything
// else is routed to the unknown-error path (spec.md §7).
type HandlerFunc func(*Context) (any, error)

// HTTPErrorHandler receives HTTP-kind errors the dispatcher raises:
// explicit 404/405, a handler-returned *HTTPError, or Abort(code),
// with the canonical argument tuple from spec.md §6.3.
type HTTPErrorHandler func(code int, router *Router, matched *RouteCollection, methodsMatched map[string]bool, err error)

// ErrorHandler receives any error that escaped a handler or
// after-dispatch callback and was not itself an HTTP-kind error. Returning true claims the error (stopping the chain);
// returning false passes it to the next registered ErrorHandler, or to
// UnhandledError if none claims it (spec.md §7 "Unknown-error path").
type ErrorHandler func(ctx *Context, err error) (claimed bool)

// AfterDispatchFunc runs once per request after the main dispatch loop
// and before the response is sent (spec.md §4.3 "After-dispatch
// chain"). An error returned here is routed through the same
// unknown-error path as a handler error.
type AfterDispatchFunc func(ctx *Context) error

// runChain executes handlers in order against ctx, stopping at the
// first one that returns a non-nil error. Flow-control and HTTP errors
// are returned to the caller unexamined; the caller (the dispatcher)
// is responsible for interpreting them.
func runChain(ctx *Context, handlers []HandlerFunc) error {
	for _, h := range handlers {
		v, err := h(ctx)
		if err != nil {
			return err
		}
		appendReturnValue(ctx, v)
	}
	return nil
}
