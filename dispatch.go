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
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/rivaas-dev/rivaas/router/route"
)

// serve runs one request end to end: dispatch, after-dispatch callbacks,
// error routing, and writing the buffered Response to w.
func (r *Router) serve(w http.ResponseWriter, req *http.Request) {
	method := strings.ToUpper(req.Method)
	// EscapedPath, not Path: percent-decoding is this package's job (it
	// must leave %2F undecoded-to-split, per spec.md §6.5), and
	// net/url's Path field has already fully unescaped the request URI
	// by the time we see it.
	pathname := req.URL.EscapedPath()

	resp := NewResponse()
	ctx := acquireContext(r, req, resp)
	defer releaseContext(ctx)

	if err := r.dispatchLoop(ctx, method, pathname); err != nil {
		r.handleDispatchError(ctx, err)
	}
	for _, fn := range r.snapshotAfterDispatch() {
		if aerr := fn(ctx); aerr != nil {
			r.handleDispatchError(ctx, aerr)
			break
		}
	}

	if method == "HEAD" {
		ctx.Response.Reset()
	}
	ctx.Response.Lock()

	writeResponse(w, ctx.Response)
}

// capture is one raw (not yet percent-decoded) parameter captured by a
// route's regex, either named or positional.
type capture struct {
	name  string
	value string
}

// dispatchLoop implements the match-execute loop (spec.md §4.3): narrow
// candidates via the Route Index, then walk the full Route Collection in
// registration order, running only the candidates' contribution.
func (r *Router) dispatchLoop(ctx *Context, method, pathname string) error {
	candidates := r.index.FindCandidates(pathname)
	catchAll := r.index.CatchAll()

	if len(candidates) > 0 && len(catchAll) > 0 && r.catchAllOrderWarned.CompareAndSwap(false, true) {
		r.emit(DiagCatchAllExecutionOrder, "candidate set mixes catch-all and literal-prefixed routes", nil)
	}

	skipRemaining := 0

loop:
	for _, rt := range r.routes.All() {
		_, inNarrowed := candidates[rt.Hash]
		_, inCatchAll := catchAll[rt.Hash]
		if !inNarrowed && !inCatchAll {
			continue
		}

		if skipRemaining > 0 {
			skipRemaining--
			continue
		}

		methodOK := rt.MatchesMethod(method)
		caps, rawMatch := matchPath(rt, pathname)

		effectiveMatch := rawMatch
		if rt.Pattern.IsNegated && !xorExempt(rt) {
			effectiveMatch = !rawMatch
		}

		if effectiveMatch && rt.CountMatch {
			for _, m := range rt.MethodNames() {
				ctx.MethodsMatched[m] = true
			}
		}

		if !effectiveMatch || !methodOK {
			continue
		}

		for _, c := range caps {
			ctx.params.set(c.name, decodeParam(c.value))
		}

		bodyLen := ctx.Response.Len()
		prevResp := ctx.Response

		err := runChain(ctx, handlersOf(rt))
		if err == nil {
			if rt.CountMatch {
				ctx.Matched.Add(rt)
			}
			continue
		}

		if !isFlowControl(err) {
			// HttpError(code) or a genuine handler error: stop dispatch
			// entirely and let the caller route it (spec.md §7).
			return err
		}

		if rt.CountMatch {
			ctx.Matched.Add(rt)
		}

		var sn *skipNext
		switch {
		case errors.Is(err, ErrSkipThis):
			// Abandon this route's contribution (spec.md §4.4): discard
			// whatever its handler chain wrote to (or replaced) the
			// response before it returned ErrSkipThis.
			if ctx.Response == prevResp {
				ctx.Response.Truncate(bodyLen)
			} else {
				ctx.Response = prevResp
			}
		case errors.As(err, &sn):
			skipRemaining = sn.n
		case errors.Is(err, ErrSkipRemaining), errors.Is(err, ErrAbort):
			break loop
		}
	}

	if ctx.Matched.Len() == 0 {
		if len(ctx.MethodsMatched) > 0 {
			methods := make([]string, 0, len(ctx.MethodsMatched))
			for m := range ctx.MethodsMatched {
				methods = append(methods, m)
			}
			sort.Strings(methods)
			ctx.Response.Header.Set("Allow", strings.Join(methods, ", "))
			if method != http.MethodOptions {
				return NewHTTPError(http.StatusMethodNotAllowed, "")
			}
			return nil
		}
		return NewHTTPError(http.StatusNotFound, "")
	}
	return nil
}

// xorExempt reports whether rt's compiled regex already encodes
// negation, so the dispatcher must not XOR the raw match outcome with
// IsNegated a second time. Only the custom-regex-plus-namespace
// composition (spec.md §4.1, "negated form becomes ^<ns>(?!<body>)")
// bakes negation into the regex itself; every other negated form (a
// plain negated path, or a negated custom regex with no namespace)
// compiles to the positive match and needs the external XOR.
func xorExempt(rt *route.Route) bool {
	return rt.Pattern.IsCustomRegex && rt.Pattern.IsNegated && rt.Namespace != ""
}

// matchPath applies the path test from spec.md §4.3 step 3: the
// wildcard-sentinel fast path (un-namespaced sentinel only), the
// non-dynamic/non-regex exact-match fast path, the literal-prefix
// pre-filter (skipped for custom-regex routes), and finally the compiled
// regex. Returns every capture the regex made (empty for the fast
// paths) and whether the raw (pre-negation) match succeeded.
func matchPath(rt *route.Route, pathname string) ([]capture, bool) {
	if rt.Pattern.IsWildcardSentinel && rt.Namespace == "" {
		return nil, true
	}

	if !rt.Pattern.IsDynamic && !rt.Pattern.IsCustomRegex && !rt.Pattern.IsWildcardSentinel {
		if strings.TrimPrefix(pathname, "/") == strings.TrimPrefix(rt.Pattern.Normalized, "/") {
			return nil, true
		}
		return nil, false
	}

	if prefix := rt.LiteralPrefix(); prefix != "" && !rt.Pattern.IsCustomRegex {
		if !strings.HasPrefix(strings.TrimPrefix(pathname, "/"), strings.TrimPrefix(prefix, "/")) {
			return nil, false
		}
	}

	idx := rt.Pattern.Regex.FindStringSubmatchIndex(pathname)
	if idx == nil {
		return nil, false
	}

	names := rt.Pattern.Regex.SubexpNames()
	var caps []capture
	positional := 0
	for i := 1; i < len(idx)/2; i++ {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo < 0 {
			continue // group did not participate (e.g. an omitted optional block)
		}
		value := pathname[lo:hi]
		if names[i] != "" {
			caps = append(caps, capture{name: names[i], value: value})
			continue
		}
		caps = append(caps, capture{name: strconv.Itoa(positional), value: value})
		positional++
	}
	return caps, true
}

// handlersOf narrows rt's opaque handler chain back to []HandlerFunc.
func handlersOf(rt *route.Route) []HandlerFunc {
	out := make([]HandlerFunc, len(rt.Handlers))
	for i, h := range rt.Handlers {
		out[i] = h.(HandlerFunc)
	}
	return out
}

// handleDispatchError routes an error that escaped dispatchLoop or the
// after-dispatch chain: an *HTTPError (covering 404, 405, Abort(code),
// and a handler-returned *HTTPError) goes to the HTTP-error handler
// chain; anything else goes to the unknown-error path (spec.md §7).
func (r *Router) handleDispatchError(ctx *Context, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		r.runHTTPErrorHandlers(ctx, httpErr)
		return
	}
	r.routeUnknownError(ctx, err)
}

// runHTTPErrorHandlers invokes every registered HTTPErrorHandler with
// the canonical argument tuple (spec.md §6.3), unlocking the response
// for their use and locking it again once they've all run.
func (r *Router) runHTTPErrorHandlers(ctx *Context, httpErr *HTTPError) {
	ctx.Response.Unlock()
	ctx.Response.StatusCode = httpErr.Code
	for _, h := range r.snapshotHTTPErrorHandlers() {
		h(httpErr.Code, r, ctx.Matched, ctx.MethodsMatched, httpErr)
	}
	ctx.Response.Lock()
}

// routeUnknownError offers err to every registered ErrorHandler in
// order; if none claims it, the response is set to 500 and an
// UnhandledError is emitted as a diagnostic (spec.md §7's
// UnhandledError is normally re-raised to dispatch's caller, but
// ServeHTTP has no error return to carry it to).
func (r *Router) routeUnknownError(ctx *Context, err error) {
	for _, h := range r.snapshotErrorHandlers() {
		if h(ctx, err) {
			return
		}
	}
	ctx.Response.StatusCode = http.StatusInternalServerError
	unhandled := &UnhandledError{Err: err}
	r.emit(DiagUnhandledError, unhandled.Error(), map[string]any{"error": err.Error()})
}

// writeResponse flushes a buffered Response to the network.
func writeResponse(w http.ResponseWriter, resp *Response) {
	for k, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body())
}
