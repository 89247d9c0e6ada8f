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
	"net/http"
	"sync"
)

// contextPool reuses *Context values across requests. A Context's
// Matched collection and MethodsMatched set are exclusively owned by
// the request that allocated them (spec.md §5, "Per-request state...
// neither outlives the request") and are reset, not reallocated, on
// each reuse.
var contextPool = sync.Pool{
	New: func() any {
		return &Context{
			Matched:        NewRouteCollection(),
			MethodsMatched: make(map[string]bool),
			params:         &Params{},
		}
	},
}

// acquireContext returns a Context reset for a new request against r.
func acquireContext(r *Router, req *http.Request, resp *Response) *Context {
	ctx := contextPool.Get().(*Context)
	ctx.Request = req
	ctx.Response = resp
	ctx.Router = r
	ctx.Service = nil
	ctx.App = nil
	ctx.Matched.reset()
	for k := range ctx.MethodsMatched {
		delete(ctx.MethodsMatched, k)
	}
	ctx.params.names = ctx.params.names[:0]
	ctx.params.values = ctx.params.values[:0]
	return ctx
}

// releaseContext returns ctx to the pool. Callers must not use ctx
// after calling this.
func releaseContext(ctx *Context) {
	ctx.Request = nil
	ctx.Response = nil
	ctx.Router = nil
	contextPool.Put(ctx)
}
