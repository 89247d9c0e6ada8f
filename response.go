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
	"bytes"
	"fmt"
	"net/http"
)

// Response is the per-request, buffered response object handlers act
// on. Unlike http.ResponseWriter, writes to it are not flushed to the
// network until dispatch finishes, which is what lets a later handler
// in the same dispatch loop append to a body an earlier handler
// started, or replace the response outright (spec.md §4.3 step 5).
type Response struct {
	Header     http.Header
	StatusCode int

	body   bytes.Buffer
	locked bool
}

// NewResponse returns a fresh, unlocked Response with status 200.
func NewResponse() *Response {
	return &Response{
		Header:     make(http.Header),
		StatusCode: http.StatusOK,
	}
}

// WriteString appends s to the response body. A no-op, per spec.md
// §4.3 step 5 ("appending to a locked response is a silent no-op"), if
// the response is locked or s is empty.
func (resp *Response) WriteString(s string) {
	if resp.locked || s == "" {
		return
	}
	resp.body.WriteString(s)
}

// Body returns the accumulated response body.
func (resp *Response) Body() []byte {
	return resp.body.Bytes()
}

// Len returns the number of bytes currently accumulated in the body.
func (resp *Response) Len() int {
	return resp.body.Len()
}

// Truncate discards everything written to the body after byte offset n,
// used to roll back a route's contribution on ErrSkipThis (spec.md
// §4.4, "abandon the current route's contribution").
func (resp *Response) Truncate(n int) {
	resp.body.Truncate(n)
}

// Reset clears the accumulated body without affecting status, headers,
// or lock state. Used to clear a HEAD response's body before send
// (spec.md §6.6, "the response body is cleared before send for HEAD
// requests").
func (resp *Response) Reset() {
	resp.body.Reset()
}

// Lock marks the response as sent; further WriteString calls are
// silently dropped.
func (resp *Response) Lock() { resp.locked = true }

// Unlock clears the locked flag. Used by the HTTP-error path to
// temporarily restore write access while error handlers run, then
// re-lock afterward (spec.md §4.3 "HTTP-error path").
func (resp *Response) Unlock() { resp.locked = false }

// Locked reports whether the response has been locked.
func (resp *Response) Locked() bool { return resp.locked }

// appendReturnValue implements the handler return-value contract from
// spec.md §4.3 step 5: nil is ignored, a *Response replaces ctx's
// current response outright, and anything else is stringified and (if
// non-empty) appended to the current body.
func appendReturnValue(ctx *Context, v any) {
	if v == nil {
		return
	}
	if resp, ok := v.(*Response); ok {
		ctx.Response = resp
		return
	}
	if s, ok := v.(string); ok {
		ctx.Response.WriteString(s)
		return
	}
	if st, ok := v.(fmt.Stringer); ok {
		ctx.Response.WriteString(st.String())
		return
	}
	ctx.Response.WriteString(fmt.Sprint(v))
}
