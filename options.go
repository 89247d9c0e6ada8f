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

import "github.com/rivaas-dev/rivaas/router/pattern"

// Option configures a Router at construction time.
type Option func(*Router)

// WithDiagnostics sets the handler that receives diagnostic events
// (route registration, registration after the first dispatch, the
// catch-all execution-order note, and unhandled errors; see
// DiagnosticKind). The router behaves identically whether or not one is
// set.
//
// Example with structured logging:
//
//	r := router.MustNew(router.WithDiagnostics(func(e router.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	}))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithPatternCacheSize enables the pattern compiler's advisory
// compiled-pattern cache (spec.md §4.1 "Caching contract") with room
// for size entries. A size of zero (the default) disables the cache:
// every route compiles its pattern exactly once at registration time
// regardless, so this only matters for callers that recompile
// equivalent patterns repeatedly (e.g. dynamically-generated routes).
func WithPatternCacheSize(size int) Option {
	return func(r *Router) {
		r.cache = pattern.NewCache(size)
	}
}
