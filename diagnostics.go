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

// DiagnosticKind categorizes a DiagnosticEvent.
type DiagnosticKind string

const (
	// DiagRouteRegistered fires once per successful route registration.
	DiagRouteRegistered DiagnosticKind = "route_registered"

	// DiagLateRegistration fires when a route is registered after the
	// router has already dispatched at least one request: spec.md
	// §5's shared-resource policy says the core "MUST NOT mutate [the
	// Route Collection or Route Index] after the first dispatch"; the
	// router does not refuse the registration, but flags it.
	DiagLateRegistration DiagnosticKind = "route_registered_after_dispatch"

	// DiagCatchAllExecutionOrder fires once, lazily, the first time a
	// request's candidate set mixes catch-all and literal-prefixed
	// routes, documenting the spec.md §9 behavioral note that their
	// relative execution order is no longer guaranteed to equal
	// registration order once the radix index narrows candidates. This
	// router preserves registration order unconditionally (spec.md §9,
	// recommendation (a)), so the event is purely informational.
	DiagCatchAllExecutionOrder DiagnosticKind = "catch_all_execution_order"

	// DiagUnhandledError fires when an error escaped every registered
	// ErrorHandler and became an UnhandledError (spec.md §7). ServeHTTP
	// has no error return to propagate this to, so it is surfaced here
	// instead of panicking the server.
	DiagUnhandledError DiagnosticKind = "unhandled_error"
)

// DiagnosticEvent is an informational event the router may emit.
// Diagnostics never change router behavior; they exist purely for
// observability.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticHandler receives diagnostic events. A nil handler (the
// default) silently drops them.
//
// Example wiring diagnostics to structured logging:
//
//	r := router.MustNew(router.WithDiagnostics(func(e router.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", string(e.Kind))
//	}))
type DiagnosticHandler func(DiagnosticEvent)

// emit delivers an event to r's diagnostic handler, if any.
func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
