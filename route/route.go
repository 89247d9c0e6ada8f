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

import (
	"sync/atomic"

	"github.com/rivaas-dev/rivaas/router/pattern"
)

// Handler is a type alias for a route's compiled handler chain entries.
// In practice this is router.HandlerFunc; using any here avoids an import
// cycle between this package and the root router package (the root package
// imports route, so route cannot import it back).
type Handler = any

// nextHash hands out process-unique route identities. spec.md §3 requires
// Route.hash to be "unique within the process"; a monotonic counter
// satisfies that without needing any coordination across routes.
var nextHash atomic.Uint64

// Route is an immutable record bundling a compiled pattern, a method
// filter, a handler chain, and the bookkeeping the dispatcher needs
// (spec.md §3 "Route"). Once constructed by New, every field here is
// read-only except Name, which may be set exactly once by SetName.
type Route struct {
	// Hash is this Route's stable per-instance identity, used as the key
	// in the Route Index's buckets (spec.md §3, "hash").
	Hash uint64

	// OriginalPath is the pattern string exactly as the caller wrote it,
	// sentinel markers and all, without the namespace. Reverse routing
	// and introspection report this field; the dispatcher's pre-filter
	// and fast paths (spec.md §4.3) use the namespace-inclusive Pattern.
	OriginalPath string

	// Namespace is the prefix this route was registered under (possibly
	// empty). Kept alongside Pattern so reverse routing and introspection
	// can report it without re-deriving it from Pattern.Normalized.
	Namespace string

	// Pattern is the compiled matcher artifact produced by the pattern
	// package: the anchored regex, literal prefix, and sentinel flags.
	Pattern *pattern.Pattern

	// Methods is this route's method filter. A nil Methods matches every
	// request method (spec.md §3, "unset").
	Methods methodSet

	// Handlers is the handler chain invoked on a match, in order.
	Handlers []Handler

	// Name is an optional reverse-routing identifier. Empty until SetName
	// is called; set at most once.
	Name string

	// CountMatch reports whether a match by this route counts toward "a
	// route was matched" for 404 suppression (spec.md §3). False iff the
	// original path was the wildcard sentinel or empty/unset.
	CountMatch bool
}

// Options configures a new Route. Handlers is the only required field;
// everything else defaults to the zero value (nil Methods means every
// method).
type Options struct {
	Namespace string
	Path      string
	Methods   []string
	Handlers  []Handler

	// Cache, if non-nil, is consulted before compiling Path (spec.md
	// §4.1 "Caching contract"). Purely advisory: a nil Cache always
	// compiles directly and produces an identical Route either way.
	Cache *pattern.Cache
}

// New compiles path (within namespace) and validates methods, returning
// a fully-formed, immutable Route. Construction fails with a
// *PatternCompilationError if the pattern does not compile, or with an
// *InvalidArgumentError if a method name isn't canonical or no handlers
// were supplied (spec.md §3 invariants, §7 "InvalidArgument").
func New(opts Options) (*Route, error) {
	if len(opts.Handlers) == 0 {
		return nil, &InvalidArgumentError{Reason: "route has no handlers"}
	}

	methods, err := newMethodSet(opts.Methods)
	if err != nil {
		return nil, err
	}

	compile := pattern.Compile
	if opts.Cache != nil {
		compile = opts.Cache.CompileCached
	}
	p, err := compile(opts.Namespace, opts.Path)
	if err != nil {
		return nil, &PatternCompilationError{Path: opts.Path, Err: err}
	}

	return &Route{
		Hash:         nextHash.Add(1),
		OriginalPath: opts.Path,
		Namespace:    opts.Namespace,
		Pattern:      p,
		Methods:      methods,
		Handlers:     opts.Handlers,
		CountMatch:   opts.Path != "" && opts.Path != "*",
	}, nil
}

// SetName assigns the route's reverse-routing identifier. Intended to be
// called at most once, immediately after New; the core does not enforce
// uniqueness (that's the Route Collection's job, spec.md §3 "Route
// Collection").
func (r *Route) SetName(name string) {
	r.Name = name
}

// MatchesMethod reports whether reqMethod (already canonicalized to
// upper-case) satisfies this route's method filter, applying the
// HEAD-matches-GET rule (spec.md §4.3 step 2).
func (r *Route) MatchesMethod(reqMethod string) bool {
	return r.Methods.Matches(reqMethod)
}

// MethodNames returns this route's method filter as a slice of
// canonical names, or an empty slice if the route is unconstrained.
func (r *Route) MethodNames() []string {
	return r.Methods.Names()
}

// IsCustomRegex reports whether the route's pattern started with "@" or
// "!@": such routes are excluded from the Route Index's prefix buckets
// and always reached through the catch-all bucket (spec.md §4.2).
func (r *Route) IsCustomRegex() bool {
	return r.Pattern.IsCustomRegex
}

// LiteralPrefix returns the longest literal prefix of the route's
// normalized (namespace-prefixed) path, the same value the Route
// Index buckets on and the dispatcher's pre-filter compares against
// (spec.md §4.2 step 2, §4.3 step 3). It is already computed by the
// pattern package as part of compilation.
func (r *Route) LiteralPrefix() string {
	return r.Pattern.LiteralPrefix
}
