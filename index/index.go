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

package index

import (
	"strings"
	"sync"

	"github.com/rivaas-dev/rivaas/router/route"
)

// bucket holds the routes whose literal prefix resolves exactly to this
// bucket's key ("own"), plus references to descendant buckets reachable
// from here ("children", keyed by the descendant's own key). children
// is how an ancestor bucket exposes descendants without copying them.
type bucket struct {
	own      map[uint64]*route.Route
	children map[string]*bucket
}

func newBucket() *bucket {
	return &bucket{own: make(map[uint64]*route.Route)}
}

// Index is the radix-style literal-prefix multimap described in
// spec.md §4.2. The zero value is not usable; construct with New.
type Index struct {
	mu       sync.RWMutex
	buckets  map[string]*bucket
	catchAll *bucket
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		buckets:  make(map[string]*bucket),
		catchAll: newBucket(),
	}
}

// Add inserts r into the index: into the catch-all bucket if r has no
// usable literal prefix, is a custom regex, or is negated, otherwise
// into its primary bucket, with ancestor-prefix aliases created up to
// and including the root bucket ("/"). A negated route's literal prefix
// describes what it excludes, not where it can be found: filing it in
// that prefix's own bucket would make FindCandidates stop its ancestor
// walk there and never surface the negated route for any URI outside
// that prefix, even though such a URI is exactly what the route
// matches (spec.md §4.2/§8, "never exclude a true match").
func (idx *Index) Add(r *route.Route) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	prefix := r.LiteralPrefix()

	if prefix == "" || r.IsCustomRegex() || r.Pattern.IsNegated {
		idx.catchAll.own[r.Hash] = r
		return
	}

	key := canon(prefix)
	b := idx.bucketFor(key)
	b.own[r.Hash] = r
	idx.linkAncestors(key, b)
}

// bucketFor returns the bucket keyed at key, creating it if absent.
// Callers must hold idx.mu.
func (idx *Index) bucketFor(key string) *bucket {
	b, ok := idx.buckets[key]
	if !ok {
		b = newBucket()
		idx.buckets[key] = b
	}
	return b
}

// linkAncestors walks from key toward the root, at each ancestor
// creating a reference to b keyed by key, stopping the first time an
// ancestor is found that already carries the link (spec.md §4.2 "stop
// at the first ancestor that already carries that link"). Callers must
// hold idx.mu.
func (idx *Index) linkAncestors(key string, b *bucket) {
	if key == "/" {
		return
	}
	cur := key
	for {
		parent := parentPrefix(cur)
		pb := idx.bucketFor(parent)
		if existing, ok := pb.children[key]; ok && existing == b {
			return
		}
		if pb.children == nil {
			pb.children = make(map[string]*bucket)
		}
		pb.children[key] = b
		if parent == "/" {
			return
		}
		cur = parent
	}
}

// FindCandidates returns every route reachable from the longest
// registered ancestor prefix of uri, walking from the longest toward
// "/" and stopping at the first non-empty result (spec.md §4.2
// findPossibleRoutes). The catch-all bucket is not included; callers
// that need it should also consult CatchAll.
func (idx *Index) FindCandidates(uri string) map[uint64]*route.Route {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	components := splitSegments(uri)
	for n := len(components); n >= 0; n-- {
		key := joinSegments(components[:n])
		b, ok := idx.buckets[key]
		if !ok {
			continue
		}
		out := make(map[uint64]*route.Route)
		collect(b, out, make(map[*bucket]bool))
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// CatchAll returns every route with no usable literal prefix (custom
// regex, empty prefix, or the wildcard sentinel).
func (idx *Index) CatchAll() map[uint64]*route.Route {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make(map[uint64]*route.Route, len(idx.catchAll.own))
	for h, r := range idx.catchAll.own {
		out[h] = r
	}
	return out
}

// collect deep-walks b and every bucket reachable from it (descendants
// referenced through children), merging every route found into out
// keyed by hash. visited prevents revisiting the same bucket through
// two different reference paths.
func collect(b *bucket, out map[uint64]*route.Route, visited map[*bucket]bool) {
	if visited[b] {
		return
	}
	visited[b] = true
	for h, r := range b.own {
		out[h] = r
	}
	for _, child := range b.children {
		collect(child, out, visited)
	}
}

// splitSegments splits a "/"-delimited path into its non-empty
// segments. "/" and "" both yield an empty slice.
func splitSegments(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// joinSegments re-assembles segments into a canonical "/"-prefixed key,
// mapping the empty case to "/".
func joinSegments(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

// canon normalizes a literal prefix (which may or may not fall on a
// path-segment boundary, e.g. a trailing partial segment before a
// placeholder with no preceding slash) to the nearest enclosing
// segment-boundary key used for bucket storage and ancestor linking.
func canon(prefix string) string {
	return joinSegments(splitSegments(prefix))
}

// parentPrefix returns the canonical key one path segment up from p,
// mapping any single-segment p to the root ("/").
func parentPrefix(p string) string {
	segments := splitSegments(p)
	if len(segments) == 0 {
		return "/"
	}
	return joinSegments(segments[:len(segments)-1])
}
