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
	"sync"

	"github.com/rivaas-dev/rivaas/router/route"
)

// RouteCollection is the ordered, named collection of routes spec.md
// §3 describes: iteration always yields registration order, regardless
// of whether a route carries a name. It backs both the router's master
// list of registered routes and the per-request "matched" set the
// dispatcher accumulates (spec.md §4.3).
type RouteCollection struct {
	mu       sync.RWMutex
	ordered  []*route.Route
	byHash   map[uint64]int // hash -> index into ordered, for dedup on Add
	byName   map[string]*route.Route
	prepared bool
}

// NewRouteCollection returns an empty RouteCollection.
func NewRouteCollection() *RouteCollection {
	return &RouteCollection{
		byHash: make(map[uint64]int),
	}
}

// Add appends r to the collection if its hash isn't already present,
// preserving registration order. Adding an already-present route is a
// no-op; this lets the dispatcher freely re-add a route to the
// per-request "matched" collection without checking membership first.
// Any previous prepareNamed pass is invalidated (spec.md §3, "Subse
// quent mutations invalidate the 'prepared' flag").
func (rc *RouteCollection) Add(r *route.Route) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, exists := rc.byHash[r.Hash]; exists {
		return
	}
	rc.byHash[r.Hash] = len(rc.ordered)
	rc.ordered = append(rc.ordered, r)
	rc.prepared = false
}

// Len returns the number of routes in the collection.
func (rc *RouteCollection) Len() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.ordered)
}

// Contains reports whether a route with the given hash is present.
func (rc *RouteCollection) Contains(hash uint64) bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	_, ok := rc.byHash[hash]
	return ok
}

// Each calls fn once per route in registration order. fn must not call
// back into rc.
func (rc *RouteCollection) Each(fn func(*route.Route)) {
	rc.mu.RLock()
	routes := rc.ordered
	rc.mu.RUnlock()
	for _, r := range routes {
		fn(r)
	}
}

// All returns a snapshot slice of every route, in registration order.
func (rc *RouteCollection) All() []*route.Route {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make([]*route.Route, len(rc.ordered))
	copy(out, rc.ordered)
	return out
}

// PrepareNamed re-keys the named-route lookup table from the current
// contents of the collection, without touching iteration order
// (spec.md §3, "A one-shot prepareNamed pass re-keys entries that
// carry a non-null name"). Safe to call multiple times; a call after
// new routes were Added re-derives the table from scratch.
func (rc *RouteCollection) PrepareNamed() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.prepared {
		return
	}
	rc.byName = make(map[string]*route.Route)
	for _, r := range rc.ordered {
		if r.Name != "" {
			rc.byName[r.Name] = r
		}
	}
	rc.prepared = true
}

// ByName returns the route registered under name, if PrepareNamed has
// been called since it was named.
func (rc *RouteCollection) ByName(name string) (*route.Route, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	r, ok := rc.byName[name]
	return r, ok
}

// reset empties rc in place so it can be reused for a new request
// (spec.md §5, "the dispatcher allocates a fresh 'matched routes'
// collection... per request").
func (rc *RouteCollection) reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.ordered = rc.ordered[:0]
	for k := range rc.byHash {
		delete(rc.byHash, k)
	}
	rc.byName = nil
	rc.prepared = false
}
