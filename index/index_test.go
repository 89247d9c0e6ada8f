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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivaas-dev/rivaas/router/route"
)

func mustRoute(t *testing.T, path string) *route.Route {
	t.Helper()
	r, err := route.New(route.Options{Path: path, Handlers: []route.Handler{1}})
	require.NoError(t, err)
	return r
}

func TestIndex_AddAndFindExactPrefix(t *testing.T) {
	idx := New()
	r := mustRoute(t, "/users/[i:id]")
	idx.Add(r)

	found := idx.FindCandidates("/users/42")
	require.Len(t, found, 1)
	assert.Same(t, r, found[r.Hash])
}

func TestIndex_FindReachableFromAncestor(t *testing.T) {
	idx := New()
	r := mustRoute(t, "/api/users/[i:id]")
	idx.Add(r)

	// "/api" is a proper ancestor of the route's literal prefix.
	found := idx.FindCandidates("/api")
	require.Len(t, found, 1)
	assert.Same(t, r, found[r.Hash])

	// Root is always a reachable ancestor too.
	found = idx.FindCandidates("/")
	require.Len(t, found, 1)
}

func TestIndex_LongestPrefixWinsFirst(t *testing.T) {
	idx := New()
	shallow := mustRoute(t, "/users")
	deep := mustRoute(t, "/users/profile")
	idx.Add(shallow)
	idx.Add(deep)

	found := idx.FindCandidates("/users/profile")
	// /users/profile is its own bucket and non-empty, so the walk stops
	// there without needing to also look at the shallower /users bucket.
	require.Len(t, found, 1)
	assert.Same(t, deep, found[deep.Hash])
}

func TestIndex_CustomRegexGoesToCatchAll(t *testing.T) {
	idx := New()
	r := mustRoute(t, "@^/v[0-9]+/ping$")
	idx.Add(r)

	assert.Empty(t, idx.FindCandidates("/v2/ping"))
	catchAll := idx.CatchAll()
	require.Len(t, catchAll, 1)
	assert.Same(t, r, catchAll[r.Hash])
}

func TestIndex_NegatedRouteGoesToCatchAll(t *testing.T) {
	idx := New()
	r := mustRoute(t, "!/bar")
	idx.Add(r)

	// !/bar's literal prefix is "/bar", but the route matches everything
	// except /bar: filing it in the /bar bucket would make it invisible
	// to a request for any other path.
	assert.Empty(t, idx.FindCandidates("/bar"))
	catchAll := idx.CatchAll()
	require.Len(t, catchAll, 1)
	assert.Same(t, r, catchAll[r.Hash])
}

func TestIndex_NegatedRouteStaysReachableAlongsideUnrelatedPrefixBucket(t *testing.T) {
	idx := New()
	foo := mustRoute(t, "/foo")
	bar := mustRoute(t, "!/bar")
	idx.Add(foo)
	idx.Add(bar)

	found := idx.FindCandidates("/foo")
	_, ok := found[foo.Hash]
	assert.True(t, ok)

	catchAll := idx.CatchAll()
	_, ok = catchAll[bar.Hash]
	assert.True(t, ok, "!/bar must be reachable via the catch-all bucket even when /foo has its own primary bucket")
}

func TestIndex_EmptyPrefixGoesToCatchAll(t *testing.T) {
	idx := New()
	r := mustRoute(t, "*")
	idx.Add(r)

	assert.Empty(t, idx.FindCandidates("/anything"))
	assert.Len(t, idx.CatchAll(), 1)
}

func TestIndex_TwoRoutesSharePrefixBucket(t *testing.T) {
	idx := New()
	r1 := mustRoute(t, "/users/[i:id]")
	r2 := mustRoute(t, "/users/[s:slug]")
	idx.Add(r1)
	idx.Add(r2)

	found := idx.FindCandidates("/users/anything")
	assert.Len(t, found, 2)
}

func TestIndex_UnrelatedURIFallsBackToRootBucket(t *testing.T) {
	idx := New()
	r := mustRoute(t, "/users/[i:id]")
	idx.Add(r)

	// Neither "/posts/1" nor "/posts" has a bucket, so the walk ends at
	// the root bucket, which references every prefixed route.
	found := idx.FindCandidates("/posts/1")
	require.Len(t, found, 1)
	assert.Same(t, r, found[r.Hash])
}

func TestIndex_RadixSelectivity(t *testing.T) {
	idx := New()
	var all []*route.Route
	for i := 0; i < 200; i++ {
		p := fmt.Sprintf("/group%d/resource%d/item", i%10, i)
		r := mustRoute(t, p)
		idx.Add(r)
		all = append(all, r)
	}

	for _, r := range all {
		found := idx.FindCandidates(r.OriginalPath)
		require.NotEmpty(t, found)
		_, ok := found[r.Hash]
		assert.True(t, ok)
	}
}

func TestParentPrefix(t *testing.T) {
	assert.Equal(t, "/", parentPrefix("/users"))
	assert.Equal(t, "/api", parentPrefix("/api/users"))
	assert.Equal(t, "/", parentPrefix("/"))
}

func TestCanon(t *testing.T) {
	assert.Equal(t, "/users", canon("/users/"))
	assert.Equal(t, "/", canon("/"))
	assert.Equal(t, "/v", canon("/v"))
}
