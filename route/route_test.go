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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AssignsUniqueHash(t *testing.T) {
	r1, err := New(Options{Path: "/a", Handlers: []Handler{1}})
	require.NoError(t, err)
	r2, err := New(Options{Path: "/b", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.NotEqual(t, r1.Hash, r2.Hash)
}

func TestNew_NoHandlersFails(t *testing.T) {
	_, err := New(Options{Path: "/a"})
	require.Error(t, err)
	var iae *InvalidArgumentError
	require.ErrorAs(t, err, &iae)
}

func TestNew_InvalidMethodFails(t *testing.T) {
	_, err := New(Options{Path: "/a", Methods: []string{"FROB"}, Handlers: []Handler{1}})
	require.Error(t, err)
	var iae *InvalidArgumentError
	require.ErrorAs(t, err, &iae)
}

func TestNew_BadPatternFails(t *testing.T) {
	_, err := New(Options{Path: "@(unterminated", Handlers: []Handler{1}})
	require.Error(t, err)
	var pce *PatternCompilationError
	require.ErrorAs(t, err, &pce)
}

func TestNew_CountMatch(t *testing.T) {
	wild, err := New(Options{Path: "*", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.False(t, wild.CountMatch)

	plain, err := New(Options{Path: "/users", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.True(t, plain.CountMatch)
}

func TestRoute_MatchesMethod_HeadFallsBackToGet(t *testing.T) {
	r, err := New(Options{Path: "/a", Methods: []string{"GET"}, Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.True(t, r.MatchesMethod("GET"))
	assert.True(t, r.MatchesMethod("HEAD"))
	assert.False(t, r.MatchesMethod("POST"))
}

func TestRoute_MatchesMethod_Unconstrained(t *testing.T) {
	r, err := New(Options{Path: "/a", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.True(t, r.MatchesMethod("DELETE"))
}

func TestRoute_LiteralPrefix(t *testing.T) {
	r, err := New(Options{Path: "/users/[i:id]", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.Equal(t, "/users/", r.LiteralPrefix())
}

func TestRoute_LiteralPrefix_CustomRegexExcluded(t *testing.T) {
	r, err := New(Options{Path: "@^/foo$", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.True(t, r.IsCustomRegex())
}

func TestSetName(t *testing.T) {
	r, err := New(Options{Path: "/a", Handlers: []Handler{1}})
	require.NoError(t, err)
	assert.Equal(t, "", r.Name)
	r.SetName("a.show")
	assert.Equal(t, "a.show", r.Name)
}
