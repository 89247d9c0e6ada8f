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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NeverFails(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestMustNew_ReturnsUsableRouter(t *testing.T) {
	r := MustNew()
	require.NotNil(t, r)
	r.GET("/", func(c *Context) (any, error) { return nil, nil })
	assert.Equal(t, 1, len(r.Routes()))
}

func TestRouter_RegistrationMethodsPanicOnBadPattern(t *testing.T) {
	r := MustNew()
	assert.Panics(t, func() {
		r.GET("@(unterminated", func(c *Context) (any, error) { return nil, nil })
	})
}

func TestRouter_Routes_ReflectsRegistrationOrder(t *testing.T) {
	r := MustNew()
	r.GET("/a", func(c *Context) (any, error) { return nil, nil })
	r.POST("/b", func(c *Context) (any, error) { return nil, nil })

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "/a", infos[0].Path)
	assert.Equal(t, "/b", infos[1].Path)
	assert.Equal(t, []string{"POST"}, infos[1].Methods)
}

func TestRouter_WithGroupAppliesNamespace(t *testing.T) {
	r := MustNew()
	g := r.With("/api")
	rt := g.GET("/users", func(c *Context) (any, error) { return nil, nil })
	assert.Equal(t, "/api", rt.Namespace)
}
