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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup_UseRunsBeforeRouteHandlers(t *testing.T) {
	r := MustNew()
	g := r.With("/api")
	g.Use(func(c *Context) (any, error) {
		c.Response.WriteString("group:")
		return nil, nil
	})
	g.GET("/ping", func(c *Context) (any, error) {
		return "pong", nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, "group:pong", rec.Body.String())
}

func TestGroup_NestedWithConcatenatesNamespaceAndInheritsMiddleware(t *testing.T) {
	r := MustNew()
	g := r.With("/api")
	g.Use(func(c *Context) (any, error) {
		c.Response.WriteString("outer:")
		return nil, nil
	})
	nested := g.With("/v1")
	nested.GET("/ping", func(c *Context) (any, error) { return "pong", nil })

	rt := nested.GET("/pong", func(c *Context) (any, error) { return nil, nil })
	assert.Equal(t, "/api/v1", rt.Namespace)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, "outer:pong", rec.Body.String())
}

func TestGroup_AnyRegistersAllMethods(t *testing.T) {
	r := MustNew()
	g := r.With("/api")
	g.Any("/ping", func(c *Context) (any, error) { return "pong", nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGroup_HandleMethodsLimitToSpecified(t *testing.T) {
	r := MustNew()
	g := r.With("/api")
	g.PUT("/widgets", func(c *Context) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/widgets", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
