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

func TestWithDiagnostics_ReceivesRegistrationEvent(t *testing.T) {
	var events []DiagnosticEvent
	r := MustNew(WithDiagnostics(func(e DiagnosticEvent) {
		events = append(events, e)
	}))

	r.GET("/a", func(c *Context) (any, error) { return nil, nil })
	require.Len(t, events, 1)
	assert.Equal(t, DiagRouteRegistered, events[0].Kind)
}

func TestWithDiagnostics_NilHandlerIsSilent(t *testing.T) {
	r := MustNew()
	assert.NotPanics(t, func() {
		r.GET("/a", func(c *Context) (any, error) { return nil, nil })
	})
}

func TestWithPatternCacheSize_EnablesCache(t *testing.T) {
	r := MustNew(WithPatternCacheSize(8))
	require.NotNil(t, r.cache)

	r.GET("/widgets/[i:id]", func(c *Context) (any, error) { return nil, nil })
	r.GET("/users/[i:id]", func(c *Context) (any, error) { return nil, nil })
	assert.Equal(t, 2, len(r.Routes()))
}

func TestWithPatternCacheSize_DefaultsToDisabled(t *testing.T) {
	r := MustNew()
	assert.Nil(t, r.cache)
}
