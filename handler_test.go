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

func TestRunChain_StopsAtFirstError(t *testing.T) {
	ctx := &Context{Response: NewResponse()}
	var ran []string

	handlers := []HandlerFunc{
		func(c *Context) (any, error) {
			ran = append(ran, "one")
			return nil, nil
		},
		func(c *Context) (any, error) {
			ran = append(ran, "two")
			return nil, assertErr
		},
		func(c *Context) (any, error) {
			ran = append(ran, "three")
			return nil, nil
		},
	}

	err := runChain(ctx, handlers)
	assert.ErrorIs(t, err, assertErr)
	assert.Equal(t, []string{"one", "two"}, ran)
}

func TestRunChain_AppendsEachReturnValue(t *testing.T) {
	ctx := &Context{Response: NewResponse()}
	handlers := []HandlerFunc{
		func(c *Context) (any, error) { return "a", nil },
		func(c *Context) (any, error) { return "b", nil },
	}
	require.NoError(t, runChain(ctx, handlers))
	assert.Equal(t, "ab", string(ctx.Response.Body()))
}

func TestIsFlowControl(t *testing.T) {
	assert.True(t, isFlowControl(ErrSkipThis))
	assert.True(t, isFlowControl(ErrSkipRemaining))
	assert.True(t, isFlowControl(ErrAbort))
	assert.True(t, isFlowControl(SkipNext(3)))
	assert.False(t, isFlowControl(assertErr))
	assert.False(t, isFlowControl(NewHTTPError(404, "")))
}

func TestAbort_ZeroCodeReturnsGenericAbort(t *testing.T) {
	assert.ErrorIs(t, Abort(0), ErrAbort)
}

func TestAbort_NonZeroCodeReturnsHTTPError(t *testing.T) {
	err := Abort(418)
	httpErr, ok := err.(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, 418, httpErr.Code)
}

func TestSkipNext_NonPositiveDefaultsToOne(t *testing.T) {
	err := SkipNext(0).(*skipNext)
	assert.Equal(t, 1, err.n)
	err = SkipNext(-5).(*skipNext)
	assert.Equal(t, 1, err.n)
}

func TestParams_SetOverwritesSameName(t *testing.T) {
	p := &Params{}
	p.set("id", "1")
	p.set("id", "2")
	v, ok := p.Get("id")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, []string{"id"}, p.Names())
}

func TestParams_GetOnNilIsSafe(t *testing.T) {
	var p *Params
	v, ok := p.Get("id")
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Nil(t, p.Names())
}

func TestDecodeParam_PreservesEncodedSlashAndLiteralPlus(t *testing.T) {
	assert.Equal(t, "and/or", decodeParam("and%2For"))
	assert.Equal(t, "Knife+Party", decodeParam("Knife+Party"))
}
