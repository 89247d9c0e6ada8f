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

package pattern

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheKey identifies a (namespace, path) pair. Compile is a pure
// function of exactly those two strings, so the pair is sufficient.
type cacheKey struct {
	namespace string
	path      string
}

// Cache wraps Compile with an optional, bounded LRU. It exists purely
// to avoid recompiling the same pattern repeatedly (e.g. across
// repeated registration of an equivalent sub-route); nothing in this
// package or its callers may depend on the cache being present, warm,
// or even consulted: a cache miss and a cache hit must produce an
// identical *Pattern (spec.md §4.1, "the compiler MAY consult an
// optional... cache... advisory only").
type Cache struct {
	lru *lru.Cache[cacheKey, *Pattern]
}

// NewCache builds a Cache holding at most size compiled patterns. A
// size of zero or less disables caching: CompileCached then always
// compiles directly and stores nothing, which keeps callers from having
// to special-case "no cache".
func NewCache(size int) *Cache {
	if size <= 0 {
		return &Cache{}
	}
	c, err := lru.New[cacheKey, *Pattern](size)
	if err != nil {
		// Only returns an error for a non-positive size, excluded above.
		return &Cache{}
	}
	return &Cache{lru: c}
}

// CompileCached behaves exactly like Compile, consulting c first and
// populating it on a miss. A nil *Cache is valid and behaves like a
// disabled cache.
func (c *Cache) CompileCached(namespace, userPath string) (*Pattern, error) {
	if c == nil || c.lru == nil {
		return Compile(namespace, userPath)
	}
	key := cacheKey{namespace: namespace, path: userPath}
	if p, ok := c.lru.Get(key); ok {
		return p, nil
	}
	p, err := Compile(namespace, userPath)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, p)
	return p, nil
}
