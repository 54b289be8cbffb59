// Copyright 2026 The go-lrumemo Authors
// This file is part of the go-lrumemo library.
//
// The go-lrumemo library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-lrumemo library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-lrumemo library. If not, see <http://www.gnu.org/licenses/>.

package lru

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheConcurrentAccess(t *testing.T) {
	cache, err := NewCache[int, int](64)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				k := (g*1000 + i) % 200
				cache.Add(k, i)
				cache.Get(k)
				cache.Contains(k + 1)
				if i%97 == 0 {
					cache.Remove(k)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 64)
	assert.Len(t, cache.Keys(), cache.Len())
	assert.Equal(t, 64, cache.Cap())
}

func TestCacheOperations(t *testing.T) {
	cache, err := NewCache[string, int](2)
	require.NoError(t, err)

	assert.False(t, cache.Add("a", 1))
	assert.False(t, cache.Add("b", 2))
	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, cache.Add("c", 3))
	assert.Equal(t, "a c", cache.String())

	_, ok = cache.Peek("b")
	assert.False(t, ok)

	k, v, ok := cache.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}
