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
	"fmt"
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLRU[K comparable, V any](t *testing.T, capacity int) BasicLRU[K, V] {
	t.Helper()
	c, err := NewBasicLRU[K, V](capacity)
	require.NoError(t, err)
	return c
}

func TestBasicLRU(t *testing.T) {
	cache := newTestLRU[int, int](t, 128)

	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	assert.Equal(t, 128, cache.Len())

	// Check that Keys returns least-recent key first.
	keys := cache.Keys()
	for i, k := range keys {
		v, ok := cache.Peek(k)
		require.True(t, ok, "expected key %d to be present", i)
		assert.Equal(t, k, v, "wrong value at key %d", k)
		assert.Equal(t, i+128, k, "wrong key at index %d", i)
	}

	for i := 0; i < 128; i++ {
		_, ok := cache.Get(i)
		assert.False(t, ok, "%d should be evicted", i)
	}
	for i := 128; i < 256; i++ {
		_, ok := cache.Get(i)
		assert.True(t, ok, "%d should not be evicted", i)
	}

	for i := 128; i < 192; i++ {
		assert.True(t, cache.Remove(i), "remove %d", i)
		_, ok := cache.Get(i)
		assert.False(t, ok, "%d should be deleted", i)
	}

	// Request item 192.
	cache.Get(192)
	// It should be the last item returned by Keys().
	for i, k := range cache.Keys() {
		if (i < 63 && k != i+193) || (i == 63 && k != 192) {
			t.Fatalf("out of order key at index %d: %v", i, k)
		}
	}

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get(200)
	assert.False(t, ok, "should contain nothing")
}

func TestBasicLRUNegativeCapacity(t *testing.T) {
	_, err := NewBasicLRU[string, int](-1)
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewCache[string, int](-5)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestBasicLRUZeroCapacity(t *testing.T) {
	cache := newTestLRU[string, int](t, 0)

	for i := 0; i < 10; i++ {
		evicted := cache.Add(fmt.Sprint(i), i)
		assert.True(t, evicted, "insert into zero-capacity cache must evict")
		assert.Equal(t, 0, cache.Len())
	}
	_, ok := cache.Get("0")
	assert.False(t, ok)
	assert.Equal(t, "", cache.String())
}

func TestBasicLRUCapacityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, capacity := range []int{1, 2, 3, 7, 16} {
		cache := newTestLRU[int, int](t, capacity)
		for i := 0; i < 1000; i++ {
			k := rng.Intn(3 * capacity)
			if rng.Intn(2) == 0 {
				cache.Add(k, i)
			} else {
				cache.Get(k)
			}
			require.LessOrEqual(t, cache.Len(), capacity)
			require.Len(t, cache.Keys(), cache.Len())
		}
	}
}

// This test checks that an access refreshes recency, so that the next
// eviction picks the second-oldest key.
func TestBasicLRUGetRefreshesRecency(t *testing.T) {
	cache := newTestLRU[string, int](t, 3)
	cache.Add("k1", 1)
	cache.Add("k2", 2)
	cache.Add("k3", 3)

	_, ok := cache.Get("k1")
	require.True(t, ok)

	assert.True(t, cache.Add("k4", 4))
	assert.False(t, cache.Contains("k2"), "k2 should have been evicted")
	assert.True(t, cache.Contains("k1"), "k1 should have survived")
	assert.Equal(t, "k3 k1 k4", cache.String())
}

func TestBasicLRUMissDoesNotReorder(t *testing.T) {
	cache := newTestLRU[string, int](t, 2)
	cache.Add("a", 1)
	cache.Add("b", 2)

	_, ok := cache.Get("zzz")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, cache.Keys())
}

func TestBasicLRUUpdateDoesNotEvict(t *testing.T) {
	cache := newTestLRU[string, int](t, 2)
	cache.Add("a", 1)
	cache.Add("b", 2)

	evicted := cache.Add("a", 10)
	assert.False(t, evicted)
	assert.Equal(t, 2, cache.Len())

	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, "b a", cache.String())
}

func TestBasicLRUMissThenHit(t *testing.T) {
	cache := newTestLRU[string, string](t, 4)

	_, ok := cache.Get("x")
	require.False(t, ok)

	cache.Add("x", "value")
	v, ok := cache.Get("x")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

// Zero values are regular entries, a stored 0 must be served as a hit.
func TestBasicLRUZeroValueIsPresent(t *testing.T) {
	cache := newTestLRU[string, int](t, 2)
	cache.Add("zero", 0)
	cache.Add("one", 1)

	v, ok := cache.Get("zero")
	require.True(t, ok)
	assert.Equal(t, 0, v)

	// "zero" was refreshed, so "one" goes first.
	cache.Add("two", 2)
	assert.True(t, cache.Contains("zero"))
	assert.False(t, cache.Contains("one"))
}

func TestBasicLRUPurge(t *testing.T) {
	cache := newTestLRU[string, int](t, 3)
	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	for _, k := range []string{"a", "b", "c"} {
		_, ok := cache.Get(k)
		assert.False(t, ok, "%s should be gone", k)
	}
	// The cache must be fully usable after a purge.
	cache.Add("d", 4)
	assert.Equal(t, "d", cache.String())
}

func TestBasicLRUScenario(t *testing.T) {
	cache := newTestLRU[string, int](t, 2)
	cache.Add("A", 1)
	cache.Add("B", 2)

	v, ok := cache.Get("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, cache.Add("C", 3), "inserting C should evict")

	_, ok = cache.Get("B")
	assert.False(t, ok, "B should be evicted as least recent")
	_, ok = cache.Get("A")
	assert.True(t, ok)
	_, ok = cache.Get("C")
	assert.True(t, ok)
}

func TestBasicLRUOldest(t *testing.T) {
	cache := newTestLRU[int, string](t, 3)

	_, _, ok := cache.GetOldest()
	assert.False(t, ok)
	_, _, ok = cache.RemoveOldest()
	assert.False(t, ok)

	cache.Add(1, "one")
	cache.Add(2, "two")
	cache.Add(3, "three")

	k, v, ok := cache.GetOldest()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "one", v)
	assert.Equal(t, 3, cache.Len(), "GetOldest must not remove")

	k, v, ok = cache.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "one", v)
	assert.Equal(t, []int{2, 3}, cache.Keys())
}

func TestBasicLRUPeekAndContainsKeepOrder(t *testing.T) {
	cache := newTestLRU[string, int](t, 2)
	cache.Add("a", 1)
	cache.Add("b", 2)

	_, ok := cache.Peek("a")
	require.True(t, ok)
	require.True(t, cache.Contains("a"))

	cache.Add("c", 3)
	assert.False(t, cache.Contains("a"), "peek must not refresh recency")
}

func TestBasicLRUKeysUnique(t *testing.T) {
	cache := newTestLRU[int, int](t, 32)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		cache.Add(rng.Intn(64), i)
	}
	keys := cache.Keys()
	set := mapset.NewThreadUnsafeSet(keys...)
	assert.Equal(t, len(keys), set.Cardinality(), "duplicate keys in recency list")
}

func BenchmarkLRU(b *testing.B) {
	var (
		capacity = 1000
		indexes  = make([]int, capacity*20)
		keys     = make([]string, capacity)
		values   = make([][]byte, capacity)
	)
	for i := range indexes {
		indexes[i] = rand.Intn(capacity)
	}
	for i := range keys {
		b := make([]byte, 32)
		rand.Read(b)
		keys[i] = string(b)
		rand.Read(b)
		values[i] = b
	}

	var sink []byte

	b.Run("Add/BasicLRU", func(b *testing.B) {
		cache, _ := NewBasicLRU[int, int](capacity)
		for i := 0; i < b.N; i++ {
			cache.Add(i, i)
		}
	})
	b.Run("Get/BasicLRU", func(b *testing.B) {
		cache, _ := NewBasicLRU[string, []byte](capacity)
		for i := 0; i < capacity; i++ {
			index := indexes[i]
			cache.Add(keys[index], values[index])
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			k := keys[indexes[i%len(indexes)]]
			v, ok := cache.Get(k)
			if ok {
				sink = v
			}
		}
	})

	_ = sink
}
