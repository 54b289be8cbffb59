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

// Package memo memoizes deterministic computations behind a bounded LRU cache.
//
// A memoized function is built around a Computation and a maximum cache size.
// Every call is answered from the cache when an equal argument was seen
// before (a hit) and otherwise runs the computation and stores its result
// (a miss). Failed computations are never stored.
//
// Recursive computations must call back into the same *Func so that every
// sub-call is memoized:
//
//	var fib *memo.Func[uint64, uint64, uint64]
//	fib, _ = memo.New(func(n uint64) (uint64, error) {
//		if n <= 1 {
//			return n, nil
//		}
//		a, _ := fib.Call(n - 1)
//		b, _ := fib.Call(n - 2)
//		return a + b, nil
//	}, 100)
package memo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lrumemo/go-lrumemo/common/lru"
	"github.com/lrumemo/go-lrumemo/log"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidSize is returned when a memoized function is created with a
// negative maximum cache size.
var ErrInvalidSize = errors.New("memo: invalid cache size")

// Computation is a pure, deterministic function of a single argument.
type Computation[A, R any] func(A) (R, error)

// Func is a memoizing wrapper around a Computation. The argument is turned into
// a cache key of type K; calls with equal keys share one cached result.
//
// Func is safe for concurrent use. The wrapped computation is never run while
// internal locks are held, so it may call back into the same Func.
type Func[A any, K comparable, R any] struct {
	fn    Computation[A, R]
	keyOf func(A) K

	name    string
	maxSize int
	logger  log.Logger

	dedup bool
	group singleflight.Group

	lock   sync.Mutex
	cache  lru.BasicLRU[K, R]
	hits   uint64
	misses uint64
}

// New memoizes fn, using the argument itself as the cache key.
func New[A comparable, R any](fn func(A) (R, error), maxSize int, opts ...Option) (*Func[A, A, R], error) {
	return NewKeyed(fn, func(a A) A { return a }, maxSize, opts...)
}

// NewKeyed memoizes fn, deriving the cache key of an argument with keyOf.
// keyOf must map equal argument sets to equal keys.
func NewKeyed[A any, K comparable, R any](fn func(A) (R, error), keyOf func(A) K, maxSize int, opts ...Option) (*Func[A, K, R], error) {
	if maxSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, maxSize)
	}
	cache, err := lru.NewBasicLRU[K, R](maxSize)
	if err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f := &Func[A, K, R]{
		fn:      fn,
		keyOf:   keyOf,
		name:    o.name,
		maxSize: maxSize,
		dedup:   o.dedup,
		cache:   cache,
	}
	logger := o.logger
	if logger == nil {
		logger = log.Root()
	}
	f.logger = logger.With("memo", f.name)
	return f, nil
}

// NewArgs memoizes a computation over a full argument set. Positional and
// named arguments both take part in the cache key, see Args.Key.
func NewArgs[R any](fn func(Args) (R, error), maxSize int, opts ...Option) (*Func[Args, string, R], error) {
	return NewKeyed(fn, Args.Key, maxSize, opts...)
}

// Call returns the memoized result for arg, running the computation on a miss.
// Errors from the computation are returned unchanged and are not cached.
func (f *Func[A, K, R]) Call(arg A) (R, error) {
	key := f.keyOf(arg)

	f.lock.Lock()
	if res, ok := f.cache.Get(key); ok {
		f.hits++
		f.lock.Unlock()
		return res, nil
	}
	f.misses++
	f.lock.Unlock()

	f.logger.Trace("Memoized call missed", "key", key)
	if !f.dedup {
		return f.compute(key, arg)
	}
	v, err, shared := f.group.Do(canonicalKey(key), func() (interface{}, error) {
		return f.compute(key, arg)
	})
	if shared {
		f.logger.Trace("Shared in-flight computation", "key", key)
	}
	if err != nil {
		var zero R
		return zero, err
	}
	res, _ := v.(R)
	return res, nil
}

// compute runs the wrapped computation and stores a successful result.
func (f *Func[A, K, R]) compute(key K, arg A) (R, error) {
	res, err := f.fn(arg)
	if err != nil {
		f.logger.Debug("Memoized computation failed", "key", key, "err", err)
		return res, err
	}
	f.lock.Lock()
	evicted := f.cache.Add(key, res)
	f.lock.Unlock()

	if evicted && f.maxSize > 0 {
		f.logger.Trace("Evicted least recently used result", "key", key, "size", f.maxSize)
	}
	return res, nil
}

// CacheInfo returns a snapshot of the cache statistics.
func (f *Func[A, K, R]) CacheInfo() CacheInfo {
	f.lock.Lock()
	defer f.lock.Unlock()

	return CacheInfo{
		Hits:     f.hits,
		Misses:   f.misses,
		MaxSize:  f.maxSize,
		CurrSize: f.cache.Len(),
	}
}

// CacheClear drops every cached result and resets the hit and miss counters.
func (f *Func[A, K, R]) CacheClear() {
	f.lock.Lock()
	dropped := f.cache.Len()
	f.cache.Purge()
	f.hits, f.misses = 0, 0
	f.lock.Unlock()

	f.logger.Debug("Cleared memoized results", "dropped", dropped)
}

// Name returns the name given with WithName, or the empty string.
func (f *Func[A, K, R]) Name() string {
	return f.name
}

// MaxSize returns the maximum number of results retained.
func (f *Func[A, K, R]) MaxSize() int {
	return f.maxSize
}
