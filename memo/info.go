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

package memo

import "fmt"

// CacheInfo is a point-in-time snapshot of a memoized function's statistics.
type CacheInfo struct {
	Hits     uint64 // Calls answered from the cache
	Misses   uint64 // Calls that ran the computation
	MaxSize  int    // Maximum number of retained results
	CurrSize int    // Results currently retained
}

// Calls returns the number of calls made since creation or the last CacheClear.
func (ci CacheInfo) Calls() uint64 {
	return ci.Hits + ci.Misses
}

// HitRatio returns the fraction of calls served from the cache, or 0 when no
// call was made yet.
func (ci CacheInfo) HitRatio() float64 {
	if ci.Calls() == 0 {
		return 0
	}
	return float64(ci.Hits) / float64(ci.Calls())
}

func (ci CacheInfo) String() string {
	return fmt.Sprintf("CacheInfo(hits=%d, misses=%d, maxsize=%d, currsize=%d)", ci.Hits, ci.Misses, ci.MaxSize, ci.CurrSize)
}
