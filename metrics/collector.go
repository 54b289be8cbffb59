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

// Package metrics exports memoization statistics as Prometheus metrics and
// expvar variables.
package metrics

import (
	"sync"

	"github.com/lrumemo/go-lrumemo/memo"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is anything that can report cache statistics under a name.
// Every *memo.Func satisfies it.
type Source interface {
	Name() string
	CacheInfo() memo.CacheInfo
}

// CacheCollector is a prometheus.Collector taking a CacheInfo snapshot of
// each registered source on every scrape.
type CacheCollector struct {
	namespace string

	lock    sync.Mutex
	sources []Source

	hits     *prometheus.Desc
	misses   *prometheus.Desc
	currSize *prometheus.Desc
	maxSize  *prometheus.Desc
}

// NewCacheCollector creates a collector whose metric names are prefixed with
// the given namespace.
func NewCacheCollector(namespace string, sources ...Source) *CacheCollector {
	labels := []string{"cache"}
	return &CacheCollector{
		namespace: namespace,
		sources:   sources,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "memo", "hits_total"),
			"Calls answered from the cache.", labels, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "memo", "misses_total"),
			"Calls that ran the wrapped computation.", labels, nil),
		currSize: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "memo", "size"),
			"Results currently retained.", labels, nil),
		maxSize: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "memo", "max_size"),
			"Maximum number of retained results.", labels, nil),
	}
}

// Add registers another source. Sources sharing a name produce duplicate
// series and fail the scrape.
func (c *CacheCollector) Add(src Source) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.sources = append(c.sources, src)
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.currSize
	ch <- c.maxSize
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	c.lock.Lock()
	sources := append([]Source(nil), c.sources...)
	c.lock.Unlock()

	for _, src := range sources {
		info := src.CacheInfo()
		name := src.Name()
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(info.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(info.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.currSize, prometheus.GaugeValue, float64(info.CurrSize), name)
		ch <- prometheus.MustNewConstMetric(c.maxSize, prometheus.GaugeValue, float64(info.MaxSize), name)
	}
}
