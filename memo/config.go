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

import "github.com/lrumemo/go-lrumemo/log"

type options struct {
	name   string
	dedup  bool
	logger log.Logger
}

// Option configures a memoized function.
type Option func(*options)

// WithName names the memoized function in logs and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDedup collapses concurrent misses on the same key into a single run of
// the computation. Every caller still counts as a miss.
func WithDedup() Option {
	return func(o *options) { o.dedup = true }
}

// WithLogger sets the logger used for cache events. Defaults to log.Root().
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Config holds the user-tunable settings of a memoized function.
type Config struct {
	MaxSize int  // Maximum number of results to retain
	Dedup   bool `toml:",omitempty"` // Collapse concurrent misses on the same key
}

// Defaults contains the settings used when nothing else is configured.
var Defaults = Config{
	MaxSize: 100,
}

// Options converts the config into constructor options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Dedup {
		opts = append(opts, WithDedup())
	}
	return opts
}
