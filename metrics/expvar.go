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

package metrics

import (
	"expvar"
	"fmt"
	"io"
	"sync"
)

// Expvar mirrors cache statistics into the expvar namespace as
// "memo/<name>/<field>" integers.
type Expvar struct {
	// expvar panics if the same name is published twice
	expvarLock sync.Mutex
}

// Publish copies the current statistics of each source into expvar.
func (e *Expvar) Publish(sources ...Source) {
	for _, src := range sources {
		info := src.CacheInfo()
		prefix := "memo/" + src.Name()
		e.getInt(prefix + "/hits").Set(int64(info.Hits))
		e.getInt(prefix + "/misses").Set(int64(info.Misses))
		e.getInt(prefix + "/currsize").Set(int64(info.CurrSize))
		e.getInt(prefix + "/maxsize").Set(int64(info.MaxSize))
	}
}

func (e *Expvar) getInt(name string) *expvar.Int {
	e.expvarLock.Lock()
	defer e.expvarLock.Unlock()

	if p := expvar.Get(name); p != nil {
		return p.(*expvar.Int)
	}
	v := new(expvar.Int)
	expvar.Publish(name, v)
	return v
}

// WriteExpvar writes every published expvar variable as a single JSON
// object, the same document served on /debug/vars.
func WriteExpvar(w io.Writer) {
	fmt.Fprintf(w, "{\n")
	first := true
	expvar.Do(func(kv expvar.KeyValue) {
		if !first {
			fmt.Fprintf(w, ",\n")
		}
		first = false
		fmt.Fprintf(w, "%q: %s", kv.Key, kv.Value)
	})
	fmt.Fprintf(w, "\n}\n")
}
