/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package effects

import (
	"github.com/cloudwego/liveness/cfg"
	"github.com/cloudwego/liveness/ir"
)

// Cache memoizes the effects of CFG nodes. Effects only depend on the
// statements of a node, so they are computed at most once per node.
type Cache struct {
	a Analyzer
	m map[*cfg.Node]Effects
}

func NewCache(a Analyzer) *Cache {
	return &Cache{
		a: a,
		m: make(map[*cfg.Node]Effects),
	}
}

// Of returns the effects of p, computing them on first use.
func (self *Cache) Of(p *cfg.Node) (Effects, error) {
	if fx, ok := self.m[p]; ok {
		return fx, nil
	} else if fx, err := self.a.Of(p); err != nil {
		return Effects{}, err
	} else {
		self.m[p] = fx
		return fx, nil
	}
}

// Lookup returns the cached effects of p without computing them.
func (self *Cache) Lookup(p *cfg.Node) (Effects, bool) {
	fx, ok := self.m[p]
	return fx, ok
}

// Universe returns every declaration used or defined by the cached nodes.
func (self *Cache) Universe() ir.SymbolSet {
	rs := make(ir.SymbolSet)
	for _, fx := range self.m {
		rs.Update(fx.Use)
		rs.Update(fx.Def)
	}
	return rs
}

func (self *Cache) Len() int {
	return len(self.m)
}
