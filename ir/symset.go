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

package ir

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SymbolSet is a set of declarations. The nil SymbolSet is a valid empty set
// for every read-only operation.
type (
	SymbolSet map[*Declaration]struct{}
)

func NewSymbolSet(ds ...*Declaration) (rs SymbolSet) {
	rs = make(SymbolSet, len(ds))
	for _, d := range ds {
		rs.Add(d)
	}
	return
}

// Add inserts d and reports whether it was absent.
func (self SymbolSet) Add(d *Declaration) bool {
	if _, ok := self[d]; ok {
		return false
	} else {
		self[d] = struct{}{}
		return true
	}
}

// Remove deletes d and reports whether it was present.
func (self SymbolSet) Remove(d *Declaration) bool {
	if _, ok := self[d]; !ok {
		return false
	} else {
		delete(self, d)
		return true
	}
}

func (self SymbolSet) Has(d *Declaration) bool {
	_, ok := self[d]
	return ok
}

func (self SymbolSet) Len() int {
	return len(self)
}

func (self SymbolSet) Clone() (rs SymbolSet) {
	rs = make(SymbolSet, len(self))
	for d := range self {
		rs.Add(d)
	}
	return
}

// Update adds every element of rs to the set.
func (self SymbolSet) Update(rs SymbolSet) {
	for d := range rs {
		self.Add(d)
	}
}

// Subtract removes every element of rs from the set.
func (self SymbolSet) Subtract(rs SymbolSet) {
	for d := range rs {
		self.Remove(d)
	}
}

// Union returns self ∪ rs as a new set.
func (self SymbolSet) Union(rs SymbolSet) SymbolSet {
	ret := self.Clone()
	ret.Update(rs)
	return ret
}

// Difference returns self − rs as a new set.
func (self SymbolSet) Difference(rs SymbolSet) SymbolSet {
	ret := make(SymbolSet, len(self))
	for d := range self {
		if !rs.Has(d) {
			ret.Add(d)
		}
	}
	return ret
}

func (self SymbolSet) Equal(rs SymbolSet) bool {
	if len(self) != len(rs) {
		return false
	}
	for d := range self {
		if !rs.Has(d) {
			return false
		}
	}
	return true
}

// Slice returns the elements ordered by declaration Id.
func (self SymbolSet) Slice() []*Declaration {
	ds := maps.Keys(self)
	slices.SortFunc(ds, func(a *Declaration, b *Declaration) bool { return a.Id < b.Id })
	return ds
}

func (self SymbolSet) String() string {
	nb := len(self)
	rs := make([]string, 0, nb)

	/* convert every declaration */
	for _, d := range self.Slice() {
		rs = append(rs, d.String())
	}

	/* join them together */
	return fmt.Sprintf(
		"{%s}",
		strings.Join(rs, ", "),
	)
}
