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

package dfa

import (
	"fmt"

	"github.com/oleiade/lane"
)

// Order selects which pending node the worklist hands out next. It never
// changes the fixpoint, only the number of transfers needed to reach it.
type Order int

const (
	FIFO Order = iota
	LIFO
)

func (self Order) String() string {
	switch self {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("Order(%d)", int(self))
	}
}

type _Container interface {
	put(v interface{})
	take() interface{}
	Empty() bool
}

type _Queue struct {
	*lane.Queue
}

func (self _Queue) put(v interface{}) {
	self.Enqueue(v)
}

func (self _Queue) take() interface{} {
	return self.Dequeue()
}

type _Stack struct {
	*lane.Stack
}

func (self _Stack) put(v interface{}) {
	self.Push(v)
}

func (self _Stack) take() interface{} {
	return self.Pop()
}

// Worklist is a set of pending nodes: a node that is already pending is not
// added again.
type Worklist[N comparable] struct {
	c _Container
	p map[N]struct{}
}

func NewWorklist[N comparable](order Order) *Worklist[N] {
	var c _Container

	/* select the container */
	switch order {
	case FIFO:
		c = _Queue{lane.NewQueue()}
	case LIFO:
		c = _Stack{lane.NewStack()}
	default:
		panic("dfa: invalid worklist order: " + order.String())
	}

	/* construct the worklist */
	return &Worklist[N]{
		c: c,
		p: make(map[N]struct{}),
	}
}

// Add marks v as pending and reports whether it was not pending before.
func (self *Worklist[N]) Add(v N) bool {
	if _, ok := self.p[v]; ok {
		return false
	} else {
		self.p[v] = struct{}{}
		self.c.put(v)
		return true
	}
}

func (self *Worklist[N]) AddAll(vs []N) {
	for _, v := range vs {
		self.Add(v)
	}
}

// Take removes one pending node. It must not be called on an empty list.
func (self *Worklist[N]) Take() N {
	v := self.c.take().(N)
	delete(self.p, v)
	return v
}

func (self *Worklist[N]) Empty() bool {
	return self.c.Empty()
}

func (self *Worklist[N]) Len() int {
	return len(self.p)
}
