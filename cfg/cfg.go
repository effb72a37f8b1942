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

// Package cfg is a minimal control-flow graph container over ir statements.
package cfg

import (
	"fmt"
	"strings"

	"github.com/cloudwego/liveness/ir"
)

// Node is a vertex of the CFG. A node without statements is a control-only
// node, such as a branch or a merge point.
type Node struct {
	Id    int
	Stmts []ir.Stmt
	Succ  []*Node
	Pred  []*Node
}

func (self *Node) String() string {
	return fmt.Sprintf("bb_%d", self.Id)
}

// Describe returns the node followed by its statements, one per line.
func (self *Node) Describe() string {
	buf := make([]string, 0, len(self.Stmts)+1)
	buf = append(buf, self.String()+":")

	/* dump every statement */
	for _, s := range self.Stmts {
		buf = append(buf, "    "+s.String())
	}

	/* join them together */
	return strings.Join(buf, "\n")
}

func (self *Node) hasSucc(p *Node) bool {
	return nodeslicehas(self.Succ, p)
}

func (self *Node) hasPred(p *Node) bool {
	return nodeslicehas(self.Pred, p)
}

type Graph struct {
	Entry *Node
	Nodes []*Node
}

func New() *Graph {
	return new(Graph)
}

// Add creates a new node carrying stmts. The first node added becomes the
// entry of the graph.
func (self *Graph) Add(stmts ...ir.Stmt) *Node {
	p := &Node{
		Id:    len(self.Nodes),
		Stmts: stmts,
	}

	/* the first node is the entry */
	if self.Entry == nil {
		self.Entry = p
	}

	/* add to node list */
	self.Nodes = append(self.Nodes, p)
	return p
}

// Connect adds the edge from -> to on both of its ends. Duplicated edges are
// ignored.
func (self *Graph) Connect(from *Node, to *Node) {
	if !from.hasSucc(to) {
		from.Succ = append(from.Succ, to)
	}
	if !to.hasPred(from) {
		to.Pred = append(to.Pred, from)
	}
}

// Chain connects the nodes one after another.
func (self *Graph) Chain(nodes ...*Node) {
	for i := 1; i < len(nodes); i++ {
		self.Connect(nodes[i-1], nodes[i])
	}
}

// Validate checks that the graph is closed and that every edge is recorded
// on both of its ends.
func (self *Graph) Validate() error {
	if self == nil {
		return EGraph(-1, "nil graph")
	}

	ids := make(map[int]*Node, len(self.Nodes))
	own := func(p *Node) bool { return p != nil && ids[p.Id] == p }

	/* collect all the nodes */
	for i, p := range self.Nodes {
		if p == nil {
			return EGraph(i, "nil node in node list")
		} else if _, ok := ids[p.Id]; ok {
			return EGraph(p.Id, "duplicated node id")
		} else {
			ids[p.Id] = p
		}
	}

	/* the entry must be a member of the graph */
	if self.Entry != nil && !own(self.Entry) {
		return EGraph(self.Entry.Id, "entry node is not in the graph")
	}

	/* check every edge from both ends */
	for _, p := range self.Nodes {
		for _, s := range p.Succ {
			if !own(s) {
				return EGraph(p.Id, "successor "+noderepr(s)+" is not in the graph")
			} else if !s.hasPred(p) {
				return EGraph(p.Id, "successor "+s.String()+" does not list it as a predecessor")
			}
		}
		for _, q := range p.Pred {
			if !own(q) {
				return EGraph(p.Id, "predecessor "+noderepr(q)+" is not in the graph")
			} else if !q.hasSucc(p) {
				return EGraph(p.Id, "predecessor "+q.String()+" does not list it as a successor")
			}
		}
	}
	return nil
}

func (self *Graph) String() string {
	buf := make([]string, 0, len(self.Nodes))
	for _, p := range self.Nodes {
		buf = append(buf, p.Describe())
	}
	return strings.Join(buf, "\n")
}

func nodeslicehas(v []*Node, p *Node) bool {
	for _, q := range v {
		if q == p {
			return true
		}
	}
	return false
}

func noderepr(p *Node) string {
	if p == nil {
		return "<nil>"
	} else {
		return p.String()
	}
}
