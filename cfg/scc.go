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

package cfg

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the strongly connected components of the graph in
// reverse topological order: if an edge goes from component A to component
// B, then B is listed before A. Nodes within a component are ordered by Id.
//
// The graph must be valid, see Validate.
func (self *Graph) Components() [][]*Node {
	g := simple.NewDirectedGraph()
	ids := make(map[int64]*Node, len(self.Nodes))

	/* add all the nodes */
	for _, p := range self.Nodes {
		ids[int64(p.Id)] = p
		g.AddNode(simple.Node(p.Id))
	}

	/* add all the edges, self loops do not change the components */
	for _, p := range self.Nodes {
		for _, s := range p.Succ {
			if s.Id != p.Id {
				g.SetEdge(g.NewEdge(simple.Node(p.Id), simple.Node(s.Id)))
			}
		}
	}

	/* map the components back to CFG nodes */
	scc := topo.TarjanSCC(g)
	ret := make([][]*Node, 0, len(scc))

	/* sort each component by node ID */
	for _, c := range scc {
		nb := make([]*Node, 0, len(c))
		for _, v := range c {
			nb = append(nb, ids[v.ID()])
		}
		sort.Slice(nb, func(i int, j int) bool {
			return nb[i].Id < nb[j].Id
		})
		ret = append(ret, nb)
	}
	return ret
}

// PostOrder returns every node of the graph, successors first where the
// graph allows it.
func (self *Graph) PostOrder() []*Node {
	ret := make([]*Node, 0, len(self.Nodes))
	for _, c := range self.Components() {
		ret = append(ret, c...)
	}
	return ret
}
