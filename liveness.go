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

// Package liveness computes live variables over a control-flow graph.
//
// A variable is live at a program point if its current value may be read on
// some path from that point before it is overwritten. The analysis is run to
// its fixpoint by New; the returned Analysis is immutable and may be queried
// from multiple goroutines.
//
//	g := cfg.New()
//	a := g.Add(&ir.Assign{Target: ir.Ref(x), Value: &ir.Const{V: 1}})
//	b := g.Add(&ir.Eval{X: &ir.Call{Fn: print, Args: []ir.Expr{ir.Ref(x)}}})
//	g.Connect(a, b)
//
//	lv, err := liveness.New(g)
//	lv.IsLiveBefore(x, b) // true
//	lv.IsLiveBefore(x, a) // false
package liveness

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cloudwego/liveness/cfg"
	"github.com/cloudwego/liveness/internal/dfa"
	"github.com/cloudwego/liveness/internal/effects"
	"github.com/cloudwego/liveness/internal/opts"
	"github.com/cloudwego/liveness/ir"
)

// Stats records the work done to reach the fixpoint.
type Stats = dfa.Stats

// Analysis holds the live-in and live-out sets of every node of a CFG.
//
// The result is only valid for the graph as it was when New returned; any
// later change to the graph requires a new Analysis.
type Analysis struct {
	g   *cfg.Graph
	fx  *effects.Cache
	in  map[*cfg.Node]ir.SymbolSet
	out map[*cfg.Node]ir.SymbolSet
	st  Stats
}

// New analyzes g and returns the converged result.
//
// It returns a GraphError if g is nil or malformed, an UnresolvedError or a
// MalformedError if a statement cannot be analyzed, and a ConvergenceError if
// the iteration limit is exceeded.
func New(g *cfg.Graph, options ...Option) (*Analysis, error) {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* validate the graph and compute the node effects */
	lv, limit, err := prepare(g, &o)
	if err != nil {
		return nil, err
	}

	/* run the analysis to its fixpoint */
	if err = lv.solve(_Backward{lv}, o.Solver(limit)); err != nil {
		return nil, err
	} else {
		return lv, nil
	}
}

func prepare(g *cfg.Graph, o *opts.Options) (*Analysis, int, error) {
	var ne int
	var nn int

	/* the engine assumes a closed and consistent graph */
	if err := g.Validate(); err != nil {
		o.Logger.Debug("liveness: malformed graph", zap.Error(err))
		return nil, 0, err
	}

	/* allocate the analysis */
	nn = len(g.Nodes)
	ret := &Analysis{
		g:   g,
		fx:  effects.NewCache(o.Analyzer()),
		in:  make(map[*cfg.Node]ir.SymbolSet, nn),
		out: make(map[*cfg.Node]ir.SymbolSet, nn),
	}

	/* compute the effects of every node, and start from empty sets */
	for _, p := range g.Nodes {
		if _, err := ret.fx.Of(p); err != nil {
			o.Logger.Debug("liveness: cannot compute node effects", zap.Stringer("node", p), zap.Error(err))
			return nil, 0, err
		}
		ne += len(p.Succ)
		ret.in[p] = make(ir.SymbolSet)
		ret.out[p] = make(ir.SymbolSet)
	}

	/* bound the number of transfers */
	nd := ret.fx.Universe().Len()
	limit := o.IterationLimit(nn, ne, nd)

	/* log the problem size */
	o.Logger.Debug("liveness: analysis prepared",
		zap.Int("nodes", nn),
		zap.Int("edges", ne),
		zap.Int("declarations", nd),
		zap.Int("limit", limit),
	)
	return ret, limit, nil
}

func (self *Analysis) solve(p dfa.Problem[*cfg.Node], c dfa.Config) (err error) {
	self.st, err = dfa.Solve(p, c)
	return
}

// update replaces the sets of p and reports whether either of them changed.
func (self *Analysis) update(p *cfg.Node, in ir.SymbolSet, out ir.SymbolSet) bool {
	changed := false
	if !in.Equal(self.in[p]) {
		self.in[p] = in
		changed = true
	}
	if !out.Equal(self.out[p]) {
		self.out[p] = out
		changed = true
	}
	return changed
}

// effectsOf returns the cached effects of p, which New computed for every node.
func (self *Analysis) effectsOf(p *cfg.Node) effects.Effects {
	if fx, ok := self.fx.Lookup(p); !ok {
		panic("liveness: node not in the analyzed graph: " + p.String())
	} else {
		return fx
	}
}

// Graph returns the analyzed graph.
func (self *Analysis) Graph() *cfg.Graph {
	return self.g
}

// Stats returns the number of transfers and changes needed to converge.
func (self *Analysis) Stats() Stats {
	return self.st
}

// IsLiveBefore reports whether d is live immediately before p executes.
func (self *Analysis) IsLiveBefore(d *ir.Declaration, p *cfg.Node) bool {
	return self.in[p].Has(d)
}

// IsLiveAfter reports whether d is live immediately after p executes.
func (self *Analysis) IsLiveAfter(d *ir.Declaration, p *cfg.Node) bool {
	return self.out[p].Has(d)
}

// LiveIn returns a copy of the variables live before p.
func (self *Analysis) LiveIn(p *cfg.Node) ir.SymbolSet {
	return self.in[p].Clone()
}

// LiveOut returns a copy of the variables live after p.
func (self *Analysis) LiveOut(p *cfg.Node) ir.SymbolSet {
	return self.out[p].Clone()
}

// Effects returns copies of the use and def sets of p.
func (self *Analysis) Effects(p *cfg.Node) (use ir.SymbolSet, def ir.SymbolSet) {
	if fx, ok := self.fx.Lookup(p); ok {
		return fx.Use.Clone(), fx.Def.Clone()
	} else {
		return make(ir.SymbolSet), make(ir.SymbolSet)
	}
}

func (self *Analysis) String() string {
	buf := make([]string, 0, len(self.g.Nodes))
	for _, p := range self.g.Nodes {
		buf = append(buf, fmt.Sprintf("%s: in = %s, out = %s", p, self.in[p], self.out[p]))
	}
	return strings.Join(buf, "\n")
}

// _Backward is the liveness problem: information flows from the successors
// of a node to the node, and from the node to its predecessors.
type _Backward struct {
	lv *Analysis
}

func (self _Backward) StartNodes() []*cfg.Node {
	return self.lv.g.PostOrder()
}

func (self _Backward) Dependents(p *cfg.Node) []*cfg.Node {
	return p.Pred
}

func (self _Backward) Transfer(p *cfg.Node) bool {
	fx := self.lv.effectsOf(p)
	out := make(ir.SymbolSet)

	/* out(p) = ∪ { in(s) : s ∈ succ(p) } */
	for _, s := range p.Succ {
		out.Update(self.lv.in[s])
	}

	/* in(p) = (out(p) - def(p)) ∪ use(p) */
	in := out.Difference(fx.Def)
	in.Update(fx.Use)
	return self.lv.update(p, in, out)
}
