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

// Package effects derives the use (gen) and def (kill) sets of CFG nodes from
// the structure of their statements.
package effects

import (
	"fmt"

	"github.com/cloudwego/liveness/cfg"
	"github.com/cloudwego/liveness/ir"
)

// Effects is the use and def set of a node. Use holds the variables read
// before any write inside the node, Def holds the variables written by it.
type Effects struct {
	Use ir.SymbolSet
	Def ir.SymbolSet
}

func (self Effects) String() string {
	return fmt.Sprintf("use = %s, def = %s", self.Use, self.Def)
}

type _Accumulator struct {
	use ir.SymbolSet
	def ir.SymbolSet
}

func newAccumulator() *_Accumulator {
	return &_Accumulator{
		use: make(ir.SymbolSet),
		def: make(ir.SymbolSet),
	}
}

// Analyzer computes the effects of a statement list.
type Analyzer struct {
	// CalleeIsUse makes the callee expression of a call contribute to the use
	// set. By default only the arguments are traversed.
	CalleeIsUse bool

	// SingleStatement rejects nodes carrying more than one statement.
	SingleStatement bool
}

// Analyze returns the effects of executing stmts in order.
func (self Analyzer) Analyze(stmts []ir.Stmt) (Effects, error) {
	ret := Effects{
		Use: make(ir.SymbolSet),
		Def: make(ir.SymbolSet),
	}

	/* use(s₁..sₙ) = use(s₁) ∪ (use(s₂..sₙ) - def(s₁)), folded from the back */
	for i := len(stmts) - 1; i >= 0; i-- {
		acc := newAccumulator()
		if err := self.stmt(acc, stmts[i]); err != nil {
			return Effects{}, err
		}
		ret.Use.Subtract(acc.def)
		ret.Use.Update(acc.use)
		ret.Def.Update(acc.def)
	}
	return ret, nil
}

func (self Analyzer) stmt(acc *_Accumulator, s ir.Stmt) error {
	switch v := s.(type) {
	default:
		return ir.EMalformed(s, fmt.Sprintf("unsupported statement kind %T", s))

	/* missing statement */
	case nil:
		return ir.EMalformed(s, "nil statement")

	/* the value is read before the target is written */
	case *ir.Assign:
		if v == nil {
			return ir.EMalformed(s, "nil statement")
		} else if err := self.expr(acc, s, v.Value); err != nil {
			return err
		} else if v.Target == nil {
			return ir.EMalformed(s, "nil assignment target")
		} else if v.Target.Decl == nil {
			return ir.EUnresolved(v.Target, s)
		} else {
			acc.def.Add(v.Target.Decl)
			return nil
		}

	/* expression statement */
	case *ir.Eval:
		if v == nil {
			return ir.EMalformed(s, "nil statement")
		} else {
			return self.expr(acc, s, v.X)
		}

	/* returned values are read */
	case *ir.Return:
		if v == nil {
			return ir.EMalformed(s, "nil statement")
		} else {
			return self.exprs(acc, s, v.Results)
		}
	}
}

func (self Analyzer) expr(acc *_Accumulator, s ir.Stmt, e ir.Expr) error {
	switch v := e.(type) {
	default:
		return ir.EMalformed(s, fmt.Sprintf("unsupported expression kind %T", e))

	/* missing sub-expression */
	case nil:
		return ir.EMalformed(s, "nil expression")

	/* variable reference */
	case *ir.Name:
		if v == nil {
			return ir.EMalformed(s, "nil expression")
		} else if v.Decl == nil {
			return ir.EUnresolved(v, s)
		} else {
			acc.use.Add(v.Decl)
			return nil
		}

	/* literals read nothing */
	case *ir.Const:
		if v == nil {
			return ir.EMalformed(s, "nil expression")
		} else {
			return nil
		}

	/* the callee is only a use when asked to */
	case *ir.Call:
		if v == nil {
			return ir.EMalformed(s, "nil expression")
		}
		if self.CalleeIsUse {
			if err := self.expr(acc, s, v.Fn); err != nil {
				return err
			}
		}
		return self.exprs(acc, s, v.Args)

	/* compound expressions */
	case *ir.Unary:
		if v == nil {
			return ir.EMalformed(s, "nil expression")
		} else {
			return self.expr(acc, s, v.X)
		}
	case *ir.Binary:
		if v == nil {
			return ir.EMalformed(s, "nil expression")
		} else if err := self.expr(acc, s, v.X); err != nil {
			return err
		} else {
			return self.expr(acc, s, v.Y)
		}
	}
}

func (self Analyzer) exprs(acc *_Accumulator, s ir.Stmt, v []ir.Expr) error {
	for _, e := range v {
		if err := self.expr(acc, s, e); err != nil {
			return err
		}
	}
	return nil
}

// Of computes the effects of a single CFG node.
func (self Analyzer) Of(p *cfg.Node) (Effects, error) {
	if self.SingleStatement && len(p.Stmts) > 1 {
		return Effects{}, cfg.EGraph(p.Id, fmt.Sprintf("node carries %d statements", len(p.Stmts)))
	} else if fx, err := self.Analyze(p.Stmts); err != nil {
		return Effects{}, fmt.Errorf("%s: %w", p, err)
	} else {
		return fx, nil
	}
}
