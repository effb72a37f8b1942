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

// Package dfa is a direction-agnostic worklist solver for monotone dataflow
// problems.
//
// A problem decides the direction of the analysis through Dependents: a
// forward problem returns the successors of a node, a backward problem
// returns its predecessors.
package dfa

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	SolveCount    uint64
	TransferCount uint64
	ChangeCount   uint64
)

// Problem is the strategy driven by Solve.
type Problem[N comparable] interface {
	// StartNodes returns the initial contents of the worklist.
	StartNodes() []N

	// Dependents returns the nodes whose transfer function reads the result
	// of node, and which must be re-examined when that result changes.
	Dependents(node N) []N

	// Transfer recomputes the result of node from the current state of its
	// neighbours, stores it, and reports whether it changed.
	Transfer(node N) bool
}

type Config struct {
	Order  Order
	Limit  int
	Logger *zap.Logger
}

type Stats struct {
	Transfers int
	Changes   int
}

// Solve runs p to its fixpoint. A positive Limit bounds the number of
// transfers; exceeding it returns a ConvergenceError.
func Solve[N comparable](p Problem[N], cfg Config) (st Stats, err error) {
	log := cfg.Logger
	wl := NewWorklist[N](cfg.Order)

	/* nop logger by default */
	if log == nil {
		log = zap.NewNop()
	}

	/* seed the worklist */
	wl.AddAll(p.StartNodes())
	atomic.AddUint64(&SolveCount, 1)

	/* propagate until nothing is pending */
	for !wl.Empty() {
		if cfg.Limit > 0 && st.Transfers >= cfg.Limit {
			log.Debug("dataflow: iteration limit exceeded", zap.Int("limit", cfg.Limit), zap.Int("pending", wl.Len()))
			return st, EConvergence(cfg.Limit, st.Transfers)
		}

		/* apply the transfer function */
		node := wl.Take()
		st.Transfers++
		atomic.AddUint64(&TransferCount, 1)

		/* unchanged nodes do not affect anyone */
		if !p.Transfer(node) {
			continue
		}

		/* re-examine everything that depends on this node */
		st.Changes++
		atomic.AddUint64(&ChangeCount, 1)
		deps := p.Dependents(node)
		wl.AddAll(deps)

		/* trace the change */
		if ce := log.Check(zap.DebugLevel, "dataflow: node changed"); ce != nil {
			ce.Write(zap.Any("node", node), zap.Int("dependents", len(deps)), zap.Int("pending", wl.Len()))
		}
	}

	/* all done */
	log.Debug("dataflow: converged", zap.Int("transfers", st.Transfers), zap.Int("changes", st.Changes))
	return st, nil
}
