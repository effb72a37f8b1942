/*
 * Copyright 2022 CloudWeGo Authors
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

package opts

import (
	"go.uber.org/zap"

	"github.com/cloudwego/liveness/internal/dfa"
	"github.com/cloudwego/liveness/internal/effects"
)

type Options struct {
	MaxIterations   int
	WorklistOrder   dfa.Order
	CalleeIsUse     bool
	SingleStatement bool
	Logger          *zap.Logger
}

// IterationLimit returns the transfer limit for a graph with the given
// number of nodes, edges and distinct declarations.
//
// Every change grows an in-set or an out-set by at least one declaration and
// re-queues the predecessors of the node, so a monotone solve never needs
// more than nodes + 2·decls·edges transfers.
func (self *Options) IterationLimit(nodes int, edges int, decls int) int {
	if self.MaxIterations != 0 {
		return self.MaxIterations
	} else {
		return nodes + 2*decls*edges + 1
	}
}

func (self *Options) Analyzer() effects.Analyzer {
	return effects.Analyzer{
		CalleeIsUse:     self.CalleeIsUse,
		SingleStatement: self.SingleStatement,
	}
}

func (self *Options) Solver(limit int) dfa.Config {
	return dfa.Config{
		Order:  self.WorklistOrder,
		Limit:  limit,
		Logger: self.Logger,
	}
}

func GetDefaultOptions() Options {
	return Options{
		MaxIterations: MaxIterations,
		WorklistOrder: WorklistOrder,
		Logger:        zap.NewNop(),
	}
}
