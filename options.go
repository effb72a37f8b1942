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

package liveness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cloudwego/liveness/internal/dfa"
	"github.com/cloudwego/liveness/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// Order selects the order in which pending nodes are re-analyzed.
type Order = dfa.Order

const (
	// FIFO re-analyzes nodes in the order they became pending.
	FIFO = dfa.FIFO

	// LIFO re-analyzes the most recently pending node first.
	LIFO = dfa.LIFO
)

// WithMaxIterations caps the number of transfer function applications.
//
// The analysis over a well-formed graph always terminates, so this only
// guards against bugs. The default value "0" derives the worst case bound
// from the graph.
//
// This value can also be configured with the `LIVENESS_MAX_ITERATIONS`
// environment variable.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("liveness: invalid max iterations: %d", n))
	} else {
		return func(o *opts.Options) { o.MaxIterations = n }
	}
}

// WithWorklistOrder sets the worklist order. It never changes the result.
//
// This value can also be configured with the `LIVENESS_WORKLIST_ORDER`
// environment variable, either "fifo" or "lifo".
//
// The default value of this option is FIFO.
func WithWorklistOrder(order Order) Option {
	if order != FIFO && order != LIFO {
		panic(fmt.Sprintf("liveness: invalid worklist order: %s", order))
	} else {
		return func(o *opts.Options) { o.WorklistOrder = order }
	}
}

// WithCalleeAsUse makes the callee expression of a call a use, for IRs where
// functions are first-class values held in variables.
//
// The default value of this option is "false": only call arguments are uses.
func WithCalleeAsUse(v bool) Option {
	return func(o *opts.Options) { o.CalleeIsUse = v }
}

// WithSingleStatementNodes rejects CFG nodes carrying more than one statement
// with a GraphError.
//
// By default a node may carry several statements, and its effects are
// computed as if they were executed in order.
func WithSingleStatementNodes(v bool) Option {
	return func(o *opts.Options) { o.SingleStatement = v }
}

// WithLogger sets the logger used for debug messages. A nil logger disables
// logging, which is also the default.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(o *opts.Options) { o.Logger = logger }
}

// WithConfigFile loads options from a YAML document with the keys
// `max-iterations`, `worklist-order`, `callee-is-use` and `single-statement`.
// Keys absent from the document keep their current values.
func WithConfigFile(path string) (Option, error) {
	if fv, err := opts.LoadFile(path); err != nil {
		return nil, err
	} else {
		return fv.Apply, nil
	}
}
