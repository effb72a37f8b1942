/*
 * Copyright 2021 ByteDance Inc.
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
	"github.com/cloudwego/liveness/cfg"
	"github.com/cloudwego/liveness/internal/dfa"
	"github.com/cloudwego/liveness/ir"
)

// UnresolvedError occures when a variable reference or an assignment target
// in the IR has no declaration.
type UnresolvedError = ir.UnresolvedError

// MalformedError occures when a statement in the IR has a missing sub-tree.
type MalformedError = ir.MalformedError

// GraphError occures when the CFG is not closed, has asymmetric edges, or
// violates the statement granularity requested with WithSingleStatementNodes.
type GraphError = cfg.GraphError

// ConvergenceError occures when the fixpoint is not reached within the
// iteration limit. It indicates a bug, never a property of the input.
type ConvergenceError = dfa.ConvergenceError
