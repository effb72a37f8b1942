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

// Package debug provides statistics and dumps for inspecting analyses.
package debug

import (
	"sync/atomic"

	"github.com/cloudwego/liveness/internal/dfa"
)

// A Stats records process-wide statistics about the dataflow solver.
type Stats struct {
	Analyses  int
	Transfers int
	Changes   int
}

// GetStats returns statistics of the dataflow solver since the process
// started.
func GetStats() Stats {
	return Stats{
		Analyses:  int(atomic.LoadUint64(&dfa.SolveCount)),
		Transfers: int(atomic.LoadUint64(&dfa.TransferCount)),
		Changes:   int(atomic.LoadUint64(&dfa.ChangeCount)),
	}
}
