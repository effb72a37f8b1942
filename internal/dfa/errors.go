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
)

// ConvergenceError occures when a problem did not reach its fixpoint within
// the configured number of transfers. For a monotone problem over a finite
// lattice this is a bug in the transfer function.
type ConvergenceError struct {
	Limit     int
	Transfers int
}

func (self ConvergenceError) Error() string {
	return fmt.Sprintf("ConvergenceError: no fixpoint after %d transfers (limit %d)", self.Transfers, self.Limit)
}

func EConvergence(limit int, transfers int) ConvergenceError {
	return ConvergenceError{
		Limit:     limit,
		Transfers: transfers,
	}
}
