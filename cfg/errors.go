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
	"fmt"
)

// GraphError occures when the graph is not closed, its edges are not
// symmetric, or a node does not fit the required granularity.
type GraphError struct {
	Node   int
	Reason string
}

func (self GraphError) Error() string {
	return fmt.Sprintf("GraphError(bb_%d): %s", self.Node, self.Reason)
}

func EGraph(id int, reason string) GraphError {
	return GraphError{
		Node:   id,
		Reason: reason,
	}
}
