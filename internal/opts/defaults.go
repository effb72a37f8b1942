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
	"os"
	"strconv"

	"github.com/cloudwego/liveness/internal/dfa"
)

const (
	_DefaultMaxIterations = 0 // derive the bound from the graph
	_DefaultWorklistOrder = dfa.FIFO
)

var (
	MaxIterations = parseOrDefault("LIVENESS_MAX_ITERATIONS", _DefaultMaxIterations, 0)
	WorklistOrder = parseOrderOrDefault("LIVENESS_WORKLIST_ORDER", _DefaultWorklistOrder)
)

func parseOrDefault(key string, def int, min int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 63); err != nil {
		panic("liveness: invalid value for " + key)
	} else if ret := int(val); ret < min {
		panic("liveness: value too small for " + key)
	} else {
		return ret
	}
}

func parseOrderOrDefault(key string, def dfa.Order) dfa.Order {
	if env := os.Getenv(key); env == "" {
		return def
	} else if ord, ok := ParseOrder(env); !ok {
		panic("liveness: invalid value for " + key)
	} else {
		return ord
	}
}

// ParseOrder parses the name of a worklist order, either "fifo" or "lifo".
func ParseOrder(s string) (dfa.Order, bool) {
	switch s {
	case "fifo", "FIFO":
		return dfa.FIFO, true
	case "lifo", "LIFO":
		return dfa.LIFO, true
	default:
		return 0, false
	}
}
