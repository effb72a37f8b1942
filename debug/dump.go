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

package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/cloudwego/liveness"
	"github.com/cloudwego/liveness/ir"
)

// LiveSets is the printable form of the live sets of one node.
type LiveSets struct {
	In  []string
	Out []string
}

var dumper = spew.ConfigState{
	Indent:                  "    ",
	SortKeys:                true,
	DisablePointerMethods:   true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func names(rs ir.SymbolSet) []string {
	ds := rs.Slice()
	ret := make([]string, 0, len(ds))
	for _, d := range ds {
		ret = append(ret, d.Name)
	}
	return ret
}

// Sets returns the live sets of every node keyed by node name.
func Sets(lv *liveness.Analysis) map[string]LiveSets {
	nodes := lv.Graph().Nodes
	ret := make(map[string]LiveSets, len(nodes))

	/* convert every node */
	for _, p := range nodes {
		ret[p.String()] = LiveSets{
			In:  names(lv.LiveIn(p)),
			Out: names(lv.LiveOut(p)),
		}
	}
	return ret
}

// Dump returns a deterministic dump of the live sets of every node.
func Dump(lv *liveness.Analysis) string {
	return dumper.Sdump(Sets(lv))
}
