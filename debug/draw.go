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
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/oleiade/lane"

	"github.com/cloudwego/liveness"
	"github.com/cloudwego/liveness/cfg"
)

func htmlrow(s string) string {
	return fmt.Sprintf(`<tr><td align="left">%s</td></tr>`, strings.ReplaceAll(html.EscapeString(s), " ", "&nbsp;"))
}

func dumpnode(p *cfg.Node, lv *liveness.Analysis) string {
	use, def := lv.Effects(p)
	buf := []string{
		`<table border="1" cellborder="0" cellspacing="0">`,
		fmt.Sprintf(`<tr><td>%s</td></tr>`, p),
		`<hr/>`,
		htmlrow("# in  = " + lv.LiveIn(p).String()),
		htmlrow("# use = " + use.String()),
		htmlrow("# def = " + def.String()),
	}

	/* dump all the statements */
	if len(p.Stmts) != 0 {
		buf = append(buf, `<hr/>`)
		for _, s := range p.Stmts {
			buf = append(buf, htmlrow(s.String()))
		}
	}

	/* live-out set */
	buf = append(buf, `<hr/>`)
	buf = append(buf, htmlrow("# out = "+lv.LiveOut(p).String()))
	buf = append(buf, `</table>`)
	return strings.Join(buf, "")
}

// DrawLiveness writes the analyzed graph in Graphviz DOT format, with the
// statements, effects and live sets of every node.
func DrawLiveness(w io.Writer, lv *liveness.Analysis) error {
	g := lv.Graph()
	q := lane.NewQueue()
	n := make(map[*cfg.Node]bool, len(g.Nodes))
	buf := []string{
		"digraph CFG {",
		`    graph [ fontname = "Fira Code" ]`,
		`    node [ fontname = "Fira Code" fontsize = "16" shape = "plaintext" ]`,
		`    edge [ fontname = "Fira Code" ]`,
	}

	/* mark the entry */
	if g.Entry != nil {
		buf = append(buf, `    START [ shape = "circle" ]`)
		buf = append(buf, fmt.Sprintf(`    START -> %s`, g.Entry))
		n[g.Entry] = true
		q.Enqueue(g.Entry)
	}

	/* nodes unreachable from the entry are drawn as well */
	for _, p := range g.Nodes {
		if !n[p] {
			n[p] = true
			q.Enqueue(p)
		}

		/* breadth first from every new root */
		for !q.Empty() {
			v := q.Dequeue().(*cfg.Node)
			buf = append(buf, fmt.Sprintf(`    %s [ label = < %s > ]`, v, dumpnode(v, lv)))

			/* add all the edges */
			for _, s := range v.Succ {
				buf = append(buf, fmt.Sprintf(`    %s -> %s`, v, s))
				if !n[s] {
					n[s] = true
					q.Enqueue(s)
				}
			}
		}
	}

	/* write the graph */
	buf = append(buf, "}", "")
	_, err := io.WriteString(w, strings.Join(buf, "\n"))
	return err
}
