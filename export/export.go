// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export renders render graphs and compiler outputs into
// Mermaid, Graphviz and JSON documents for debugging and visualization.
//
// Exporters write to an io.Writer; opening files and choosing paths stays
// with the caller. Nothing in this package is required for compilation.
package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gogpu/rendergraph"
)

// Mermaid writes a flowchart of the graph: passes as rectangular nodes,
// resources as round nodes on every edge, styled by resource type.
func Mermaid(w io.Writer, g *rendergraph.RenderGraph) error {
	output := []string{
		"flowchart TD",
		"classDef resImage color:#4c4f69,fill:#cba6f7,stroke:#8839ef,stroke-width:1px;",
		"classDef resOther color:#4c4f69,fill:#f38ba8,stroke:#d20f39,stroke-width:1px;",
		"classDef pass color:#4c4f69,fill:#b4befe,stroke:#7287fd,stroke-width:1px;",
	}

	for _, node := range g.Passes() {
		output = append(output, fmt.Sprintf("%d[%s]:::pass", node.ID, node.Name))
		for _, edge := range g.Edges() {
			if node.ID != edge.SrcPass {
				continue
			}
			class := "resOther"
			if res := node.Resource(edge.SrcResName); res != nil && res.Type == rendergraph.ResourceImage {
				class = "resImage"
			}
			output = append(output, fmt.Sprintf("%s(%s):::%s", edge.SrcResName, edge.SrcResName, class))
		}
	}

	for _, start := range g.Passes() {
		for _, edge := range g.Edges() {
			if start.ID != edge.SrcPass {
				continue
			}
			from := fmt.Sprintf("%d --> %s", start.ID, edge.SrcResName)
			if !slices.Contains(output, from) {
				output = append(output, from)
			}
			to := fmt.Sprintf("%s --> %d", edge.SrcResName, edge.DstPass)
			if !slices.Contains(output, to) {
				output = append(output, to)
			}
		}
	}

	_, err := io.WriteString(w, strings.Join(output, "\n")+"\n")
	return err
}

// GraphvizDOT writes the pass-level adjacency as a DOT digraph.
func GraphvizDOT(w io.Writer, g *rendergraph.RenderGraph) error {
	output := []string{"digraph {"}
	for _, start := range g.Passes() {
		for _, dstID := range start.Outgoing() {
			dst := g.PassByID(dstID)
			output = append(output, fmt.Sprintf("%q -> %q", start.Name, dst.Name))
		}
	}
	output = append(output, "}")

	_, err := io.WriteString(w, strings.Join(output, "\n")+"\n")
	return err
}
