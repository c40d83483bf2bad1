// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/compiler"
)

// JSON document shapes. Field order matches the layout the tooling around
// the compiler already parses.

type jsonResource struct {
	ID     rendergraph.ID           `json:"id"`
	Name   string                   `json:"name"`
	Type   rendergraph.ResourceType `json:"type"`
	Access rendergraph.AccessType   `json:"access"`
}

type jsonNode struct {
	ID           rendergraph.ID `json:"id"`
	Name         string         `json:"name"`
	Dependencies []jsonResource `json:"dependencies"`
}

type jsonEdge struct {
	ID        rendergraph.ID `json:"id"`
	SrcNodeID rendergraph.ID `json:"srcNodeId"`
	SrcRes    string         `json:"srcRes"`
	DstNodeID rendergraph.ID `json:"dstNodeId"`
	DstRes    string         `json:"dstRes"`
}

type jsonPassRef struct {
	ID   rendergraph.ID `json:"id"`
	Name string         `json:"name"`
}

type jsonTask struct {
	Pass  string `json:"pass"`
	Async string `json:"async"`
}

type jsonOptResource struct {
	ID          rendergraph.ID           `json:"id"`
	Type        rendergraph.ResourceType `json:"type"`
	UsagePoints []compiler.UsagePoint    `json:"usagePoints"`
}

type jsonOptResult struct {
	TimelineLength int               `json:"timelineLength"`
	PreCount       int               `json:"preCount"`
	PostCount      int               `json:"postCount"`
	Reduction      int               `json:"reduction"`
	Resources      []jsonOptResource `json:"resources"`
}

type jsonDocument struct {
	CompilerOptions struct {
		AllowParallelization bool `json:"allowParallelization"`
	} `json:"compilerOptions"`
	InputGraph struct {
		Nodes []jsonNode `json:"nodes"`
		Edges []jsonEdge `json:"edges"`
	} `json:"inputGraph"`
	SerialExecutionOrder []jsonPassRef `json:"serialExecutionOrder"`
	ParallelizableNodes  [][]any       `json:"parallelizableNodes"`
	GeneratedTasks       []jsonTask    `json:"generatedTasks"`
	ResourceOptimizer    jsonOptResult `json:"resourceOptimizerResult"`
}

// JSON writes the full compiler output, along with the input graph it was
// produced from, as an indented JSON document. A failed output writes
// nothing.
func JSON(w io.Writer, out compiler.Output, g *rendergraph.RenderGraph) error {
	if out.PhaseOutputs == nil {
		return nil
	}
	results := out.PhaseOutputs

	var doc jsonDocument
	doc.CompilerOptions.AllowParallelization = out.Options.AllowParallelization
	doc.SerialExecutionOrder = []jsonPassRef{}
	doc.ParallelizableNodes = [][]any{}
	doc.GeneratedTasks = []jsonTask{}

	doc.InputGraph.Nodes = make([]jsonNode, 0, len(g.Passes()))
	for _, node := range g.Passes() {
		deps := make([]jsonResource, 0, len(node.Dependencies))
		for _, res := range node.Dependencies {
			deps = append(deps, jsonResource{ID: res.ID, Name: res.Name, Type: res.Type, Access: res.Access})
		}
		doc.InputGraph.Nodes = append(doc.InputGraph.Nodes, jsonNode{ID: node.ID, Name: node.Name, Dependencies: deps})
	}

	doc.InputGraph.Edges = make([]jsonEdge, 0, len(g.Edges()))
	for _, edge := range g.Edges() {
		doc.InputGraph.Edges = append(doc.InputGraph.Edges, jsonEdge{
			ID:        edge.ID,
			SrcNodeID: edge.SrcPass,
			SrcRes:    edge.SrcResName,
			DstNodeID: edge.DstPass,
			DstRes:    edge.DstResName,
		})
	}

	for _, node := range g.PassList(results.SerialExecutionOrder) {
		doc.SerialExecutionOrder = append(doc.SerialExecutionOrder, jsonPassRef{ID: node.ID, Name: node.Name})
	}

	parallelizableIDs := make([]rendergraph.ID, 0, len(results.ParallelizableNodes))
	for id := range results.ParallelizableNodes {
		parallelizableIDs = append(parallelizableIDs, id)
	}
	slices.Sort(parallelizableIDs)
	for _, id := range parallelizableIDs {
		names := make([]string, 0, len(results.ParallelizableNodes[id]))
		for _, otherID := range results.ParallelizableNodes[id] {
			names = append(names, g.PassByID(otherID).Name)
		}
		doc.ParallelizableNodes = append(doc.ParallelizableNodes, []any{g.PassByID(id).Name, names})
	}

	for _, task := range results.TaskOrder {
		async := "null"
		if task.HasAsync() {
			async = g.PassByID(task.AsyncPass).Name
		}
		doc.GeneratedTasks = append(doc.GeneratedTasks, jsonTask{Pass: g.PassByID(task.Pass).Name, Async: async})
	}

	doc.ResourceOptimizer = jsonOptResult{
		TimelineLength: results.ResourceOptimizer.TimelineRange.End,
		PreCount:       results.ResourceOptimizer.PreCount,
		PostCount:      results.ResourceOptimizer.PostCount,
		Reduction:      results.ResourceOptimizer.Reduction,
		Resources:      make([]jsonOptResource, 0, len(results.ResourceOptimizer.GeneratedResources)),
	}
	for _, slot := range results.ResourceOptimizer.GeneratedResources {
		doc.ResourceOptimizer.Resources = append(doc.ResourceOptimizer.Resources, jsonOptResource{
			ID:          slot.ID,
			Type:        slot.Type,
			UsagePoints: slot.Points,
		})
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// MermaidGantt writes the task order and aliased resource timelines as a
// compact Mermaid gantt chart: one row per main-queue pass, one per async
// companion, then one section per aliased slot with a bar for each
// lifetime packed into it.
func MermaidGantt(w io.Writer, out compiler.Output, g *rendergraph.RenderGraph) error {
	if out.PhaseOutputs == nil {
		return nil
	}
	results := out.PhaseOutputs

	output := []string{
		"---",
		"displayMode: compact",
		"---",
		"gantt",
		"\tdateFormat X",
		"\taxisFormat %s",
		"\tsection Passes",
	}

	for i, task := range results.TaskOrder {
		output = append(output, fmt.Sprintf("\t\t%s : %d, %d", g.PassByID(task.Pass).Name, i, i+1))
	}

	output = append(output, "\tsection Async")
	for i, task := range results.TaskOrder {
		if task.HasAsync() {
			output = append(output, fmt.Sprintf("\t\t%s :crit, %d, %d", g.PassByID(task.AsyncPass).Name, i, i+1))
		}
	}

	for i, slot := range results.ResourceOptimizer.GeneratedResources {
		output = append(output, fmt.Sprintf("\tsection Resource #%d", i))

		// A write hands its storage to the following point, so reads
		// report under the producing resource's name.
		points := slices.Clone(slot.Points)
		for j := 1; j < len(points); j++ {
			if points[j-1].Access == rendergraph.AccessWrite {
				points[j].UsedAs = points[j-1].UsedAs
			}
		}

		ranges := make(map[string]compiler.Range)
		var order []string
		for _, up := range points {
			r, ok := ranges[up.UsedAs]
			if !ok {
				ranges[up.UsedAs] = compiler.Range{Start: up.Point, End: up.Point}
				order = append(order, up.UsedAs)
				continue
			}
			r.End = up.Point
			ranges[up.UsedAs] = r
		}

		slices.Sort(order)
		for _, usedAs := range order {
			r := ranges[usedAs]
			output = append(output, fmt.Sprintf("\t\t%s : %d, %d", usedAs, r.Start, r.End+1))
		}
	}

	_, err := io.WriteString(w, strings.Join(output, "\n")+"\n")
	return err
}
