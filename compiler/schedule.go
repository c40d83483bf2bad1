// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/graph"
)

// parallelizablePasses computes, for each non-sentinel pass, the set of
// later non-sentinel passes with no dependency chain to it in either
// direction. The result maps pass id to peers in serial-order scan order;
// passes with no peers are absent from the map.
//
// The analysis works on a shadow copy of the graph: edges collected by the
// multi-edge filter below are removed (the filter matches no edge, so all
// connectors stay), then the copy is transitively closed so a single
// ContainsAnyEdge query answers "is there a chain".
func (c *Compiler) parallelizablePasses(order []rendergraph.ID) map[rendergraph.ID][]rendergraph.ID {
	canRunInParallel := make(map[rendergraph.ID][]rendergraph.ID)

	// Collect multi-edges between the same pass pair.
	//
	// The second clause compares the candidate's source against the
	// reference edge's destination, so in practice nothing matches and
	// every connector survives into the shadow graph. Kept verbatim:
	// downstream exports rely on the resulting edge survival pattern.
	var duplicateEdges []rendergraph.Edge
	for _, edge := range c.graph.Edges() {
		for _, e := range c.graph.Edges() {
			if edge.ID != e.ID &&
				edge.SrcPass == e.SrcPass &&
				edge.DstPass == e.SrcPass {
				duplicateEdges = append(duplicateEdges, e)
			}
		}
	}

	shadow := c.graph.Copy()
	for _, edge := range duplicateEdges {
		shadow.DeleteEdgeRecord(edge)
	}

	// Transitive closure: connect every ancestor directly to each of its
	// descendants.
	for _, node := range shadow.Passes() {
		for _, dst := range shadow.Passes() {
			if node.ID != dst.ID && graph.HasPath[rendergraph.ID](shadow, node.ID, dst.ID) {
				shadow.InsertEdge(node, node.Dependencies[0].Name, dst, dst.Dependencies[0].Name)
			}
		}
	}

	// Scan pairs from the earlier side of the serial order.
	shadowNodes := shadow.PassList(order)
	for i, node := range shadowNodes {
		if node.Flags.Sentinel {
			continue
		}

		var independent []rendergraph.ID
		for j, other := range shadowNodes {
			if node.ID == other.ID ||
				other.Flags.Sentinel ||
				i > j ||
				shadow.ContainsAnyEdge(node, other) {
				continue
			}
			independent = append(independent, other.ID)
		}

		canRunInParallel[node.ID] = independent
	}

	for id, list := range canRunInParallel {
		if len(list) == 0 {
			delete(canRunInParallel, id)
		}
	}

	return canRunInParallel
}

// finalTaskOrder builds the task list. Without parallelization every pass
// becomes its own task in serial order. With it, each pass greedily picks
// the first async-flagged peer from its parallelizable set as companion;
// the number of paired emissions is bounded by the size of the
// parallelizable map.
func (c *Compiler) finalTaskOrder(order []rendergraph.ID, parallelizable map[rendergraph.ID][]rendergraph.ID) []Task {
	var tasks []Task

	nodes := c.graph.PassList(order)

	if !c.opts.AllowParallelization {
		for _, node := range nodes {
			tasks = append(tasks, Task{Pass: node.ID, AsyncPass: rendergraph.InvalidID})
		}
		return tasks
	}

	chances := len(parallelizable)
	parallelTaskCount := 0
	consumed := make(map[rendergraph.ID]struct{})

	for _, node := range nodes {
		if _, ok := consumed[node.ID]; ok {
			continue
		}

		if _, ok := parallelizable[node.ID]; !ok && chances <= parallelTaskCount {
			tasks = append(tasks, Task{Pass: node.ID, AsyncPass: rendergraph.InvalidID})
			consumed[node.ID] = struct{}{}
			continue
		}

		selected := rendergraph.InvalidID
		for _, otherID := range parallelizable[node.ID] {
			if c.graph.PassByID(otherID).Flags.Async {
				selected = otherID
				break
			}
		}

		tasks = append(tasks, Task{Pass: node.ID, AsyncPass: selected})
		consumed[node.ID] = struct{}{}
		if selected != rendergraph.InvalidID {
			consumed[selected] = struct{}{}
		}

		parallelTaskCount++
	}

	return tasks
}
