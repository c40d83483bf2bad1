// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"slices"
	"testing"

	"github.com/gogpu/rendergraph"
)

func TestParallelizablePasses(t *testing.T) {
	rendergraph.ResetIDSequence()
	g, err := rendergraph.NewExampleGraph()
	if err != nil {
		t.Fatalf("NewExampleGraph() error = %v", err)
	}
	c := New(g, Options{AllowParallelization: true})

	culled, err := c.cullPasses()
	if err != nil {
		t.Fatalf("cullPasses() error = %v", err)
	}
	order, err := c.serialExecutionOrder(culled)
	if err != nil {
		t.Fatalf("serialExecutionOrder() error = %v", err)
	}

	got := c.parallelizablePasses(order)

	lighting := passByName(t, g, "Lighting Pass")
	ao := passByName(t, g, "Ambient Occlusion Pass")

	if !slices.Equal(got[lighting.ID], []rendergraph.ID{ao.ID}) {
		t.Errorf("parallelizable peers of Lighting = %v, want [%d]", got[lighting.ID], ao.ID)
	}

	// Only the earlier side of each unordered pair records the peer, and
	// empty entries are dropped, so Lighting is the single key.
	if len(got) != 1 {
		t.Errorf("parallelizable map has %d entries, want 1: %v", len(got), got)
	}
	if _, ok := got[ao.ID]; ok {
		t.Error("later pass of the pair carries its own entry")
	}
}

func TestParallelizableExcludesSentinels(t *testing.T) {
	rendergraph.ResetIDSequence()
	g, err := rendergraph.NewExampleGraph2()
	if err != nil {
		t.Fatalf("NewExampleGraph2() error = %v", err)
	}

	out := New(g, Options{AllowParallelization: true}).Compile()
	if out.HasFailed {
		t.Fatalf("Compile() failed: %v", out.FailReason)
	}

	root := passByName(t, g, rendergraph.RootPassName)
	present := passByName(t, g, rendergraph.PresentPassName)
	for id, list := range out.PhaseOutputs.ParallelizableNodes {
		if id == root.ID || id == present.ID {
			t.Errorf("sentinel pass %d has a parallelizable entry", id)
		}
		for _, other := range list {
			if other == root.ID || other == present.ID {
				t.Errorf("sentinel pass %d recorded as a parallelizable peer", other)
			}
		}
	}
}

// TestShadowDedupPredicate documents the multi-edge filter the shadow graph
// is built with. The filter compares a candidate's source against the
// reference edge's destination, so even genuine duplicate connectors are
// never collected and all of them survive into the shadow graph. The
// comparison is preserved on purpose; downstream exports rely on the edge
// survival pattern.
func TestShadowDedupPredicate(t *testing.T) {
	rendergraph.ResetIDSequence()
	g := newLinearGraph(t)
	gbuffer := passByName(t, g, "G-Buffer Pass")
	lighting := passByName(t, g, "Lighting Pass")

	// A second connector over the same resources: a genuine multi-edge.
	if !g.InsertEdge(gbuffer, "positionImage", lighting, "positionImage") {
		t.Fatal("edge insertion failed")
	}

	var duplicates []rendergraph.Edge
	for _, edge := range g.Edges() {
		for _, e := range g.Edges() {
			if edge.ID != e.ID &&
				edge.SrcPass == e.SrcPass &&
				edge.DstPass == e.SrcPass {
				duplicates = append(duplicates, e)
			}
		}
	}
	if len(duplicates) != 0 {
		t.Fatalf("the filter collected %d edges; the destination/source comparison matches nothing", len(duplicates))
	}

	// Compilation is unaffected: the closure still answers dependency
	// queries the same way with the surviving duplicates.
	out := New(g, Options{AllowParallelization: true}).Compile()
	if out.HasFailed {
		t.Fatalf("Compile() failed: %v", out.FailReason)
	}
	want := []string{"Root", "G-Buffer Pass", "Lighting Pass", "Composition Pass", "Present"}
	if got := taskNames(g, out.PhaseOutputs.TaskOrder); !slices.Equal(got, want) {
		t.Errorf("task order = %v, want %v", got, want)
	}
}

func TestFinalTaskOrderBudget(t *testing.T) {
	// The paired-emission budget (chances = parallelizable map size) runs
	// out mid-walk on the larger graph; the remaining passes still come
	// through as basic tasks, each exactly once and in serial order.
	rendergraph.ResetIDSequence()
	g, err := rendergraph.NewExampleGraph2()
	if err != nil {
		t.Fatalf("NewExampleGraph2() error = %v", err)
	}

	out := New(g, Options{AllowParallelization: true}).Compile()
	if out.HasFailed {
		t.Fatalf("Compile() failed: %v", out.FailReason)
	}

	tasks := out.PhaseOutputs.TaskOrder

	// Main-queue slots respect the serial order.
	var mainOrder []rendergraph.ID
	for _, task := range tasks {
		mainOrder = append(mainOrder, task.Pass)
	}
	serialPos := make(map[rendergraph.ID]int)
	for i, id := range out.PhaseOutputs.SerialExecutionOrder {
		serialPos[id] = i
	}
	for i := 1; i < len(mainOrder); i++ {
		if serialPos[mainOrder[i-1]] >= serialPos[mainOrder[i]] {
			t.Errorf("main-queue slots out of serial order at task #%d", i)
		}
	}

	// Every pass shows up exactly once across all slots.
	count := 0
	for _, task := range tasks {
		count++
		if task.HasAsync() {
			count++
		}
	}
	if count != len(out.PhaseOutputs.SerialExecutionOrder) {
		t.Errorf("tasks cover %d passes, want %d", count, len(out.PhaseOutputs.SerialExecutionOrder))
	}
}
