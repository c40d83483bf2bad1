// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graph

import (
	"errors"
	"slices"
	"testing"
)

// adjacency is a minimal Digraph for tests.
type adjacency struct {
	out map[int][]int
	in  map[int][]int
}

func newAdjacency() *adjacency {
	return &adjacency{out: make(map[int][]int), in: make(map[int][]int)}
}

func (a *adjacency) edge(src, dst int) {
	a.out[src] = append(a.out[src], dst)
	a.in[dst] = append(a.in[dst], src)
}

func (a *adjacency) Out(id int) []int { return a.out[id] }
func (a *adjacency) In(id int) []int  { return a.in[id] }

func TestReachable(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(1, 2)
	g.edge(2, 3)
	g.edge(4, 5) // disconnected island

	got := Reachable[int](g, 0)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Reachable() returned %d ids, want %d", len(got), len(want))
	}
	for _, id := range want {
		if _, ok := got[id]; !ok {
			t.Errorf("Reachable() is missing id %d", id)
		}
	}
	if _, ok := got[4]; ok {
		t.Error("Reachable() contains unreachable id 4")
	}
}

func TestReachableIncludesRoot(t *testing.T) {
	g := newAdjacency()
	got := Reachable[int](g, 7)
	if _, ok := got[7]; !ok || len(got) != 1 {
		t.Errorf("Reachable() of isolated root = %v, want just {7}", got)
	}
}

func TestReachableTerminatesOnCycle(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(1, 2)
	g.edge(2, 0)

	got := Reachable[int](g, 0)
	if len(got) != 3 {
		t.Errorf("Reachable() on cycle returned %d ids, want 3", len(got))
	}
}

func TestHasPath(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(1, 2)
	g.edge(3, 1)

	tests := []struct {
		src, dst int
		want     bool
	}{
		{0, 2, true},
		{0, 0, true}, // a vertex reaches itself
		{2, 0, false},
		{0, 3, false},
		{3, 2, true},
	}
	for _, tt := range tests {
		if got := HasPath[int](g, tt.src, tt.dst); got != tt.want {
			t.Errorf("HasPath(%d, %d) = %v, want %v", tt.src, tt.dst, got, tt.want)
		}
	}
}

func TestHasPathTerminatesOnCycle(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(1, 0)

	if HasPath[int](g, 0, 2) {
		t.Error("HasPath() found a path to a vertex outside the cycle")
	}
	if !HasPath[int](g, 0, 1) {
		t.Error("HasPath() missed the direct edge inside the cycle")
	}
}

func TestTopologicalSort(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(0, 2)
	g.edge(1, 3)
	g.edge(2, 3)

	order, err := TopologicalSort[int](g, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}

	pos := make(map[int]int)
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("TopologicalSort() places %d after %d", e[0], e[1])
		}
	}
}

func TestTopologicalSortTieBreak(t *testing.T) {
	// Three independent vertices: emitted in input order.
	g := newAdjacency()
	order, err := TopologicalSort[int](g, []int{5, 3, 9})
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if !slices.Equal(order, []int{5, 3, 9}) {
		t.Errorf("TopologicalSort() = %v, want input order [5 3 9]", order)
	}
}

func TestTopologicalSortMultiEdgeDegrees(t *testing.T) {
	// Two parallel edges 0 -> 1: both must be relaxed before 1 is ready.
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(0, 1)

	order, err := TopologicalSort[int](g, []int{0, 1})
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if !slices.Equal(order, []int{0, 1}) {
		t.Errorf("TopologicalSort() = %v, want [0 1]", order)
	}
}

func TestTopologicalSortCycle(t *testing.T) {
	g := newAdjacency()
	g.edge(0, 1)
	g.edge(1, 2)
	g.edge(2, 1)

	if _, err := TopologicalSort[int](g, []int{0, 1, 2}); !errors.Is(err, ErrNotAcyclic) {
		t.Errorf("TopologicalSort() error = %v, want ErrNotAcyclic", err)
	}
}

func TestTopologicalSortEdgeFromOutsideSet(t *testing.T) {
	// 0 -> 1 with only 1 in the sorted set: the in-edge is never relaxed,
	// so the sort reports a cycle. This mirrors the in-degree
	// initialization from the full incoming adjacency.
	g := newAdjacency()
	g.edge(0, 1)

	if _, err := TopologicalSort[int](g, []int{1}); !errors.Is(err, ErrNotAcyclic) {
		t.Errorf("TopologicalSort() error = %v, want ErrNotAcyclic", err)
	}
}
