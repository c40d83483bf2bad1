// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/graph"
)

// Phase failures. Output.FailReason is derived from these via errors.Is.
var (
	// ErrNoRootNode is reported by the culling phase when the graph has no
	// sentinel pass named Root.
	ErrNoRootNode = errors.New("compiler: no root node")

	// ErrCyclicDependency is reported by the scheduling phase when the
	// culled graph is not acyclic.
	ErrCyclicDependency = errors.New("compiler: cyclic dependency")

	// ErrNoNodeByGivenID is reported when an internal lookup references a
	// pass the graph does not contain.
	ErrNoNodeByGivenID = errors.New("compiler: no node by given id")
)

// FailReason names the phase failure recorded in an [Output].
type FailReason int

const (
	FailNone FailReason = iota
	FailNoRootNode
	FailCyclicDependency
	FailNoNodeByGivenID
)

// String returns the reason's name.
func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailNoRootNode:
		return "noRootNode"
	case FailCyclicDependency:
		return "cyclicDependency"
	case FailNoNodeByGivenID:
		return "noNodeByGivenId"
	}
	return "unknown"
}

func failReasonOf(err error) FailReason {
	switch {
	case err == nil:
		return FailNone
	case errors.Is(err, ErrNoRootNode):
		return FailNoRootNode
	case errors.Is(err, ErrCyclicDependency):
		return FailCyclicDependency
	case errors.Is(err, ErrNoNodeByGivenID):
		return FailNoNodeByGivenID
	}
	return FailNone
}

// Options configures a compilation.
type Options struct {
	// AllowParallelization enables async task pairing. When false the task
	// order is a pure serialization of the topological order.
	AllowParallelization bool
}

// Task is one slot of execution: a pass on the main queue and, optionally,
// a companion pass co-scheduled on the async queue.
type Task struct {
	Pass      rendergraph.ID
	AsyncPass rendergraph.ID // InvalidID when the slot has no companion
}

// HasAsync reports whether the task carries an async companion.
func (t Task) HasAsync() bool { return t.AsyncPass != rendergraph.InvalidID }

// PhaseOutputs collects the per-phase results of a successful compilation.
type PhaseOutputs struct {
	CullNodes            []rendergraph.ID
	SerialExecutionOrder []rendergraph.ID
	ParallelizableNodes  map[rendergraph.ID][]rendergraph.ID
	TaskOrder            []Task
	ResourceOptimizer    OptimizerOutput
}

// Output is the result of one compilation.
type Output struct {
	ResourceTemplates []ResourceTemplate
	HasFailed         bool
	FailReason        FailReason
	PhaseOutputs      *PhaseOutputs // nil when HasFailed
	Options           Options
}

// Compiler compiles one render graph. It holds no state beyond the graph
// and options, so compiling twice yields identical plans modulo the ids
// drawn from the global sequence.
type Compiler struct {
	graph *rendergraph.RenderGraph
	opts  Options
}

// New creates a compiler for the given graph. The graph must stay
// unmodified for the lifetime of the compiler; Compile never mutates it.
func New(g *rendergraph.RenderGraph, opts Options) *Compiler {
	return &Compiler{graph: g, opts: opts}
}

// Compile runs the full pipeline and returns the plan. A phase failure
// produces an Output with HasFailed set, the failing phase's reason, and
// no phase outputs.
func (c *Compiler) Compile() Output {
	log := rendergraph.Logger()

	culled, err := c.cullPasses()
	if err != nil {
		return errorOutput(err, c.opts)
	}
	log.Debug("rendergraph: culling done", "remaining", len(culled))

	order, err := c.serialExecutionOrder(culled)
	if err != nil {
		return errorOutput(err, c.opts)
	}

	parallelizable := c.parallelizablePasses(order)
	tasks := c.finalTaskOrder(order, parallelizable)
	log.Debug("rendergraph: scheduling done", "tasks", len(tasks), "parallelizable", len(parallelizable))

	optimized := c.optimizeResources(tasks)
	log.Debug("rendergraph: aliasing done",
		"preCount", optimized.PreCount, "postCount", optimized.PostCount, "reduction", optimized.Reduction)

	return Output{
		ResourceTemplates: c.resourceTemplates(optimized),
		HasFailed:         false,
		FailReason:        FailNone,
		PhaseOutputs: &PhaseOutputs{
			CullNodes:            culled,
			SerialExecutionOrder: order,
			ParallelizableNodes:  parallelizable,
			TaskOrder:            tasks,
			ResourceOptimizer:    optimized,
		},
		Options: c.opts,
	}
}

func errorOutput(err error, opts Options) Output {
	return Output{
		HasFailed:  true,
		FailReason: failReasonOf(err),
		Options:    opts,
	}
}

// rootPass locates the sentinel pass named Root.
func (c *Compiler) rootPass() (*rendergraph.Pass, error) {
	for _, p := range c.graph.Passes() {
		if p.Flags.Sentinel && p.Name == rendergraph.RootPassName {
			return p, nil
		}
	}
	return nil, ErrNoRootNode
}

// cullPasses selects the passes that survive reachability pruning: every
// pass flagged NeverCull plus everything reachable from Root. The result
// is in ascending id order.
func (c *Compiler) cullPasses() ([]rendergraph.ID, error) {
	root, err := c.rootPass()
	if err != nil {
		return nil, err
	}

	remaining := make(map[rendergraph.ID]struct{})
	for _, p := range c.graph.Passes() {
		if p.Flags.NeverCull {
			remaining[p.ID] = struct{}{}
		}
	}
	for id := range graph.Reachable[rendergraph.ID](c.graph, root.ID) {
		remaining[id] = struct{}{}
	}

	ids := make([]rendergraph.ID, 0, len(remaining))
	for id := range remaining {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// serialExecutionOrder orders the culled passes topologically.
func (c *Compiler) serialExecutionOrder(culled []rendergraph.ID) ([]rendergraph.ID, error) {
	order, err := graph.TopologicalSort[rendergraph.ID](c.graph, culled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCyclicDependency, err)
	}
	return order, nil
}
