// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

// ID identifies passes, resources, edges and synthesized aliased slots.
// IDs are allocated by the process-wide [NextID] sequence and are unique
// across all of these kinds.
type ID int32

// InvalidID is the zero-meaning sentinel for an absent id.
const InvalidID ID = -1

// Names of the two sentinel passes every well-formed graph carries.
const (
	RootPassName    = "Root"
	PresentPassName = "Present"
)

// PassFlags classifies a pass for the compiler.
//
// Async semantically requires Compute, but the compiler does not enforce
// the combination.
type PassFlags struct {
	Raster    bool // default rendering pass
	Compute   bool // compute pass
	Async     bool // eligible for the asynchronous queue
	NeverCull bool // exempt from reachability pruning
	Sentinel  bool // synthetic Root / Present node
}

// Pass is a vertex of the render graph: one unit of GPU work together with
// its declared resources.
//
// Adjacency is kept at the pass level as id lists, one entry per edge, so a
// pair of passes connected by several edges appears several times. The
// lists are maintained by [RenderGraph.InsertEdge] and
// [RenderGraph.DeleteEdge]; they are not meant to be mutated directly.
type Pass struct {
	ID           ID
	Name         string
	Flags        PassFlags
	Dependencies []Resource

	incoming []ID
	outgoing []ID
}

// NewPass creates a pass with a fresh id from the global sequence.
func NewPass(name string, flags PassFlags, deps []Resource) *Pass {
	return &Pass{
		ID:           NextID(),
		Name:         name,
		Flags:        flags,
		Dependencies: deps,
	}
}

// Resource returns the declared resource with the given name, or nil.
func (p *Pass) Resource(name string) *Resource {
	for i := range p.Dependencies {
		if p.Dependencies[i].Name == name {
			return &p.Dependencies[i]
		}
	}
	return nil
}

// ResourceByID returns the declared resource with the given id, or nil.
func (p *Pass) ResourceByID(id ID) *Resource {
	for i := range p.Dependencies {
		if p.Dependencies[i].ID == id {
			return &p.Dependencies[i]
		}
	}
	return nil
}

// Incoming returns the ids of passes with an edge into p, one entry per
// edge. The slice is owned by the graph; callers must not modify it.
func (p *Pass) Incoming() []ID { return p.incoming }

// Outgoing returns the ids of passes p has an edge to, one entry per edge.
// The slice is owned by the graph; callers must not modify it.
func (p *Pass) Outgoing() []ID { return p.outgoing }
