// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

// RenderGraph owns the passes and edges of one frame description.
//
// The graph is a build-time structure: passes and edges are added by a
// graph builder, then the compiler treats the graph as immutable input.
// None of the methods are safe for concurrent use.
//
// Mutating helpers report failure with a bare bool, like the membership
// queries; a failed call leaves the graph unchanged.
type RenderGraph struct {
	passes []*Pass
	edges  []Edge
}

// New creates an empty render graph.
func New() *RenderGraph {
	return &RenderGraph{}
}

// AddPass appends a pass to the graph and returns it.
func (g *RenderGraph) AddPass(p *Pass) *Pass {
	g.passes = append(g.passes, p)
	return p
}

// DeletePass removes the pass with the given id and every incident edge.
// It reports whether the pass existed.
func (g *RenderGraph) DeletePass(id ID) bool {
	pass := g.PassByID(id)
	if pass == nil {
		return false
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.SrcPass == id || e.DstPass == id {
			g.detachAdjacency(e.SrcPass, e.DstPass)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	for i, p := range g.passes {
		if p.ID == id {
			g.passes = append(g.passes[:i], g.passes[i+1:]...)
			break
		}
	}
	return true
}

// InsertEdge connects srcRes on src to dstRes on dst and returns whether
// the edge was created. It fails if both endpoints are the same pass or
// either named resource is absent. Duplicate edges between the same
// resources are permitted and receive their own id.
func (g *RenderGraph) InsertEdge(src *Pass, srcRes string, dst *Pass, dstRes string) bool {
	if src.ID == dst.ID {
		return false
	}

	srcResource := src.Resource(srcRes)
	if srcResource == nil {
		return false
	}
	dstResource := dst.Resource(dstRes)
	if dstResource == nil {
		return false
	}

	src.outgoing = append(src.outgoing, dst.ID)
	dst.incoming = append(dst.incoming, src.ID)

	g.edges = append(g.edges, Edge{
		ID:          NextID(),
		SrcPass:     src.ID,
		DstPass:     dst.ID,
		SrcResource: srcResource.ID,
		DstResource: dstResource.ID,
		SrcResName:  srcResource.Name,
		DstResName:  dstResource.Name,
	})
	return true
}

// DeleteEdge removes one edge matching the endpoints and resource names.
// It reports whether a matching edge was found and removed.
func (g *RenderGraph) DeleteEdge(src *Pass, srcRes string, dst *Pass, dstRes string) bool {
	if src.ID == dst.ID {
		return false
	}

	srcResource := src.Resource(srcRes)
	if srcResource == nil {
		return false
	}
	dstResource := dst.Resource(dstRes)
	if dstResource == nil {
		return false
	}

	for i, e := range g.edges {
		if e.SrcPass == src.ID && e.DstPass == dst.ID &&
			e.SrcResource == srcResource.ID && e.DstResource == dstResource.ID {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.detachAdjacency(src.ID, dst.ID)
			return true
		}
	}
	return false
}

// DeleteEdgeRecord removes the edge matching the record's endpoints and
// resource names. The record may originate from another copy of the graph;
// matching is by ids and names, not by edge id.
func (g *RenderGraph) DeleteEdgeRecord(e Edge) bool {
	src := g.PassByID(e.SrcPass)
	dst := g.PassByID(e.DstPass)
	if src == nil || dst == nil {
		return false
	}
	return g.DeleteEdge(src, e.SrcResName, dst, e.DstResName)
}

// detachAdjacency removes one adjacency entry for the src -> dst pair.
func (g *RenderGraph) detachAdjacency(srcID, dstID ID) {
	src := g.PassByID(srcID)
	dst := g.PassByID(dstID)
	if src != nil {
		for i, id := range src.outgoing {
			if id == dstID {
				src.outgoing = append(src.outgoing[:i], src.outgoing[i+1:]...)
				break
			}
		}
	}
	if dst != nil {
		for i, id := range dst.incoming {
			if id == srcID {
				dst.incoming = append(dst.incoming[:i], dst.incoming[i+1:]...)
				break
			}
		}
	}
}

// ContainsEdge reports whether any edge runs from src to dst.
func (g *RenderGraph) ContainsEdge(src, dst *Pass) bool {
	for _, e := range g.edges {
		if e.SrcPass == src.ID && e.DstPass == dst.ID {
			return true
		}
	}
	return false
}

// ContainsResourceEdge reports whether an edge connects the named resources
// on the given passes.
func (g *RenderGraph) ContainsResourceEdge(src *Pass, srcRes string, dst *Pass, dstRes string) bool {
	for _, e := range g.edges {
		if e.SrcPass == src.ID && e.DstPass == dst.ID &&
			e.SrcResName == srcRes && e.DstResName == dstRes {
			return true
		}
	}
	return false
}

// ContainsAnyEdge reports whether an edge connects a and b in either
// direction.
func (g *RenderGraph) ContainsAnyEdge(a, b *Pass) bool {
	return g.ContainsEdge(a, b) || g.ContainsEdge(b, a)
}

// PassByID returns the pass with the given id, or nil.
func (g *RenderGraph) PassByID(id ID) *Pass {
	for _, p := range g.passes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PassList resolves a list of pass ids to passes. Missing ids resolve to
// nil entries; callers that culled the ids from this graph never see one.
func (g *RenderGraph) PassList(ids []ID) []*Pass {
	passes := make([]*Pass, len(ids))
	for i, id := range ids {
		passes[i] = g.PassByID(id)
	}
	return passes
}

// Passes returns the graph's passes in insertion order. The slice is owned
// by the graph; callers must not modify it.
func (g *RenderGraph) Passes() []*Pass { return g.passes }

// Edges returns the graph's edges in insertion order. The slice is owned
// by the graph; callers must not modify it.
func (g *RenderGraph) Edges() []Edge { return g.edges }

// Out returns the pass-level successors of the pass with the given id, one
// entry per edge. It implements graph.Digraph.
func (g *RenderGraph) Out(id ID) []ID {
	if p := g.PassByID(id); p != nil {
		return p.outgoing
	}
	return nil
}

// In returns the pass-level predecessors of the pass with the given id,
// one entry per edge. It implements graph.Digraph.
func (g *RenderGraph) In(id ID) []ID {
	if p := g.PassByID(id); p != nil {
		return p.incoming
	}
	return nil
}

// Copy produces an independent graph with the same passes and edges. Pass,
// resource and adjacency identities are preserved so id-based references
// into the original stay meaningful; the re-inserted edges draw fresh edge
// ids from the global sequence.
//
// The compiler uses Copy to build a shadow graph it can mutate without
// touching the input.
func (g *RenderGraph) Copy() *RenderGraph {
	cp := New()

	for _, p := range g.passes {
		deps := make([]Resource, len(p.Dependencies))
		copy(deps, p.Dependencies)
		cp.AddPass(&Pass{
			ID:           p.ID,
			Name:         p.Name,
			Flags:        p.Flags,
			Dependencies: deps,
		})
	}

	for _, e := range g.edges {
		src := cp.PassByID(e.SrcPass)
		dst := cp.PassByID(e.DstPass)
		cp.InsertEdge(src, e.SrcResName, dst, e.DstResName)
	}

	return cp
}
