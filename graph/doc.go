// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package graph provides the small directed-graph algorithms the render
// graph compiler is built on: BFS reachability, path existence, and Kahn's
// topological sort.
//
// The algorithms traverse any id-addressed adjacency through the [Digraph]
// interface; the rendergraph package's RenderGraph is the implementation
// used in practice. Only resulting sets and orders are observable,
// traversal order is not part of the contract.
package graph
