// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compiler turns a rendergraph.RenderGraph into an execution plan.
//
// # Pipeline
//
// Compilation runs as a fixed sequence of phases, each consuming the
// previous phase's output; the first failure short-circuits into a failed
// [Output]:
//
//	cull -> serial order -> parallelism analysis -> task pairing
//	     -> resource aliasing -> template assembly
//
//   - Cull keeps the passes reachable from the Root sentinel plus every
//     pass flagged NeverCull.
//   - Serial order is a Kahn topological sort of the survivors; ties break
//     by input order, so plans are deterministic.
//   - Parallelism analysis builds a transitively closed shadow graph and
//     records, for every non-sentinel pass, the later passes with no
//     dependency chain to it in either direction.
//   - Task pairing greedily assigns each main-queue pass an async-flagged
//     companion from its parallelizable set, bounded by the number of
//     parallelization chances.
//   - The aliaser packs image lifetimes first-fit into shared slots and
//     reports per-slot usage timelines.
//   - Template assembly derives the [ResourceLink] records a downstream
//     barrier generator consumes.
//
// The compiler never mutates its input graph; analysis that needs to add
// or remove edges works on a deep copy. All algorithms are deterministic
// greedy heuristics; their exact behavior is part of the contract, not an
// optimization left to the implementation.
package compiler
