// Package rendergraph provides an offline render-graph compiler for the
// GoGPU ecosystem.
//
// # Overview
//
// A render graph describes a frame as a directed graph of rendering passes
// connected by resource dependencies: the G-Buffer pass writes position and
// normal images, the lighting pass reads them, and so on. The compiler in
// the compiler/ subpackage turns such a graph into an execution plan for a
// GPU command-submission layer:
//
//   - unreachable passes are culled,
//   - the survivors are ordered topologically,
//   - independent passes are paired onto an async compute queue,
//   - image storage is aliased across non-overlapping lifetimes.
//
// The compiler is a pure transformation. It does not allocate GPU memory,
// record commands, or generate barriers; a downstream driver consumes the
// plan for that (see the submit/ subpackage for the integration surface).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/rendergraph"
//	    "github.com/gogpu/rendergraph/compiler"
//	)
//
//	g, err := rendergraph.NewExampleGraph()
//	if err != nil {
//	    return err
//	}
//
//	out := compiler.New(g, compiler.Options{AllowParallelization: true}).Compile()
//	if out.HasFailed {
//	    return fmt.Errorf("compile failed: %v", out.FailReason)
//	}
//	for _, task := range out.PhaseOutputs.TaskOrder {
//	    // submit task.Pass, co-schedule task.AsyncPass
//	}
//
// # Architecture
//
// The module is organized into:
//   - rendergraph (this package): passes, resources, edges, the graph itself
//   - graph/: directed-graph primitives (reachability, topological sort)
//   - compiler/: the compilation pipeline and its output types
//   - export/: Mermaid, Graphviz and JSON views for debugging
//   - submit/: device/queue integration surface for host applications
package rendergraph
