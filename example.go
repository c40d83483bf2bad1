// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"fmt"

	"go.uber.org/multierr"
)

// edgeBatch inserts edges one by one and aggregates failures, so a builder
// reports every bad connection at once instead of stopping at the first.
type edgeBatch struct {
	graph *RenderGraph
	err   error
}

func (b *edgeBatch) insert(src *Pass, srcRes string, dst *Pass, dstRes string) {
	if !b.graph.InsertEdge(src, srcRes, dst, dstRes) {
		b.err = multierr.Append(b.err, fmt.Errorf(
			"rendergraph: cannot connect %s.%s -> %s.%s", src.Name, srcRes, dst.Name, dstRes))
	}
}

// NewExampleGraph builds the deferred-shading example frame: Root feeds the
// G-Buffer pass, lighting and async ambient occlusion consume the G-Buffer
// images, composition combines both results, Present consumes the combined
// image.
func NewExampleGraph() (*RenderGraph, error) {
	g := New()

	root := g.AddPass(NewSentinelRootPass())
	gbuffer := g.AddPass(NewGBufferPass())
	lighting := g.AddPass(NewLightingPass())
	ao := g.AddPass(NewAmbientOcclusionPass())
	composition := g.AddPass(NewCompositionPass())
	present := g.AddPass(NewSentinelPresentPass())

	b := edgeBatch{graph: g}

	b.insert(root, "scene", gbuffer, "scene")

	b.insert(gbuffer, "positionImage", lighting, "positionImage")
	b.insert(gbuffer, "normalImage", lighting, "normalImage")
	b.insert(gbuffer, "albedoImage", lighting, "albedoImage")

	b.insert(gbuffer, "positionImage", ao, "positionImage")
	b.insert(gbuffer, "normalImage", ao, "normalImage")

	b.insert(lighting, "lightingResult", composition, "imageA")
	b.insert(ao, "ambientOcclusionImage", composition, "imageB")

	b.insert(composition, "combined", present, "presentImage")

	if b.err != nil {
		return nil, b.err
	}
	return g, nil
}

// NewExampleGraph2 builds the larger example frame: the deferred-shading
// chain plus a standalone async compute pass, temporal anti-aliasing and a
// second composition before Present.
func NewExampleGraph2() (*RenderGraph, error) {
	g := New()

	root := g.AddPass(NewSentinelRootPass())
	someCompute := g.AddPass(NewAsyncComputePass())
	gbuffer := g.AddPass(NewGBufferPass())
	lighting := g.AddPass(NewLightingPass())
	ao := g.AddPass(NewAmbientOcclusionPass())
	composition := g.AddPass(NewCompositionPass())
	aa := g.AddPass(NewAntiAliasingPass())
	composition2 := g.AddPass(NewCompositionPass())
	present := g.AddPass(NewSentinelPresentPass())

	b := edgeBatch{graph: g}

	b.insert(root, "scene", gbuffer, "scene")
	b.insert(root, "scene", someCompute, "scene")

	b.insert(gbuffer, "positionImage", lighting, "positionImage")
	b.insert(gbuffer, "normalImage", lighting, "normalImage")
	b.insert(gbuffer, "albedoImage", lighting, "albedoImage")

	b.insert(gbuffer, "positionImage", ao, "positionImage")
	b.insert(gbuffer, "normalImage", ao, "normalImage")

	b.insert(lighting, "lightingResult", composition, "imageA")
	b.insert(ao, "ambientOcclusionImage", composition, "imageB")

	b.insert(composition, "combined", aa, "aaInput")
	b.insert(gbuffer, "motionVectors", aa, "motionVectors")

	b.insert(aa, "aaOutput", composition2, "imageA")
	b.insert(someCompute, "someImage", composition2, "imageB")

	b.insert(composition2, "combined", present, "presentImage")

	if b.err != nil {
		return nil, b.err
	}
	return g, nil
}
