// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "github.com/gogpu/gputypes"

// This file is the catalog of passes used by the example graphs and the
// compiler tests. Each constructor allocates fresh pass and resource ids,
// the pass id first, so a catalog pass can appear several times in one
// graph.

const gbufferUsage = gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding

// NewSentinelRootPass creates the synthetic graph entry point. Culling
// starts its reachability walk here.
func NewSentinelRootPass() *Pass {
	pass := NewPass(RootPassName, PassFlags{NeverCull: true, Sentinel: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "scene", Type: ResourceExternal, Access: AccessNone},
	}
	return pass
}

// NewSentinelPresentPass creates the synthetic graph sink consuming the
// final image.
func NewSentinelPresentPass() *Pass {
	pass := NewPass(PresentPassName, PassFlags{Raster: true, NeverCull: true, Sentinel: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "presentImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatBGRA8Unorm, Usage: gputypes.TextureUsageRenderAttachment},
	}
	return pass
}

// NewGBufferPass creates the geometry pass writing the G-Buffer images.
func NewGBufferPass() *Pass {
	pass := NewPass("G-Buffer Pass", PassFlags{Raster: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "scene", Type: ResourceExternal, Access: AccessNone},
		{ID: NextID(), Name: "positionImage", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
		{ID: NextID(), Name: "normalImage", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
		{ID: NextID(), Name: "albedoImage", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
		{ID: NextID(), Name: "motionVectors", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
	}
	return pass
}

// NewLightingPass creates the deferred lighting pass.
func NewLightingPass() *Pass {
	pass := NewPass("Lighting Pass", PassFlags{Raster: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "positionImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "normalImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "albedoImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "lightingResult", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
	}
	return pass
}

// NewAmbientOcclusionPass creates the async compute AO pass.
func NewAmbientOcclusionPass() *Pass {
	pass := NewPass("Ambient Occlusion Pass", PassFlags{Raster: true, Compute: true, Async: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "positionImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "normalImage", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "ambientOcclusionImage", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatR8Unorm, Usage: gputypes.TextureUsageTextureBinding},
	}
	return pass
}

// NewAsyncComputePass creates a standalone async compute example pass
// working directly off the scene.
func NewAsyncComputePass() *Pass {
	pass := NewPass("AsyncCompute Pass", PassFlags{Compute: true, Async: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "scene", Type: ResourceExternal, Access: AccessNone},
		{ID: NextID(), Name: "someImage", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
	}
	return pass
}

// NewCompositionPass creates the pass combining two inputs into one image.
func NewCompositionPass() *Pass {
	pass := NewPass("Composition Pass", PassFlags{Raster: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "imageA", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "imageB", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "combined", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
	}
	return pass
}

// NewAntiAliasingPass creates the temporal anti-aliasing pass.
func NewAntiAliasingPass() *Pass {
	pass := NewPass("Anti-Aliasing Pass", PassFlags{Raster: true}, nil)
	pass.Dependencies = []Resource{
		{ID: NextID(), Name: "motionVectors", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "aaInput", Type: ResourceImage, Access: AccessRead,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gputypes.TextureUsageTextureBinding},
		{ID: NextID(), Name: "aaOutput", Type: ResourceImage, Access: AccessWrite,
			Format: gputypes.TextureFormatRGBA8Unorm, Usage: gbufferUsage},
	}
	return pass
}
