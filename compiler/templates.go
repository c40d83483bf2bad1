// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// ResourceLink is one directed data-flow record of a resource template: the
// producing pass and resource on the source side, a consumer and the access
// it declared on the destination side. A downstream barrier generator
// consumes these.
type ResourceLink struct {
	SrcPass     rendergraph.ID
	DstPass     rendergraph.ID
	SrcResource rendergraph.ID
	DstResource rendergraph.ID
	Access      rendergraph.AccessType
}

// ResourceTemplate describes one aliased slot for the memory planner: the
// slot id, the storage it needs, and the links connecting its producer to
// every consumer.
type ResourceTemplate struct {
	ID     rendergraph.ID
	Type   rendergraph.ResourceType
	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
	Links  []ResourceLink
}

// resourceTemplates derives the template list from the aliasing result.
// Every usage point except the slot's own producer becomes a link.
func (c *Compiler) resourceTemplates(optimized OptimizerOutput) []ResourceTemplate {
	templates := make([]ResourceTemplate, 0, len(optimized.GeneratedResources))

	for _, slot := range optimized.GeneratedResources {
		template := ResourceTemplate{
			ID:     slot.ID,
			Type:   slot.Type,
			Format: slot.OriginalResource.Format,
			Usage:  slot.OriginalResource.Usage,
		}

		for _, up := range slot.Points {
			if up.UserNodeID == slot.OriginalPass && up.UserResID == slot.OriginalResource.ID {
				continue
			}
			template.Links = append(template.Links, ResourceLink{
				SrcPass:     slot.OriginalPass,
				DstPass:     up.UserNodeID,
				SrcResource: slot.OriginalResource.ID,
				DstResource: up.UserResID,
				Access:      up.Access,
			})
		}

		templates = append(templates, template)
	}

	return templates
}
