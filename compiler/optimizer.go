// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"fmt"

	"github.com/gogpu/rendergraph"
)

// UsagePoint is one use of a resource on the task timeline. Ordering and
// equality are on the timeline index alone, so two usages at the same
// index collide during packing.
type UsagePoint struct {
	Point      int                    `json:"point"`
	UserResID  rendergraph.ID         `json:"userResId"`
	UsedAs     string                 `json:"usedAs"`
	UserNodeID rendergraph.ID         `json:"userNodeId"`
	UsedBy     string                 `json:"usedBy"`
	Access     rendergraph.AccessType `json:"access"`
}

// Range is an inclusive [Start, End] span of timeline indices.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewRange creates a range. Construction with start > end is a programming
// error and panics; it cannot occur for well-formed usage point sets.
func NewRange(start, end int) Range {
	if start > end {
		panic(fmt.Sprintf("compiler: range starting point %d is greater than the end point %d", start, end))
	}
	return Range{Start: start, End: end}
}

// rangeOfPoints spans the minimum to the maximum timeline index of a
// non-empty, sorted point set.
func rangeOfPoints(points []UsagePoint) Range {
	return NewRange(points[0].Point, points[len(points)-1].Point)
}

// Overlaps reports whether two inclusive ranges intersect.
func (r Range) Overlaps(other Range) bool {
	return max(r.Start, other.Start) <= min(r.End, other.End)
}

// AliasedResource is a synthesized storage slot. After packing it holds the
// usage points of every original resource aliased into it, sorted by
// timeline index with at most one point per index.
type AliasedResource struct {
	ID     rendergraph.ID
	Points []UsagePoint

	// OriginalResource and OriginalPass identify the producer the slot was
	// seeded from; template assembly links consumers back to it.
	OriginalResource rendergraph.Resource
	OriginalPass     rendergraph.ID

	Type rendergraph.ResourceType

	// reserved marks a slot forced for a non-optimizable resource. The
	// first-fit scan never packs other lifetimes into a reserved slot.
	reserved bool
}

// Reserved reports whether the slot was forced for a non-optimizable
// resource and holds that resource alone.
func (r *AliasedResource) Reserved() bool { return r.reserved }

// UsageRange returns the slot's current live range.
func (r *AliasedResource) UsageRange() Range {
	return rangeOfPoints(r.Points)
}

// UsagePointAt returns the usage point at the given timeline index.
func (r *AliasedResource) UsagePointAt(point int) (UsagePoint, bool) {
	for _, up := range r.Points {
		if up.Point == point {
			return up, true
		}
	}
	return UsagePoint{}, false
}

// InsertPoints merges the given sorted point set into the slot. It fails
// without modifying the slot if any incoming timeline index is already
// occupied.
func (r *AliasedResource) InsertPoints(points []UsagePoint) bool {
	for _, up := range points {
		if _, ok := r.UsagePointAt(up.Point); ok {
			return false
		}
	}
	for _, up := range points {
		r.Points = insertPoint(r.Points, up)
	}
	return true
}

// insertPoint adds a point to a sorted set, keeping the earlier entry when
// the index is already present.
func insertPoint(points []UsagePoint, up UsagePoint) []UsagePoint {
	for i, existing := range points {
		if existing.Point == up.Point {
			return points
		}
		if existing.Point > up.Point {
			points = append(points, UsagePoint{})
			copy(points[i+1:], points[i:])
			points[i] = up
			return points
		}
	}
	return append(points, up)
}

// OptimizerOutput is the aliasing phase result: the synthesized slots, the
// original producer resources in discovery order, and packing statistics.
type OptimizerOutput struct {
	GeneratedResources []AliasedResource
	OriginalResources  []rendergraph.Resource

	NonOptimizables int
	Reduction       int
	PreCount        int
	PostCount       int
	TimelineRange   Range
}

// consumerInfo records one incoming edge destination of a produced
// resource.
type consumerInfo struct {
	passID       rendergraph.ID
	taskIdx      int
	passName     string
	resourceID   rendergraph.ID
	resourceName string
	access       rendergraph.AccessType
}

// resourceInfo pairs a produced (Write) resource with its consumers and
// the task index its producer runs at.
type resourceInfo struct {
	originPassID   rendergraph.ID
	originTaskIdx  int
	originPassName string
	originResource *rendergraph.Resource
	typ            rendergraph.ResourceType
	optimizable    bool
	consumers      []consumerInfo
}

// isOptimizableResource reports whether a resource type may share a slot.
func isOptimizableResource(t rendergraph.ResourceType) bool {
	return t == rendergraph.ResourceImage
}

// taskIndexOf returns the task-order index the pass runs at; the main and
// async slot of a task count identically. Passes absent from the task
// order land one past the end.
func taskIndexOf(id rendergraph.ID, tasks []Task) int {
	for i, task := range tasks {
		if task.Pass == id || task.AsyncPass == id {
			return i
		}
	}
	return len(tasks)
}

// evaluateRequiredResources discovers every produced resource in graph
// order and attaches its consumers in edge-insertion order.
func (c *Compiler) evaluateRequiredResources(tasks []Task) []resourceInfo {
	var infos []resourceInfo

	for _, node := range c.graph.Passes() {
		for i := range node.Dependencies {
			res := &node.Dependencies[i]
			if res.Access != rendergraph.AccessWrite {
				continue
			}
			infos = append(infos, resourceInfo{
				originPassID:   node.ID,
				originTaskIdx:  taskIndexOf(node.ID, tasks),
				originPassName: node.Name,
				originResource: res,
				typ:            res.Type,
				optimizable:    isOptimizableResource(res.Type),
			})
		}
	}

	for i := range infos {
		info := &infos[i]
		for _, edge := range c.graph.Edges() {
			if info.originPassID != edge.SrcPass ||
				info.originPassID == edge.DstPass ||
				info.originResource.ID != edge.SrcResource {
				continue
			}

			consumerPass := c.graph.PassByID(edge.DstPass)
			consumerRes := consumerPass.ResourceByID(edge.DstResource)

			info.consumers = append(info.consumers, consumerInfo{
				passID:       edge.DstPass,
				taskIdx:      taskIndexOf(edge.DstPass, tasks),
				passName:     consumerPass.Name,
				resourceID:   consumerRes.ID,
				resourceName: edge.DstResName,
				access:       consumerRes.Access,
			})
		}
	}

	return infos
}

// usagePointsFor builds the sorted point set of a produced resource: the
// producer at its own task index plus one point per consumer. Consumers
// sharing an index with an earlier point are dropped.
func usagePointsFor(info resourceInfo) []UsagePoint {
	points := []UsagePoint{{
		Point:      info.originTaskIdx,
		UserResID:  info.originResource.ID,
		UsedAs:     info.originResource.Name,
		UserNodeID: info.originPassID,
		UsedBy:     info.originPassName,
		Access:     info.originResource.Access,
	}}

	for _, consumer := range info.consumers {
		points = insertPoint(points, UsagePoint{
			Point:      consumer.taskIdx,
			UserResID:  consumer.resourceID,
			UsedAs:     consumer.resourceName,
			UserNodeID: consumer.passID,
			UsedBy:     consumer.passName,
			Access:     consumer.access,
		})
	}

	return points
}

// optimizeResources packs produced resources into aliased slots. Slots are
// scanned first-fit in insertion order; a candidate joins the first slot
// whose live range it does not overlap and whose occupied indices it does
// not collide with. Non-image resources and resources flagged DontOptimize
// always get a slot of their own.
func (c *Compiler) optimizeResources(tasks []Task) OptimizerOutput {
	infos := c.evaluateRequiredResources(tasks)

	var generated []AliasedResource
	nonOptimizables := 0

	for _, info := range infos {
		candidate := AliasedResource{
			ID:               rendergraph.NextID(),
			Points:           usagePointsFor(info),
			OriginalResource: *info.originResource,
			OriginalPass:     info.originPassID,
			Type:             info.typ,
		}

		incoming := rangeOfPoints(candidate.Points)

		if !info.optimizable || info.originResource.Flags.DontOptimize {
			candidate.reserved = true
			generated = append(generated, candidate)
			nonOptimizables++
			continue
		}

		if len(generated) == 0 {
			generated = append(generated, candidate)
			continue
		}

		inserted := false
		for i := range generated {
			slot := &generated[i]
			if slot.reserved {
				continue
			}
			if !slot.UsageRange().Overlaps(incoming) {
				if slot.InsertPoints(candidate.Points) {
					inserted = true
					break
				}
			}
		}

		if !inserted {
			generated = append(generated, candidate)
		}
	}

	originals := make([]rendergraph.Resource, len(infos))
	for i, info := range infos {
		originals[i] = *info.originResource
	}

	return OptimizerOutput{
		GeneratedResources: generated,
		OriginalResources:  originals,
		NonOptimizables:    nonOptimizables,
		Reduction:          len(infos) - len(generated),
		PreCount:           len(infos),
		PostCount:          len(generated),
		TimelineRange:      Range{Start: 0, End: len(c.graph.Passes())},
	}
}
