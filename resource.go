// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "github.com/gogpu/gputypes"

// AccessType describes how a pass accesses one of its declared resources.
type AccessType int

const (
	// AccessNone means the resource is neither read nor written by the
	// pass. This is the only valid access for External resources, whose
	// state the render graph does not manage.
	AccessNone AccessType = iota

	// AccessRead marks the resource as an input of the pass.
	AccessRead

	// AccessWrite marks the resource as an output of the pass. Write
	// resources are the producers tracked by the resource aliaser.
	AccessWrite
)

// String returns the lowercase wire name of the access type.
func (a AccessType) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessNone:
		return "none"
	}
	return "unknown"
}

// MarshalJSON encodes the access type as its lowercase wire name.
func (a AccessType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// ResourceType classifies a declared resource.
type ResourceType int

const (
	// ResourceUnknown is the zero value; it never aliases.
	ResourceUnknown ResourceType = iota

	// ResourceImage is a GPU image. Images are the only resources the
	// aliaser may pack into shared storage.
	ResourceImage

	// ResourceBuffer is a GPU buffer.
	ResourceBuffer

	// ResourceExternal is an opaque input owned by the host, such as the
	// scene description. AccessType is ignored for external resources.
	ResourceExternal
)

// String returns the lowercase wire name of the resource type.
func (t ResourceType) String() string {
	switch t {
	case ResourceImage:
		return "image"
	case ResourceBuffer:
		return "buffer"
	case ResourceExternal:
		return "external"
	case ResourceUnknown:
		return "unknown"
	}
	return "unknown"
}

// MarshalJSON encodes the resource type as its lowercase wire name.
func (t ResourceType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// ResourceFlags carries per-resource compiler hints.
type ResourceFlags struct {
	// DontOptimize excludes the resource from the aliasing phase. The
	// resource still appears in the plan, in a slot of its own.
	DontOptimize bool
}

// Resource is a pass-local declaration of an input or output. The name must
// be unique within the owning pass; edges reference resources by name at
// build time and by id afterwards.
//
// For image resources, Format and Usage describe the storage a memory
// planner must back the aliased slot with. Both are zero for buffers and
// external resources.
type Resource struct {
	ID     ID
	Name   string
	Type   ResourceType
	Access AccessType
	Flags  ResourceFlags

	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
}
