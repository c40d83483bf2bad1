// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package submit is the integration surface between a compiled plan and a
// GPU command-submission layer.
//
// The compiler is offline and never touches a device. A host application
// that wants to execute a plan provides its device through the gpucontext
// integration interfaces, the same way hosts hand devices to gg renderers:
// the host OWNS the device, this package only receives it. [Walk] then
// drives a [TaskVisitor] over the task order so the host backend can
// record main-queue and async-queue submissions in plan order.
package submit

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/compiler"
)

// DeviceHandle provides GPU device access from the host application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// submission layer a local name for the interface while staying fully
// compatible with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// QueueSet names the two hardware queues a plan schedules onto. Task main
// slots submit to Main; async companions submit to Async. Both may be the
// same queue on hardware without a dedicated compute queue, which degrades
// pairing to serialization but stays correct.
type QueueSet struct {
	Main  gpucontext.Queue
	Async gpucontext.Queue
}

// QueuesFrom derives a QueueSet from a host device handle. The handle's
// queue serves both slots; hosts with a dedicated compute queue populate
// the set themselves.
func QueuesFrom(h DeviceHandle) QueueSet {
	q := h.Queue()
	return QueueSet{Main: q, Async: q}
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used in tests and for dry-running plans without a GPU.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns zero-value adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// ErrFailedOutput is returned by [Walk] for an output whose compilation
// failed; there is no task order to walk.
var ErrFailedOutput = errors.New("submit: compilation failed, no task order")

// TaskVisitor receives the passes of a plan in submission order. MainPass
// is called once per task; AsyncPass follows immediately for tasks that
// carry a companion. Returning an error stops the walk.
type TaskVisitor interface {
	MainPass(taskIdx int, pass *rendergraph.Pass) error
	AsyncPass(taskIdx int, pass *rendergraph.Pass) error
}

// Walk drives the visitor over the plan's task order. Pass ids are
// resolved against the graph the plan was compiled from; a dangling id
// reports compiler.ErrNoNodeByGivenID.
func Walk(out compiler.Output, g *rendergraph.RenderGraph, v TaskVisitor) error {
	if out.HasFailed || out.PhaseOutputs == nil {
		return fmt.Errorf("%w (reason: %v)", ErrFailedOutput, out.FailReason)
	}

	for i, task := range out.PhaseOutputs.TaskOrder {
		pass := g.PassByID(task.Pass)
		if pass == nil {
			return fmt.Errorf("%w: %d", compiler.ErrNoNodeByGivenID, task.Pass)
		}
		if err := v.MainPass(i, pass); err != nil {
			return err
		}

		if !task.HasAsync() {
			continue
		}
		async := g.PassByID(task.AsyncPass)
		if async == nil {
			return fmt.Errorf("%w: %d", compiler.ErrNoNodeByGivenID, task.AsyncPass)
		}
		if err := v.AsyncPass(i, async); err != nil {
			return err
		}
	}
	return nil
}
