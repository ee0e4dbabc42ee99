// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/scene"
)

// Frame is the explicit context passed to every stage of one overlay frame.
//
// The host fills Ctx, Backend, Purpose and Framebuffers; the engine attaches
// Private, Extras and Dupli during Init. The same Frame value must be passed
// to every stage of the frame.
type Frame struct {
	Ctx          *scene.Context
	Backend      draw.Backend
	Purpose      draw.Purpose
	Framebuffers *draw.FramebufferList

	Private *Private
	Extras  *Extras
	Dupli   *DupliCache
}

// Theme returns the theme of the context, falling back to the engine's
// theme and then to the default theme.
func (f *Frame) Theme() *scene.Theme {
	if f.Ctx != nil && f.Ctx.Theme != nil {
		return f.Ctx.Theme
	}
	if f.Private != nil && f.Private.Theme != nil {
		return f.Private.Theme
	}
	return defaultTheme
}

var defaultTheme = scene.DefaultTheme()

// View3D returns the view settings of the frame. Frames without a 3D view
// use zero settings.
func (f *Frame) View3D() *scene.View3D {
	if f.Ctx != nil && f.Ctx.View3D != nil {
		return f.Ctx.View3D
	}
	return &emptyView3D
}

var emptyView3D scene.View3D

// Region returns the region view of the frame, or nil.
func (f *Frame) Region() *scene.RegionView {
	if f.Ctx == nil {
		return nil
	}
	return f.Ctx.Region
}

// IsSelect reports whether the frame draws selection IDs.
func (f *Frame) IsSelect() bool { return f.Purpose.IsSelect() }

// Private is the engine state shared by the categories of a frame.
// It is allocated once and reused, its fields are recomputed every frame.
type Private struct {
	Mode ContextMode
	// Theme is used when the context carries none.
	Theme *scene.Theme

	// Overlay and ViewFlag are snapshots of the view settings. Both are
	// zero when the view hides its overlays.
	Overlay  scene.Overlay
	ViewFlag scene.ViewFlags

	// ClippingState is draw.StateClipPlanes when clipping is active.
	ClippingState draw.State

	XRayEnabled           bool
	XRayEnabledAndNotWire bool
	// ClearInFront clears the in-front depth before in-front draws.
	ClearInFront bool

	// DoPoseFadeGeom fades meshes not influenced by selected bones while
	// weight painting.
	DoPoseFadeGeom bool

	DefaultView *draw.View
	// WiresView is DefaultView with a depth offset towards the camera.
	WiresView *draw.View

	WireStepParam float32

	// AASample counts accumulated antialiasing samples. Reset on view
	// changes.
	AASample int
}

// Reset clears the per-frame state, keeping the theme and the antialiasing
// sample count.
func (p *Private) Reset() {
	*p = Private{Theme: p.Theme, AASample: p.AASample}
}
