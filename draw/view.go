// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/overlay/scene"
)

// Matrix element indices in row-major f32.Mat4 storage.
const (
	m00 = 0  // x scale
	m11 = 5  // y scale
	m23 = 11 // z translation of the projection
	m33 = 15 // 1 for orthographic, 0 for perspective projections
)

// Identity returns the 4x4 identity matrix.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// View is a camera used while submitting passes.
type View struct {
	Name       string
	ViewMatrix f32.Mat4
	WinMatrix  f32.Mat4
	// Parent is the view this one was derived from, if any.
	Parent *View
}

// NewView creates a view from the region's matrices.
func NewView(name string, rv *scene.RegionView) *View {
	v := &View{Name: name, ViewMatrix: Identity(), WinMatrix: Identity()}
	if rv != nil {
		v.ViewMatrix = rv.ViewMatrix
		v.WinMatrix = rv.WinMatrix
	}
	return v
}

// NewZOffsetView derives a view from parent whose depth is pulled towards the
// camera by offset, so that wires drawn with it win the depth test against
// coincident surfaces drawn with parent.
func NewZOffsetView(name string, parent *View, rv *scene.RegionView, offset float32) *View {
	win := parent.WinMatrix
	viewDist := float32(0)
	if rv != nil {
		viewDist = rv.Dist
		// The view distance is meaningless for an orthographic camera, use
		// the projection scale instead.
		if rv.Persp == scene.PerspCamera && !rv.IsPersp {
			viewDist = 1 / math32.Max(math32.Abs(win[m00]), math32.Abs(win[m11]))
		}
	}
	win[m23] -= PolygonOffset(win, viewDist, offset)
	return &View{
		Name:       name,
		ViewMatrix: parent.ViewMatrix,
		WinMatrix:  win,
		Parent:     parent,
	}
}

// PolygonOffset returns the amount subtracted from the projection's z
// translation to offset geometry by dist.
func PolygonOffset(win f32.Mat4, viewDist, dist float32) float32 {
	dist *= 0.5
	if win[m33] > 0.5 {
		return 0.00001 * dist * viewDist
	}
	// Reduces the Z value by 0.25% per unit of dist.
	return win[m23] * -0.0025 * dist
}
