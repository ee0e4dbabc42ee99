// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// ShadingType is the viewport shading mode. Values are ordered from the
// cheapest to the most complete shading.
type ShadingType uint8

const (
	ShadingWire     ShadingType = 2
	ShadingSolid    ShadingType = 3
	ShadingMaterial ShadingType = 4
	ShadingRendered ShadingType = 6
)

// String returns the name of the shading type.
func (s ShadingType) String() string {
	switch s {
	case ShadingWire:
		return "Wire"
	case ShadingSolid:
		return "Solid"
	case ShadingMaterial:
		return "Material"
	case ShadingRendered:
		return "Rendered"
	default:
		return fmt.Sprintf("ShadingType(%d)", int(s))
	}
}

// WireColorType selects how wireframes are coloured in wire shading.
type WireColorType uint8

const (
	WireColorTheme WireColorType = iota
	WireColorObject
	WireColorRandom
)

// ShadingFlags are toggles of the viewport shading.
type ShadingFlags uint16

const (
	// ShadingXRay enables x-ray for solid and material shading.
	ShadingXRay ShadingFlags = 1 << iota
	// ShadingXRayWireframe enables x-ray for wire shading.
	ShadingXRayWireframe
)

// Shading is the shading configuration of a 3D view.
type Shading struct {
	Type          ShadingType
	WireColor     WireColorType
	Flag          ShadingFlags
	XRayAlpha     float32
	XRayAlphaWire float32
}

// XRayEnabled reports whether x-ray is switched on for the current shading
// type.
func (s Shading) XRayEnabled() bool {
	if s.Type == ShadingWire {
		return s.Flag&ShadingXRayWireframe != 0
	}
	return s.Flag&ShadingXRay != 0
}

// XRayOpacity returns the x-ray opacity for the current shading type.
func (s Shading) XRayOpacity() float32 {
	if s.Type == ShadingWire {
		return s.XRayAlphaWire
	}
	return s.XRayAlpha
}

// XRayActive reports whether x-ray is enabled and actually see-through.
func (s Shading) XRayActive() bool {
	return s.XRayEnabled() && s.XRayOpacity() < 1.0
}

// OverlayFlags toggle overlay features of a 3D view.
type OverlayFlags uint32

const (
	OverlayWireframes OverlayFlags = 1 << iota
	OverlayFaceOrientation
	OverlayHideObjectExtras
	OverlayHideMotionPaths
	OverlayBoneSelect
)

// Has reports whether all bits of f are set.
func (o OverlayFlags) Has(f OverlayFlags) bool { return o&f == f }

// OverlayEditFlags toggle edit-mode overlay features.
type OverlayEditFlags uint32

const (
	OverlayEditOccludeWire OverlayEditFlags = 1 << iota
	OverlayEditWeight
)

// Overlay is the overlay configuration of a 3D view.
type Overlay struct {
	Flag     OverlayFlags
	EditFlag OverlayEditFlags
	// WireframeThreshold is the user wireframe threshold in [0, 1].
	WireframeThreshold float32
}

// ViewFlags are flags of a 3D view.
type ViewFlags uint32

const (
	// ViewSelectOutline outlines selected objects.
	ViewSelectOutline ViewFlags = 1 << iota
)

// ViewFlags2 are secondary flags of a 3D view.
type ViewFlags2 uint32

const (
	// ViewHideOverlays hides every overlay of the view.
	ViewHideOverlays ViewFlags2 = 1 << iota
)

// View3D is the configuration of the 3D view being drawn.
type View3D struct {
	Overlay Overlay
	Shading Shading
	Flag    ViewFlags
	Flag2   ViewFlags2
	// CameraID is the ID of the scene camera of the view.
	CameraID string
}

// Persp is the projection mode of a region view.
type Persp uint8

const (
	PerspOrtho Persp = iota
	PerspPersp
	// PerspCamera looks through the scene camera.
	PerspCamera
)

// RegionView is the projection state of the region being drawn.
type RegionView struct {
	Persp Persp
	// IsPersp reports whether the final projection is perspective. A camera
	// view may still be orthographic.
	IsPersp bool
	// Dist is the distance of the view from its pivot.
	Dist     float32
	Clipping bool

	ViewMatrix f32.Mat4
	WinMatrix  f32.Mat4
}
