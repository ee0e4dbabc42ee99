// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/overlay/scene"
)

// ExtraCall is one instance of extra geometry drawn with a flat colour.
type ExtraCall struct {
	Geom   *scene.Batch
	Matrix f32.Mat4
	Color  f32.Vec4
	Object *scene.Object
}

// ExtraCallBuffers collect loose wires and points drawn by the extra
// category.
type ExtraCallBuffers struct {
	Wires       []ExtraCall
	LoosePoints []ExtraCall
}

// Wire adds loose wire geometry.
func (cb *ExtraCallBuffers) Wire(geom *scene.Batch, ob *scene.Object, color f32.Vec4) {
	cb.Wires = append(cb.Wires, ExtraCall{Geom: geom, Matrix: ob.Matrix, Color: color, Object: ob})
}

// LoosePoint adds loose point geometry.
func (cb *ExtraCallBuffers) LoosePoint(geom *scene.Batch, ob *scene.Object, color f32.Vec4) {
	cb.LoosePoints = append(cb.LoosePoints, ExtraCall{Geom: geom, Matrix: ob.Matrix, Color: color, Object: ob})
}

// Len returns the number of buffered calls.
func (cb *ExtraCallBuffers) Len() int { return len(cb.Wires) + len(cb.LoosePoints) }

func (cb *ExtraCallBuffers) reset() {
	cb.Wires = cb.Wires[:0]
	cb.LoosePoints = cb.LoosePoints[:0]
}

// Extras holds the extra call buffers of a frame. In-front objects use
// their own buffers so they are drawn into the in-front framebuffer.
type Extras struct {
	Normal  ExtraCallBuffers
	InFront ExtraCallBuffers
}

// Buffer returns the buffers ob's extras go into.
func (e *Extras) Buffer(ob *scene.Object) *ExtraCallBuffers {
	if ob.Draw.Has(scene.DrawInFront) {
		return &e.InFront
	}
	return &e.Normal
}

// Reset empties both buffers, keeping their storage.
func (e *Extras) Reset() {
	e.Normal.reset()
	e.InFront.reset()
}

// WireColor returns the theme colour ob's wires are drawn with.
func WireColor(ctx *scene.Context, theme *scene.Theme, ob *scene.Object) f32.Vec4 {
	active := ctx != nil && ctx.IsActive(ob)
	selected := ob.Base.Has(scene.BaseSelected)
	transform := ctx != nil && ctx.TransformInProgress && selected

	switch {
	case ob.Base.Has(scene.BaseFromSet):
		return theme.Dupli
	case ob.Base.Has(scene.BaseFromDupli):
		// Only selected instances are highlighted, whatever their parent.
		switch {
		case ob.InEditMode():
			return theme.Dupli
		case transform:
			return theme.Transform
		case selected:
			return theme.DupliSelect
		}
		return theme.Dupli
	case ob.InEditMode():
		return theme.WireEdit
	case transform:
		return theme.Transform
	case selected && active:
		return theme.Active
	case selected:
		return theme.Select
	}

	switch ob.Kind {
	case scene.KindLight:
		return theme.Light
	case scene.KindSpeaker:
		return theme.Speaker
	case scene.KindCamera:
		return theme.Camera
	case scene.KindEmpty, scene.KindLightProbe:
		return theme.Empty
	}
	return theme.Wire
}
