// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"fmt"

	"github.com/gogpu/overlay/scene"
)

// ContextMode is the interaction mode a frame is drawn in. It is resolved
// once per frame and selects the mode-specific routines of every stage.
type ContextMode uint8

const (
	ContextEditMesh ContextMode = iota
	ContextEditCurve
	ContextEditSurface
	ContextEditText
	ContextEditArmature
	ContextEditMetaball
	ContextEditLattice
	ContextParticle
	ContextPose
	ContextPaintWeight
	ContextPaintVertex
	ContextPaintTexture
	ContextSculpt
	ContextObject
	ContextPaintGPencil
	ContextEditGPencil
	ContextSculptGPencil
	ContextWeightGPencil

	// NumContextModes is the number of valid context modes.
	NumContextModes
)

var contextModeNames = [...]string{
	ContextEditMesh:      "EditMesh",
	ContextEditCurve:     "EditCurve",
	ContextEditSurface:   "EditSurface",
	ContextEditText:      "EditText",
	ContextEditArmature:  "EditArmature",
	ContextEditMetaball:  "EditMetaball",
	ContextEditLattice:   "EditLattice",
	ContextParticle:      "Particle",
	ContextPose:          "Pose",
	ContextPaintWeight:   "PaintWeight",
	ContextPaintVertex:   "PaintVertex",
	ContextPaintTexture:  "PaintTexture",
	ContextSculpt:        "Sculpt",
	ContextObject:        "Object",
	ContextPaintGPencil:  "PaintGPencil",
	ContextEditGPencil:   "EditGPencil",
	ContextSculptGPencil: "SculptGPencil",
	ContextWeightGPencil: "WeightGPencil",
}

// String returns the name of the mode.
func (m ContextMode) String() string {
	if m < NumContextModes {
		return contextModeNames[m]
	}
	return fmt.Sprintf("ContextMode(%d)", int(m))
}

// ParseContextMode returns the mode with the given name.
func ParseContextMode(s string) (ContextMode, error) {
	for m, name := range contextModeNames {
		if name == s {
			return ContextMode(m), nil
		}
	}
	return 0, fmt.Errorf("frame: unknown context mode %q", s)
}

// ResolveContextMode derives the context mode from the edit object, the
// active object and the object mode.
//
// An edit object selects an edit mode by its kind. Otherwise, with an active
// object, the first mode bit set in the order pose, sculpt, weight paint,
// vertex paint, texture paint, particle edit, then the grease pencil modes
// wins. Everything else is object mode.
func ResolveContextMode(edit, active *scene.Object, mode scene.ObjectMode) ContextMode {
	if edit != nil {
		switch edit.Kind {
		case scene.KindMesh:
			return ContextEditMesh
		case scene.KindCurve:
			return ContextEditCurve
		case scene.KindSurface:
			return ContextEditSurface
		case scene.KindFont:
			return ContextEditText
		case scene.KindArmature:
			return ContextEditArmature
		case scene.KindMetaBall:
			return ContextEditMetaball
		case scene.KindLattice:
			return ContextEditLattice
		}
		return ContextObject
	}
	if active == nil {
		return ContextObject
	}
	for _, m := range activeModeOrder {
		if mode.Has(m.bit) {
			return m.mode
		}
	}
	return ContextObject
}

var activeModeOrder = [...]struct {
	bit  scene.ObjectMode
	mode ContextMode
}{
	{scene.ModePose, ContextPose},
	{scene.ModeSculpt, ContextSculpt},
	{scene.ModeWeightPaint, ContextPaintWeight},
	{scene.ModeVertexPaint, ContextPaintVertex},
	{scene.ModeTexturePaint, ContextPaintTexture},
	{scene.ModeParticleEdit, ContextParticle},
	{scene.ModePaintGPencil, ContextPaintGPencil},
	{scene.ModeEditGPencil, ContextEditGPencil},
	{scene.ModeSculptGPencil, ContextSculptGPencil},
	{scene.ModeWeightGPencil, ContextWeightGPencil},
}
