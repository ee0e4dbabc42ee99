// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"fmt"

	"github.com/gogpu/overlay/frame"
)

// modeRoutines are the mode-specific categories of one context mode.
// The same entry drives Init, CacheInit and Draw.
type modeRoutines struct {
	init      []frame.CategoryID
	cacheInit []frame.CategoryID
	draw      []frame.CategoryID
	// finalColor modes draw on top of the resolved overlay colour:
	// antialiasing ends before their draws.
	finalColor bool
}

var modeTable = [frame.NumContextModes]modeRoutines{
	frame.ContextEditMesh: {
		init:      []frame.CategoryID{frame.CategoryEditMesh},
		cacheInit: []frame.CategoryID{frame.CategoryEditMesh},
		draw:      []frame.CategoryID{frame.CategoryEditMesh},
	},
	frame.ContextEditCurve: {
		cacheInit: []frame.CategoryID{frame.CategoryEditCurve},
		draw:      []frame.CategoryID{frame.CategoryEditCurve},
	},
	frame.ContextEditSurface: {
		cacheInit: []frame.CategoryID{frame.CategoryEditCurve},
		draw:      []frame.CategoryID{frame.CategoryEditCurve},
	},
	// Text selection is drawn inverting the colour beneath.
	frame.ContextEditText: {
		cacheInit:  []frame.CategoryID{frame.CategoryEditText},
		draw:       []frame.CategoryID{frame.CategoryEditText},
		finalColor: true,
	},
	frame.ContextEditArmature: {},
	frame.ContextEditMetaball: {},
	frame.ContextEditLattice: {
		cacheInit: []frame.CategoryID{frame.CategoryEditLattice},
		draw:      []frame.CategoryID{frame.CategoryEditLattice},
	},
	frame.ContextParticle: {
		cacheInit: []frame.CategoryID{frame.CategoryEditParticle},
		draw:      []frame.CategoryID{frame.CategoryEditParticle},
	},
	// Paint overlays use a multiply blend mode.
	frame.ContextPose: {
		cacheInit:  []frame.CategoryID{frame.CategoryPaint},
		draw:       []frame.CategoryID{frame.CategoryPaint, frame.CategoryPose},
		finalColor: true,
	},
	frame.ContextPaintWeight: {
		cacheInit:  []frame.CategoryID{frame.CategoryPaint},
		draw:       []frame.CategoryID{frame.CategoryPaint},
		finalColor: true,
	},
	frame.ContextPaintVertex: {
		cacheInit:  []frame.CategoryID{frame.CategoryPaint},
		draw:       []frame.CategoryID{frame.CategoryPaint},
		finalColor: true,
	},
	frame.ContextPaintTexture: {
		cacheInit:  []frame.CategoryID{frame.CategoryPaint},
		draw:       []frame.CategoryID{frame.CategoryPaint},
		finalColor: true,
	},
	frame.ContextSculpt: {
		cacheInit: []frame.CategoryID{frame.CategorySculpt},
		draw:      []frame.CategoryID{frame.CategorySculpt},
	},
	frame.ContextObject:        {},
	frame.ContextPaintGPencil:  {},
	frame.ContextEditGPencil:   {},
	frame.ContextSculptGPencil: {},
	frame.ContextWeightGPencil: {},
}

// routinesFor returns the routines of m. An invalid mode is a programming
// error and panics.
func routinesFor(m frame.ContextMode) *modeRoutines {
	if m >= frame.NumContextModes {
		panic(fmt.Sprintf("overlay: invalid context mode %d", int(m)))
	}
	return &modeTable[m]
}

// Category orders of the mode independent stages.
var (
	initOrder = []frame.CategoryID{
		frame.CategoryFacing,
		frame.CategoryGrid,
		frame.CategoryImage,
		frame.CategoryOutline,
		frame.CategoryWireframe,
	}
	cacheInitOrder = []frame.CategoryID{
		frame.CategoryAntialiasing,
		frame.CategoryArmature,
		frame.CategoryExtra,
		frame.CategoryFacing,
		frame.CategoryGrid,
		frame.CategoryImage,
		frame.CategoryMetaball,
		frame.CategoryMotionPath,
		frame.CategoryOutline,
		frame.CategoryParticle,
		frame.CategoryWireframe,
	}
	finishOrder = []frame.CategoryID{
		frame.CategoryArmature,
		frame.CategoryImage,
	}
	// drawOrder is drawn with the default view, back to front.
	drawOrder = []frame.CategoryID{
		frame.CategoryImage,
		frame.CategoryFacing,
		frame.CategoryWireframe,
		frame.CategoryArmature,
		frame.CategoryParticle,
		frame.CategoryMetaball,
		frame.CategoryExtra,
	}
	// ambientDrawOrder is drawn without a view override.
	ambientDrawOrder = []frame.CategoryID{
		frame.CategoryGrid,
		frame.CategoryOutline,
	}
	inFrontDrawOrder = []frame.CategoryID{
		frame.CategoryWireframe,
		frame.CategoryArmature,
		frame.CategoryExtra,
		frame.CategoryImage,
	}
)
