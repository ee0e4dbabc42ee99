// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/scene"
)

// objectFlags are the per-object decisions of CachePopulate. They are
// recomputed for every object and never stored.
type objectFlags struct {
	isSelect       bool
	renderable     bool
	inPoseMode     bool
	inEditMode     bool
	inParticleEdit bool
	inPaintMode    bool
	inSculptMode   bool
	hasSurface     bool

	drawSurface       bool
	drawFacing        bool
	drawWires         bool
	drawOutlines      bool
	drawBoneSelection bool
	drawExtras        bool
	drawMotionPaths   bool
}

func computeObjectFlags(f *frame.Frame, ob *scene.Object) objectFlags {
	ctx := f.Ctx
	pd := f.Private

	var fl objectFlags
	fl.isSelect = f.IsSelect()
	fl.renderable = isRenderable(f, ob)
	fl.inPoseMode = ob.Kind == scene.KindArmature && isArmaturePoseMode(ctx, ob)
	fl.inEditMode = ob.InEditMode()
	fl.inParticleEdit = ob.Mode == scene.ModeParticleEdit
	fl.inPaintMode = ob == ctx.ActiveObject && ctx.ObjectMode.Any(scene.ModeAllPaint)
	fl.inSculptMode = ob == ctx.ActiveObject && ob.Sculpt != nil
	fl.hasSurface = hasSurface(ob.Kind)

	fl.drawSurface = !(ob.Display < scene.DisplayWire ||
		(!fl.renderable && ob.Display != scene.DisplayWire))
	fl.drawFacing = fl.drawSurface && pd.Overlay.Flag.Has(scene.OverlayFaceOrientation)
	fl.drawWires = fl.drawSurface && fl.hasSurface
	fl.drawOutlines = !fl.inEditMode && !fl.inPaintMode && fl.renderable &&
		pd.ViewFlag&scene.ViewSelectOutline != 0 &&
		(ob.Base.Has(scene.BaseSelected) || (fl.isSelect && ob.Kind == scene.KindLightProbe))
	fl.drawBoneSelection = ob.Kind == scene.KindMesh && pd.DoPoseFadeGeom && !fl.isSelect
	// The camera looked through keeps its extras so it can be selected.
	fl.drawExtras = !pd.Overlay.Flag.Has(scene.OverlayHideObjectExtras) || ctx.LooksThrough(ob)
	fl.drawMotionPaths = !pd.Overlay.Flag.Has(scene.OverlayHideMotionPaths)
	return fl
}

// isRenderable reports whether ob's surface is drawn. Edited meshes are not
// while the edit overlay occludes wires or shows weights.
func isRenderable(f *frame.Frame, ob *scene.Object) bool {
	if ob.Kind != scene.KindMesh {
		return true
	}
	if ob != f.Ctx.EditObject && !ob.InEditMode() {
		return true
	}
	mask := scene.OverlayEditOccludeWire | scene.OverlayEditWeight
	return f.View3D().Overlay.EditFlag&mask == 0
}

// isArmaturePoseMode reports whether the armature ob is drawn by the pose
// mode categories: it is posed, or it deforms the weight-painted mesh.
func isArmaturePoseMode(ctx *scene.Context, ob *scene.Object) bool {
	active := ctx.ActiveObject
	if (ob == active || ob.Mode.Has(scene.ModePose)) && ctx.ObjectMode.Has(scene.ModePose) {
		return true
	}
	return active != nil && ctx.ObjectMode.Has(scene.ModeWeightPaint) && ob == ctx.PoseObject
}

func hasSurface(k scene.Kind) bool {
	switch k {
	case scene.KindMesh, scene.KindCurve, scene.KindSurface, scene.KindMetaBall, scene.KindFont:
		return true
	}
	return false
}
