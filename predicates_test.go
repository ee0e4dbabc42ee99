// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"testing"

	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/scene"
)

func TestIsRenderable(t *testing.T) {
	editMesh := &scene.Object{Kind: scene.KindMesh, Mesh: &scene.Mesh{Edit: &scene.EditMesh{}}}
	plainMesh := &scene.Object{Kind: scene.KindMesh, Mesh: &scene.Mesh{}}
	curve := &scene.Object{Kind: scene.KindCurve, EditMode: true}

	tests := []struct {
		name     string
		ob       *scene.Object
		edit     *scene.Object
		editFlag scene.OverlayEditFlags
		want     bool
	}{
		{"plain mesh", plainMesh, nil, scene.OverlayEditOccludeWire, true},
		{"edit mesh", editMesh, editMesh, 0, true},
		{"edit mesh occluding wires", editMesh, editMesh, scene.OverlayEditOccludeWire, false},
		{"edit mesh showing weights", editMesh, nil, scene.OverlayEditWeight, false},
		{"edit object without edit data", plainMesh, plainMesh, scene.OverlayEditWeight, false},
		{"edit curve", curve, curve, scene.OverlayEditOccludeWire, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &frame.Frame{Ctx: &scene.Context{
				EditObject: tt.edit,
				View3D:     &scene.View3D{Overlay: scene.Overlay{EditFlag: tt.editFlag}},
			}}
			if got := isRenderable(f, tt.ob); got != tt.want {
				t.Errorf("isRenderable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsArmaturePoseMode(t *testing.T) {
	arm := &scene.Object{Kind: scene.KindArmature}
	posed := &scene.Object{Kind: scene.KindArmature, Mode: scene.ModePose}
	mesh := &scene.Object{Kind: scene.KindMesh}

	tests := []struct {
		name string
		ctx  *scene.Context
		ob   *scene.Object
		want bool
	}{
		{"active in pose mode", &scene.Context{ActiveObject: arm, ObjectMode: scene.ModePose}, arm, true},
		{"posed object in pose mode", &scene.Context{ActiveObject: mesh, ObjectMode: scene.ModePose}, posed, true},
		{"posed object outside pose mode", &scene.Context{ActiveObject: posed}, posed, false},
		{"inactive armature", &scene.Context{ActiveObject: mesh, ObjectMode: scene.ModePose}, arm, false},
		{"weight paint pose object", &scene.Context{ActiveObject: mesh, ObjectMode: scene.ModeWeightPaint, PoseObject: arm}, arm, true},
		{"weight paint other armature", &scene.Context{ActiveObject: mesh, ObjectMode: scene.ModeWeightPaint, PoseObject: posed}, arm, false},
		{"weight paint without active", &scene.Context{ObjectMode: scene.ModeWeightPaint, PoseObject: arm}, arm, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isArmaturePoseMode(tt.ctx, tt.ob); got != tt.want {
				t.Errorf("isArmaturePoseMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObjectFlagsDrawSurface(t *testing.T) {
	editMesh := &scene.Object{Kind: scene.KindMesh, Mesh: &scene.Mesh{Edit: &scene.EditMesh{}}}

	tests := []struct {
		name    string
		display scene.DisplayType
		occlude bool
		want    bool
	}{
		{"bounds", scene.DisplayBounds, false, false},
		{"wire", scene.DisplayWire, false, true},
		{"solid", scene.DisplaySolid, false, true},
		{"solid not renderable", scene.DisplaySolid, true, false},
		{"wire not renderable", scene.DisplayWire, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ob := *editMesh
			ob.Display = tt.display
			v3d := &scene.View3D{}
			if tt.occlude {
				v3d.Overlay.EditFlag = scene.OverlayEditOccludeWire
			}
			f := &frame.Frame{
				Ctx:     &scene.Context{View3D: v3d},
				Private: &frame.Private{},
			}
			fl := computeObjectFlags(f, &ob)
			if fl.drawSurface != tt.want {
				t.Errorf("drawSurface = %v, want %v", fl.drawSurface, tt.want)
			}
			if fl.drawWires != tt.want {
				t.Errorf("drawWires = %v, want %v", fl.drawWires, tt.want)
			}
		})
	}
}
