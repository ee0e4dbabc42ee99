// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"testing"

	"github.com/gogpu/overlay/scene"
)

func TestResolveContextMode(t *testing.T) {
	mesh := &scene.Object{Kind: scene.KindMesh}
	tests := []struct {
		name   string
		edit   *scene.Object
		active *scene.Object
		mode   scene.ObjectMode
		want   ContextMode
	}{
		{"nothing", nil, nil, scene.ModeObject, ContextObject},
		{"edit mesh", mesh, mesh, scene.ModeEdit, ContextEditMesh},
		{"edit curve", &scene.Object{Kind: scene.KindCurve}, nil, scene.ModeEdit, ContextEditCurve},
		{"edit surface", &scene.Object{Kind: scene.KindSurface}, nil, scene.ModeEdit, ContextEditSurface},
		{"edit text", &scene.Object{Kind: scene.KindFont}, nil, scene.ModeEdit, ContextEditText},
		{"edit armature", &scene.Object{Kind: scene.KindArmature}, nil, scene.ModeEdit, ContextEditArmature},
		{"edit metaball", &scene.Object{Kind: scene.KindMetaBall}, nil, scene.ModeEdit, ContextEditMetaball},
		{"edit lattice", &scene.Object{Kind: scene.KindLattice}, nil, scene.ModeEdit, ContextEditLattice},
		{"edit camera", &scene.Object{Kind: scene.KindCamera}, nil, scene.ModeEdit, ContextObject},
		{"edit wins over paint", mesh, mesh, scene.ModeWeightPaint, ContextEditMesh},
		{"mode without active", nil, nil, scene.ModeSculpt, ContextObject},
		{"pose", nil, mesh, scene.ModePose, ContextPose},
		{"pose before weight", nil, mesh, scene.ModePose | scene.ModeWeightPaint, ContextPose},
		{"sculpt", nil, mesh, scene.ModeSculpt, ContextSculpt},
		{"weight", nil, mesh, scene.ModeWeightPaint, ContextPaintWeight},
		{"vertex", nil, mesh, scene.ModeVertexPaint, ContextPaintVertex},
		{"texture", nil, mesh, scene.ModeTexturePaint, ContextPaintTexture},
		{"particle", nil, mesh, scene.ModeParticleEdit, ContextParticle},
		{"gpencil paint", nil, mesh, scene.ModePaintGPencil, ContextPaintGPencil},
		{"gpencil edit", nil, mesh, scene.ModeEditGPencil, ContextEditGPencil},
		{"gpencil sculpt", nil, mesh, scene.ModeSculptGPencil, ContextSculptGPencil},
		{"gpencil weight", nil, mesh, scene.ModeWeightGPencil, ContextWeightGPencil},
		{"object", nil, mesh, scene.ModeObject, ContextObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveContextMode(tt.edit, tt.active, tt.mode); got != tt.want {
				t.Errorf("ResolveContextMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContextModeNames(t *testing.T) {
	for m := ContextMode(0); m < NumContextModes; m++ {
		got, err := ParseContextMode(m.String())
		if err != nil {
			t.Fatalf("ParseContextMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseContextMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseContextMode("Bogus"); err == nil {
		t.Error("ParseContextMode(Bogus) should fail")
	}
	if got := ContextMode(200).String(); got != "ContextMode(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCategoryIDString(t *testing.T) {
	for c := CategoryID(0); c < NumCategories; c++ {
		if categoryNames[c] == "" {
			t.Errorf("category %d has no name", int(c))
		}
	}
	if got := CategoryWireframe.String(); got != "Wireframe" {
		t.Errorf("String() = %q, want Wireframe", got)
	}
}

func TestPrivateReset(t *testing.T) {
	p := &Private{Mode: ContextSculpt, XRayEnabled: true, WireStepParam: 1, AASample: 7}
	p.Reset()
	if p.Mode != ContextEditMesh || p.XRayEnabled || p.WireStepParam != 0 {
		t.Errorf("Reset left per-frame state: %+v", p)
	}
	if p.AASample != 7 {
		t.Errorf("AASample = %d, want 7", p.AASample)
	}
}

func TestFrameDefaults(t *testing.T) {
	f := &Frame{}
	if f.Theme() == nil || f.View3D() == nil {
		t.Fatal("frame without context should fall back to defaults")
	}
	if f.Region() != nil {
		t.Error("Region() should be nil without context")
	}

	th := &scene.Theme{}
	f.Ctx = &scene.Context{Theme: th}
	if f.Theme() != th {
		t.Error("Theme() should return the context theme")
	}
}
