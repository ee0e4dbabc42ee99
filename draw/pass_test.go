// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"testing"

	"github.com/gogpu/overlay/scene"
)

func TestPassStateAddRemove(t *testing.T) {
	p := NewPass("test", StateWriteDepth|StateDepthGreaterEqual|StateStencilNotEqual)

	p.StateRemove(StateDepthGreaterEqual | StateStencilNotEqual)
	p.StateAdd(StateWriteColor | StateDepthLessEqual | StateStencilAlways)

	want := StateWriteDepth | StateWriteColor | StateDepthLessEqual | StateStencilAlways
	if got := p.State(); got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestShadingGroupUniforms(t *testing.T) {
	p := NewPass("test", StateWriteColor)
	g := p.NewShadingGroup(&Shader{Name: "sh"})

	block := &scene.Theme{}
	g.UniformBlock("globalsBlock", block)
	g.UniformFloat("wireStepParam", 0.5)
	g.UniformBool("useColoring", true)
	g.UniformFloat("wireStepParam", 1.0)

	if n := len(g.Uniforms()); n != 3 {
		t.Fatalf("len(Uniforms()) = %d, want 3", n)
	}

	u, ok := g.Uniform("wireStepParam")
	if !ok {
		t.Fatal("wireStepParam not set")
	}
	if u.Kind != UniformFloat || u.Float != 1.0 {
		t.Errorf("wireStepParam = %+v, want Float 1.0", u)
	}

	u, ok = g.Uniform("globalsBlock")
	if !ok || u.Block != block {
		t.Errorf("globalsBlock = %+v, want the theme block", u)
	}

	if _, ok := g.Uniform("missing"); ok {
		t.Error("missing uniform should not be found")
	}
}

func TestShadingGroupCalls(t *testing.T) {
	p := NewPass("test", StateWriteColor)
	g := p.NewShadingGroup(&Shader{Name: "sh"})
	ob := &scene.Object{ID: "cube"}

	if !p.IsEmpty() {
		t.Error("new pass should be empty")
	}

	g.Call(nil, ob)
	if !p.IsEmpty() {
		t.Error("nil batch should not record a call")
	}

	g.Call(&scene.Batch{Name: "wire"}, ob)
	g.CallSculpt(ob, SculptOptions{Wire: true})

	if got := p.CallCount(); got != 2 {
		t.Fatalf("CallCount() = %d, want 2", got)
	}
	calls := g.Calls()
	if calls[0].Batch == nil || calls[0].Sculpt != nil {
		t.Errorf("first call = %+v, want a batch call", calls[0])
	}
	if calls[1].Sculpt == nil || !calls[1].Sculpt.Wire {
		t.Errorf("second call = %+v, want a wire sculpt call", calls[1])
	}
	if g.Pass() != p {
		t.Error("group should reference its pass")
	}
}

func TestPassGroupsOrder(t *testing.T) {
	p := NewPass("test", 0)
	a := p.NewShadingGroup(&Shader{Name: "a"})
	b := p.NewShadingGroup(&Shader{Name: "b"})
	b.SetStencilMask(0x0F)

	groups := p.Groups()
	if len(groups) != 2 || groups[0] != a || groups[1] != b {
		t.Fatal("groups should be kept in creation order")
	}
	if b.StencilMask() != 0x0F {
		t.Errorf("StencilMask() = %#x, want 0x0F", b.StencilMask())
	}
}

func TestPurpose(t *testing.T) {
	tests := []struct {
		p           Purpose
		fbo, sel    bool
		depth, img  bool
	}{
		{PurposeViewport, true, false, false, false},
		{PurposeImageRender, true, false, false, true},
		{PurposeSelect, false, true, false, false},
		{PurposeDepth, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			if tt.p.IsFramebuffer() != tt.fbo || tt.p.IsSelect() != tt.sel ||
				tt.p.IsDepth() != tt.depth || tt.p.IsImageRender() != tt.img {
				t.Errorf("%v predicates mismatch", tt.p)
			}
		})
	}
}

func TestPassReset(t *testing.T) {
	p := NewPass("test", StateWriteColor)
	g := p.NewShadingGroup(&Shader{Name: "a"})
	g.UniformFloat("wireStepParam", 2)
	g.Call(&scene.Batch{Name: "wire"}, nil)

	p.Reset(StateWriteDepth)
	if p.State() != StateWriteDepth {
		t.Errorf("State() = %v, want WriteDepth", p.State())
	}
	if !p.IsEmpty() {
		t.Error("Reset should drop calls")
	}
	if len(p.Groups()) != 1 || p.Groups()[0] != g {
		t.Error("Reset should keep groups")
	}
	if _, ok := g.Uniform("wireStepParam"); !ok {
		t.Error("Reset should keep uniforms")
	}

	sh := &Shader{Name: "b"}
	g.SetShader(sh)
	if g.Shader() != sh {
		t.Error("SetShader did not replace the shader")
	}
}
