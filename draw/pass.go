// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"fmt"

	"github.com/gogpu/overlay/scene"
)

// Shader is a named WGSL program. Shaders are compared by identity.
type Shader struct {
	Name   string
	Source string
}

// UniformKind is the type of a uniform value.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota
	UniformBool
	UniformBlock
)

// String returns the string representation of UniformKind.
func (k UniformKind) String() string {
	switch k {
	case UniformFloat:
		return "Float"
	case UniformBool:
		return "Bool"
	case UniformBlock:
		return "Block"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Uniform is one shader parameter of a shading group. Values are copied at
// the time they are set.
type Uniform struct {
	Name  string
	Kind  UniformKind
	Float float32
	Bool  bool
	Block any
}

// SculptOptions parameterize a draw call that renders a sculpt session
// directly from its PBVH.
type SculptOptions struct {
	Wire  bool
	Masks bool
	Fsets bool
}

// Call is a draw call recorded into a shading group.
// Exactly one of Batch and Sculpt is set.
type Call struct {
	Batch  *scene.Batch
	Sculpt *SculptOptions
	Object *scene.Object
}

// ShadingGroup binds a shader and its uniforms to a list of draw calls.
// A shading group always belongs to exactly one pass.
type ShadingGroup struct {
	shader      *Shader
	pass        *Pass
	uniforms    []Uniform
	stencilMask uint8
	calls       []Call
}

// Shader returns the shader of the group.
func (g *ShadingGroup) Shader() *Shader { return g.shader }

// SetShader replaces the shader of the group.
func (g *ShadingGroup) SetShader(sh *Shader) { g.shader = sh }

// Pass returns the pass the group belongs to.
func (g *ShadingGroup) Pass() *Pass { return g.pass }

// UniformFloat sets a float uniform.
func (g *ShadingGroup) UniformFloat(name string, v float32) {
	g.setUniform(Uniform{Name: name, Kind: UniformFloat, Float: v})
}

// UniformBool sets a boolean uniform.
func (g *ShadingGroup) UniformBool(name string, v bool) {
	g.setUniform(Uniform{Name: name, Kind: UniformBool, Bool: v})
}

// UniformBlock binds a persistent uniform block. The block is referenced,
// not copied.
func (g *ShadingGroup) UniformBlock(name string, block any) {
	g.setUniform(Uniform{Name: name, Kind: UniformBlock, Block: block})
}

func (g *ShadingGroup) setUniform(u Uniform) {
	for i := range g.uniforms {
		if g.uniforms[i].Name == u.Name {
			g.uniforms[i] = u
			return
		}
	}
	g.uniforms = append(g.uniforms, u)
}

// Uniform returns the uniform with the given name.
func (g *ShadingGroup) Uniform(name string) (Uniform, bool) {
	for _, u := range g.uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}

// Uniforms returns the uniforms in the order they were first set.
func (g *ShadingGroup) Uniforms() []Uniform { return g.uniforms }

// SetStencilMask sets the stencil reference of the group, compared against
// and written by stencil tests of its pass.
func (g *ShadingGroup) SetStencilMask(mask uint8) { g.stencilMask = mask }

// StencilMask returns the stencil mask of the group.
func (g *ShadingGroup) StencilMask() uint8 { return g.stencilMask }

// Call records a draw of geom with the transform of ob.
// A nil geom is ignored.
func (g *ShadingGroup) Call(geom *scene.Batch, ob *scene.Object) {
	if geom == nil {
		return
	}
	g.calls = append(g.calls, Call{Batch: geom, Object: ob})
}

// CallSculpt records a draw of ob's sculpt PBVH.
func (g *ShadingGroup) CallSculpt(ob *scene.Object, opts SculptOptions) {
	g.calls = append(g.calls, Call{Sculpt: &opts, Object: ob})
}

// Calls returns the recorded draw calls.
func (g *ShadingGroup) Calls() []Call { return g.calls }

// Pass is an ordered list of shading groups drawn with one fixed-function
// state. The state may be changed between submissions.
type Pass struct {
	name   string
	state  State
	groups []*ShadingGroup
}

// NewPass creates an empty pass.
func NewPass(name string, state State) *Pass {
	return &Pass{name: name, state: state}
}

// Name returns the debug name of the pass.
func (p *Pass) Name() string { return p.name }

// State returns the current state of the pass.
func (p *Pass) State() State { return p.state }

// StateAdd sets the bits of s on the pass.
func (p *Pass) StateAdd(s State) { p.state |= s }

// StateRemove clears the bits of s on the pass.
func (p *Pass) StateRemove(s State) { p.state &^= s }

// NewShadingGroup creates a shading group at the end of the pass.
func (p *Pass) NewShadingGroup(sh *Shader) *ShadingGroup {
	g := &ShadingGroup{shader: sh, pass: p}
	p.groups = append(p.groups, g)
	return g
}

// Reset sets the state of the pass and drops the calls of its groups.
// Groups and their uniforms are kept, so references to them stay valid
// across frames.
func (p *Pass) Reset(state State) {
	p.state = state
	for _, g := range p.groups {
		clear(g.calls)
		g.calls = g.calls[:0]
	}
}

// Groups returns the shading groups in draw order.
func (p *Pass) Groups() []*ShadingGroup { return p.groups }

// CallCount returns the number of draw calls across all groups.
func (p *Pass) CallCount() int {
	n := 0
	for _, g := range p.groups {
		n += len(g.calls)
	}
	return n
}

// IsEmpty reports whether the pass has no draw call.
func (p *Pass) IsEmpty() bool { return p.CallCount() == 0 }
