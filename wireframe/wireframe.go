// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wireframe

import (
	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/scene"
)

// zOffset is the depth bias of the wires view.
const zOffset = 0.5

const (
	allEdgesStepParam = 1.0
	sculptStepParam   = 10.0
)

// Stencil masks of the groups of each pass.
const (
	stencilMaskOpaque = 0xFF
	stencilMaskXRay   = 0x00
)

// Pass states. The xray pass is drawn twice per frame, see InFrontDraw.
const (
	stateOpaque = draw.StateWriteColor | draw.StateWriteDepth |
		draw.StateDepthLessEqual | draw.StateStencilEqual
	stateXRay = draw.StateWriteDepth | draw.StateWriteStencil |
		draw.StateDepthGreaterEqual | draw.StateStencilNotEqual

	// xrayPaintRemove and xrayPaintAdd turn the xray pass into its second,
	// colour writing submission.
	xrayPaintRemove = draw.StateDepthGreaterEqual | draw.StateStencilNotEqual
	xrayPaintAdd    = draw.StateWriteColor | draw.StateDepthLessEqual | draw.StateStencilAlways
)

// Stats count the populate paths taken by a Renderer.
type Stats struct {
	// SlowPath counts objects whose draw decision was computed.
	SlowPath int
	// FastPath counts dupli instances drawn from their cache entry.
	FastPath int
	// LooseEdges and LoosePoints count fallbacks to the extra buffers.
	LooseEdges  int
	LoosePoints int
}

// Renderer is the wireframe overlay category.
//
// It owns two passes per frame, one drawn with the scene depth and one for
// objects drawn in front, and ten shading groups: normal and all-edges
// groups indexed by [xray][coloring], and a sculpt group per xray state.
type Renderer struct {
	passes      [2]*draw.Pass
	wires       [2][2]*draw.ShadingGroup
	wiresAll    [2][2]*draw.ShadingGroup
	wiresSculpt [2]*draw.ShadingGroup

	stats Stats
}

var (
	_ frame.Initializer      = (*Renderer)(nil)
	_ frame.CacheInitializer = (*Renderer)(nil)
	_ frame.Populator        = (*Renderer)(nil)
	_ frame.Drawer           = (*Renderer)(nil)
	_ frame.InFrontDrawer    = (*Renderer)(nil)
)

// New creates a wireframe renderer.
func New() *Renderer {
	return &Renderer{}
}

// Init derives the wires view from the default view.
func (r *Renderer) Init(f *frame.Frame) {
	pd := f.Private
	pd.WiresView = draw.NewZOffsetView("wires", pd.DefaultView, f.Region(), zOffset)
}

// allocate creates the passes and their ten groups. They are created once
// and reset every frame, so dupli cache entries may refer to them across
// frames.
func (r *Renderer) allocate() {
	names := [2]string{"wireframe", "wireframe_xray"}
	for xray := range 2 {
		ps := draw.NewPass(names[xray], 0)
		r.passes[xray] = ps
		for coloring := range 2 {
			r.wires[xray][coloring] = ps.NewShadingGroup(Shader)
			r.wiresAll[xray][coloring] = ps.NewShadingGroup(Shader)
		}
		r.wiresSculpt[xray] = ps.NewShadingGroup(Shader)
	}
	slogger().Debug("wireframe: allocated shading groups", "count", len(r.Groups()))
}

// CacheInit prepares the passes and shading groups of the frame.
func (r *Renderer) CacheInit(f *frame.Frame) {
	if r.passes[0] == nil {
		r.allocate()
	}

	pd := f.Private
	shading := f.View3D().Shading

	pd.WireStepParam = pd.Overlay.WireframeThreshold - 254.0/255.0

	isWireShading := shading.Type == scene.ShadingWire
	isObjectColor := isWireShading && shading.WireColor == scene.WireColorObject
	isRandomColor := isWireShading && shading.WireColor == scene.WireColorRandom
	isTransform := f.Ctx != nil && f.Ctx.TransformInProgress

	sh := Shader
	if f.Purpose.IsSelect() || f.Purpose.IsDepth() {
		sh = SelectShader
	}
	theme := f.Theme()

	for xray := range 2 {
		state := draw.StateFirstVertexConvention | pd.ClippingState
		var mask uint8
		if xray == 0 {
			state |= stateOpaque
			mask = stencilMaskOpaque
		} else {
			state |= stateXRay
			mask = stencilMaskXRay
		}
		r.passes[xray].Reset(state)

		for coloring := range 2 {
			grp := r.wires[xray][coloring]
			grp.SetShader(sh)
			grp.UniformBlock("globalsBlock", theme)
			grp.UniformFloat("wireStepParam", pd.WireStepParam)
			grp.UniformBool("useColoring", coloring == 1)
			grp.UniformBool("isTransform", isTransform)
			grp.UniformBool("isObjectColor", isObjectColor)
			grp.UniformBool("isRandomColor", isRandomColor)
			grp.SetStencilMask(mask)

			grp = r.wiresAll[xray][coloring]
			grp.SetShader(sh)
			grp.UniformFloat("wireStepParam", allEdgesStepParam)
			grp.SetStencilMask(mask)
		}

		grp := r.wiresSculpt[xray]
		grp.SetShader(sh)
		grp.UniformFloat("wireStepParam", sculptStepParam)
		grp.UniformBool("useColoring", false)
		grp.SetStencilMask(mask)
	}

	slogger().Debug("wireframe: cache init",
		"shader", sh.Name,
		"wireStepParam", pd.WireStepParam,
		"objectColor", isObjectColor,
		"randomColor", isRandomColor,
		"clipping", pd.ClippingState != 0)
}

// CachePopulate adds the wireframe of ob.
//
// Instances of a duplicated object reuse the group and geometry chosen for
// the first instance while dupli is up to date.
func (r *Renderer) CachePopulate(f *frame.Frame, ob *scene.Object, dupli *frame.DupliData, needsInit bool) {
	if dupli != nil && !needsInit {
		if dupli.WireGroup == nil || dupli.WireGeom == nil {
			// Nothing to draw for this dupli.
			return
		}
		if dupli.BaseFlag == ob.Base {
			dupli.WireGroup.Call(dupli.WireGeom, ob)
			r.stats.FastPath++
			return
		}
	}
	r.stats.SlowPath++

	pd := f.Private
	allWires := ob.Draw.Has(scene.DrawAllEdges)
	xray := index(ob.Draw.Has(scene.DrawInFront))
	isMesh := ob.Kind == scene.KindMesh
	useWire := pd.Overlay.Flag.Has(scene.OverlayWireframes) ||
		ob.Draw.Has(scene.DrawWire) ||
		ob.Display == scene.DisplayWire

	isEditMode := ob.InEditMode()
	hasEditMeshCage := isMesh && isEditMode && ob.HasEditMeshCage()

	// Edit meshes only draw their wires when a modifier preview cage exists.
	if useWire && (!isMesh || !isEditMode || hasEditMeshCage) {
		useSculptPBVH := ob.UsesSculptPBVH(f.View3D()) && !f.Purpose.IsImageRender()
		useColoring := index(useWire && !isEditMode && !useSculptPBVH && !hasEditMeshCage)
		geom := ob.FaceWireframe

		var grp *draw.ShadingGroup
		if geom != nil || useSculptPBVH {
			switch {
			case useSculptPBVH:
				grp = r.wiresSculpt[xray]
			case allWires:
				grp = r.wiresAll[xray][useColoring]
			default:
				grp = r.wires[xray][useColoring]
			}

			if useSculptPBVH {
				grp.CallSculpt(ob, draw.SculptOptions{Wire: true})
			} else {
				grp.Call(geom, ob)
			}
		}

		if dupli != nil {
			dupli.WireGroup = grp
			dupli.WireGeom = geom
		}
		return
	}

	if isMesh && (!isEditMode || hasEditMeshCage) {
		cb := f.Extras.Buffer(ob)
		color := frame.WireColor(f.Ctx, f.Theme(), ob)

		edges := 0
		if ob.Mesh != nil {
			edges = ob.Mesh.Edges
		}
		switch {
		case edges > 0 || hasEditMeshCage:
			if ob.LooseEdges != nil {
				cb.Wire(ob.LooseEdges, ob, color)
				r.stats.LooseEdges++
			}
		default:
			if ob.AllVerts != nil {
				cb.LoosePoint(ob.AllVerts, ob, color)
				r.stats.LoosePoints++
			}
		}
	}
}

// Draw submits the opaque wireframe pass with the wires view.
func (r *Renderer) Draw(f *frame.Frame) {
	b := f.Backend
	b.SetActiveView(f.Private.WiresView)
	b.DrawPass(r.passes[0])
	b.SetActiveView(f.Private.DefaultView)
}

// InFrontDraw submits the xray wireframe pass twice.
//
// The first submission writes depth and stencil where xray wires lie behind
// in-front geometry. The pass state is then changed so the second
// submission writes colour wherever the wires are not occluded by in-front
// geometry, using the stencil marks of the first.
func (r *Renderer) InFrontDraw(f *frame.Frame) {
	b := f.Backend
	ps := r.passes[1]

	b.SetActiveView(f.Private.WiresView)
	b.DrawPass(ps)

	ps.StateRemove(xrayPaintRemove)
	ps.StateAdd(xrayPaintAdd)
	b.DrawPass(ps)

	b.SetActiveView(f.Private.DefaultView)
}

// Pass returns the opaque pass (xray false) or the xray pass.
func (r *Renderer) Pass(xray bool) *draw.Pass { return r.passes[index(xray)] }

// Group returns the normal wire group.
func (r *Renderer) Group(xray, coloring bool) *draw.ShadingGroup {
	return r.wires[index(xray)][index(coloring)]
}

// AllEdgesGroup returns the group of objects drawing every edge.
func (r *Renderer) AllEdgesGroup(xray, coloring bool) *draw.ShadingGroup {
	return r.wiresAll[index(xray)][index(coloring)]
}

// SculptGroup returns the group of objects drawn from their sculpt PBVH.
func (r *Renderer) SculptGroup(xray bool) *draw.ShadingGroup {
	return r.wiresSculpt[index(xray)]
}

// Groups returns every shading group of the frame.
func (r *Renderer) Groups() []*draw.ShadingGroup {
	var out []*draw.ShadingGroup
	for _, ps := range r.passes {
		if ps != nil {
			out = append(out, ps.Groups()...)
		}
	}
	return out
}

// Stats returns the populate counters accumulated since New.
func (r *Renderer) Stats() Stats { return r.stats }

func index(b bool) int {
	if b {
		return 1
	}
	return 0
}
