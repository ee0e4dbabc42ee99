// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/overlay/draw"
)

// Entry points every overlay shader provides.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// wireVertexStride is the byte stride of a wire vertex: position (vec3<f32>)
// followed by the edge sharpness (f32).
const wireVertexStride = 16

// pipelineState masks the state bits that change a pipeline. Clip planes
// and the provoking vertex are handled in shaders.
const pipelineState = ^(draw.StateClipPlanes | draw.StateFirstVertexConvention)

// Key identifies one render pipeline.
//
// The stencil reference of a group is dynamic state and is not part of
// the key.
type Key struct {
	Shader *draw.Shader
	State  draw.State
	Format gputypes.TextureFormat
}

// normalize drops the state bits that do not change the pipeline.
func (k Key) normalize() Key {
	k.State &= pipelineState
	return k
}

func (k Key) label() string {
	return fmt.Sprintf("%s[%s|%v]", k.Shader.Name, k.State, k.Format)
}

// stencilOp translates a WebGPU stencil operation to its HAL value.
func stencilOp(op gputypes.StencilOperation) hal.StencilOperation {
	switch op {
	case gputypes.StencilOperationZero:
		return hal.StencilOperationZero
	case gputypes.StencilOperationReplace:
		return hal.StencilOperationReplace
	case gputypes.StencilOperationInvert:
		return hal.StencilOperationInvert
	case gputypes.StencilOperationIncrementClamp:
		return hal.StencilOperationIncrementClamp
	case gputypes.StencilOperationDecrementClamp:
		return hal.StencilOperationDecrementClamp
	case gputypes.StencilOperationIncrementWrap:
		return hal.StencilOperationIncrementWrap
	case gputypes.StencilOperationDecrementWrap:
		return hal.StencilOperationDecrementWrap
	default:
		return hal.StencilOperationKeep
	}
}

func stencilFace(f gputypes.StencilFaceState) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     f.Compare,
		FailOp:      stencilOp(f.FailOp),
		DepthFailOp: stencilOp(f.DepthFailOp),
		PassOp:      stencilOp(f.PassOp),
	}
}

// DepthStencil returns the HAL depth/stencil state of a pass state.
func DepthStencil(st draw.State) *hal.DepthStencilState {
	ds := st.DepthStencil()
	return &hal.DepthStencilState{
		Format:            ds.Format,
		DepthWriteEnabled: ds.DepthWriteEnabled,
		DepthCompare:      ds.DepthCompare,
		StencilFront:      stencilFace(ds.StencilFront),
		StencilBack:       stencilFace(ds.StencilBack),
		StencilReadMask:   ds.StencilReadMask,
		StencilWriteMask:  ds.StencilWriteMask,
	}
}

// isIntegerFormat reports whether f cannot be blended.
func isIntegerFormat(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatR32Uint, gputypes.TextureFormatRG32Uint, gputypes.TextureFormatRGBA32Uint:
		return true
	}
	return false
}

// descriptor builds the pipeline descriptor of key using module and layout.
func descriptor(key Key, module hal.ShaderModule, layout hal.PipelineLayout) *hal.RenderPipelineDescriptor {
	st := key.State

	target := gputypes.ColorTargetState{
		Format:    key.Format,
		WriteMask: st.ColorWriteMask(),
	}
	if st&draw.StateBlendAlpha != 0 && !isIntegerFormat(key.Format) {
		blend := gputypes.BlendStatePremultiplied()
		target.Blend = &blend
	}

	cull := gputypes.CullModeNone
	if st&draw.StateCullBack != 0 {
		cull = gputypes.CullModeBack
	}

	return &hal.RenderPipelineDescriptor{
		Label:  key.label(),
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: vertexEntryPoint,
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: wireVertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: gputypes.VertexFormatFloat32, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: fragmentEntryPoint,
			Targets:    []gputypes.ColorTargetState{target},
		},
		DepthStencil: DepthStencil(st),
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyLineList,
			CullMode: cull,
		},
	}
}
