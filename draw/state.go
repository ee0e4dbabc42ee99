// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// State is the fixed-function state of a pass.
// At most one depth test and one stencil test bit should be set at a time.
type State uint32

const (
	StateWriteColor State = 1 << iota
	StateWriteDepth
	StateWriteStencil

	StateDepthAlways
	StateDepthLess
	StateDepthLessEqual
	StateDepthEqual
	StateDepthGreater
	StateDepthGreaterEqual

	StateStencilAlways
	StateStencilEqual
	StateStencilNotEqual

	StateCullBack
	StateBlendAlpha
	StateClipPlanes
	StateFirstVertexConvention
)

const (
	stateDepthTest = StateDepthAlways | StateDepthLess | StateDepthLessEqual |
		StateDepthEqual | StateDepthGreater | StateDepthGreaterEqual
	stateStencilTest = StateStencilAlways | StateStencilEqual | StateStencilNotEqual
)

var stateNames = [...]struct {
	bit  State
	name string
}{
	{StateWriteColor, "WriteColor"},
	{StateWriteDepth, "WriteDepth"},
	{StateWriteStencil, "WriteStencil"},
	{StateDepthAlways, "DepthAlways"},
	{StateDepthLess, "DepthLess"},
	{StateDepthLessEqual, "DepthLessEqual"},
	{StateDepthEqual, "DepthEqual"},
	{StateDepthGreater, "DepthGreater"},
	{StateDepthGreaterEqual, "DepthGreaterEqual"},
	{StateStencilAlways, "StencilAlways"},
	{StateStencilEqual, "StencilEqual"},
	{StateStencilNotEqual, "StencilNotEqual"},
	{StateCullBack, "CullBack"},
	{StateBlendAlpha, "BlendAlpha"},
	{StateClipPlanes, "ClipPlanes"},
	{StateFirstVertexConvention, "FirstVertexConvention"},
}

// Has reports whether all bits of s are set.
func (st State) Has(s State) bool { return st&s == s }

// String returns the set bits joined by '|'.
func (st State) String() string {
	if st == 0 {
		return "None"
	}
	var parts []string
	for _, n := range stateNames {
		if st&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// DepthCompare returns the depth comparison of the state.
// Without a depth test bit the depth test always passes.
func (st State) DepthCompare() gputypes.CompareFunction {
	switch {
	case st&StateDepthLess != 0:
		return gputypes.CompareFunctionLess
	case st&StateDepthLessEqual != 0:
		return gputypes.CompareFunctionLessEqual
	case st&StateDepthEqual != 0:
		return gputypes.CompareFunctionEqual
	case st&StateDepthGreater != 0:
		return gputypes.CompareFunctionGreater
	case st&StateDepthGreaterEqual != 0:
		return gputypes.CompareFunctionGreaterEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// StencilCompare returns the stencil comparison of the state.
func (st State) StencilCompare() gputypes.CompareFunction {
	switch {
	case st&StateStencilEqual != 0:
		return gputypes.CompareFunctionEqual
	case st&StateStencilNotEqual != 0:
		return gputypes.CompareFunctionNotEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// ColorWriteMask returns the colour channels written by the state.
func (st State) ColorWriteMask() gputypes.ColorWriteMask {
	if st&StateWriteColor != 0 {
		return gputypes.ColorWriteMaskAll
	}
	return gputypes.ColorWriteMaskNone
}

// DepthStencil translates the state into a WebGPU depth/stencil state.
//
// The stencil mask of a shading group is the stencil reference, set when the
// group is drawn. Comparisons read and writes replace through full 0xFF
// masks, so a zero reference still marks the stencil.
func (st State) DepthStencil() gputypes.DepthStencilState {
	passOp := gputypes.StencilOperationKeep
	if st&StateWriteStencil != 0 {
		passOp = gputypes.StencilOperationReplace
	}
	face := gputypes.StencilFaceState{
		Compare:     st.StencilCompare(),
		FailOp:      gputypes.StencilOperationKeep,
		DepthFailOp: gputypes.StencilOperationKeep,
		PassOp:      passOp,
	}
	var writeMask uint32
	if st&StateWriteStencil != 0 {
		writeMask = 0xFF
	}
	return gputypes.DepthStencilState{
		Format:            gputypes.TextureFormatDepth24PlusStencil8,
		DepthWriteEnabled: st&StateWriteDepth != 0,
		DepthCompare:      st.DepthCompare(),
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  writeMask,
	}
}
