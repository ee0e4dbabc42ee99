// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{0, "None"},
		{StateWriteColor, "WriteColor"},
		{StateWriteDepth | StateDepthLessEqual, "WriteDepth|DepthLessEqual"},
		{StateStencilNotEqual | StateWriteStencil, "WriteStencil|StencilNotEqual"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateCompare(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		depth   gputypes.CompareFunction
		stencil gputypes.CompareFunction
	}{
		{"no tests", StateWriteColor, gputypes.CompareFunctionAlways, gputypes.CompareFunctionAlways},
		{"less", StateDepthLess, gputypes.CompareFunctionLess, gputypes.CompareFunctionAlways},
		{"less equal + equal", StateDepthLessEqual | StateStencilEqual, gputypes.CompareFunctionLessEqual, gputypes.CompareFunctionEqual},
		{"greater equal + not equal", StateDepthGreaterEqual | StateStencilNotEqual, gputypes.CompareFunctionGreaterEqual, gputypes.CompareFunctionNotEqual},
		{"greater", StateDepthGreater, gputypes.CompareFunctionGreater, gputypes.CompareFunctionAlways},
		{"depth equal", StateDepthEqual | StateStencilAlways, gputypes.CompareFunctionEqual, gputypes.CompareFunctionAlways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.DepthCompare(); got != tt.depth {
				t.Errorf("DepthCompare() = %v, want %v", got, tt.depth)
			}
			if got := tt.state.StencilCompare(); got != tt.stencil {
				t.Errorf("StencilCompare() = %v, want %v", got, tt.stencil)
			}
		})
	}
}

func TestStateColorWriteMask(t *testing.T) {
	if got := StateWriteColor.ColorWriteMask(); got != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteColor mask = %v, want All", got)
	}
	if got := StateWriteDepth.ColorWriteMask(); got != gputypes.ColorWriteMaskNone {
		t.Errorf("WriteDepth mask = %v, want None", got)
	}
}

func TestStateDepthStencil(t *testing.T) {
	t.Run("opaque wire pass", func(t *testing.T) {
		st := StateWriteColor | StateWriteDepth | StateDepthLessEqual | StateStencilEqual
		ds := st.DepthStencil()
		if !ds.DepthWriteEnabled {
			t.Error("depth writes should be enabled")
		}
		if ds.DepthCompare != gputypes.CompareFunctionLessEqual {
			t.Errorf("DepthCompare = %v, want LessEqual", ds.DepthCompare)
		}
		if ds.StencilFront.Compare != gputypes.CompareFunctionEqual {
			t.Errorf("stencil compare = %v, want Equal", ds.StencilFront.Compare)
		}
		if ds.StencilFront.PassOp != gputypes.StencilOperationKeep {
			t.Errorf("PassOp = %v, want Keep", ds.StencilFront.PassOp)
		}
		if ds.StencilWriteMask != 0 {
			t.Errorf("StencilWriteMask = %#x, want 0", ds.StencilWriteMask)
		}
		if ds.StencilFront != ds.StencilBack {
			t.Error("front and back stencil faces should match")
		}
	})

	t.Run("xray stencil pass", func(t *testing.T) {
		st := StateWriteDepth | StateWriteStencil | StateDepthGreaterEqual | StateStencilNotEqual
		ds := st.DepthStencil()
		if ds.StencilFront.PassOp != gputypes.StencilOperationReplace {
			t.Errorf("PassOp = %v, want Replace", ds.StencilFront.PassOp)
		}
		if ds.StencilFront.Compare != gputypes.CompareFunctionNotEqual {
			t.Errorf("stencil compare = %v, want NotEqual", ds.StencilFront.Compare)
		}
		// The group reference is zero in this pass; the write mask must
		// still let Replace mark the stencil.
		if ds.StencilWriteMask != 0xFF {
			t.Errorf("StencilWriteMask = %#x, want 0xFF", ds.StencilWriteMask)
		}
		if ds.StencilReadMask != 0xFF {
			t.Errorf("StencilReadMask = %#x, want 0xFF", ds.StencilReadMask)
		}
		if ds.Format != gputypes.TextureFormatDepth24PlusStencil8 {
			t.Errorf("Format = %v, want Depth24PlusStencil8", ds.Format)
		}
	})

	t.Run("no stencil writes without WriteStencil", func(t *testing.T) {
		ds := (StateWriteDepth | StateStencilEqual).DepthStencil()
		if ds.StencilWriteMask != 0 || ds.StencilFront.PassOp != gputypes.StencilOperationKeep {
			t.Errorf("StencilWriteMask = %#x PassOp = %v, want 0 and Keep", ds.StencilWriteMask, ds.StencilFront.PassOp)
		}
	})
}
