// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package draw holds the draw-manager side of the overlay engine: passes,
// shading groups, uniforms, draw calls and views, plus the Backend interface
// that receives them.
//
// # Building and Submitting
//
// Overlay categories build passes while a frame is cached:
//
//	ps := draw.NewPass("wireframe", draw.StateWriteColor|draw.StateWriteDepth|draw.StateDepthLessEqual)
//	grp := ps.NewShadingGroup(shader)
//	grp.UniformFloat("wireStepParam", step)
//	grp.SetStencilMask(0xFF)
//	grp.Call(ob.FaceWireframe, ob)
//
// and submit them in order when the frame is drawn:
//
//	backend.SetActiveView(wiresView)
//	backend.DrawPass(ps)
//
// A pass may be submitted several times with its state changed in between;
// backends must read Pass.State at submission time.
//
// # Fixed-Function State
//
// State is a bitset of write, depth-test and stencil-test flags.
// State.DepthStencil and State.ColorWriteMask translate it into the
// github.com/gogpu/gputypes descriptors consumed by WebGPU backends.
package draw
