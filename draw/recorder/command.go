// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recorder provides a draw.Backend that records submissions as
// typed commands instead of executing them.
//
// Recordings are inspectable: tests assert draw order and pass state on
// them, and tools print them as a frame trace. A recording can be replayed
// to any other backend.
//
// # Example
//
//	rec := recorder.New()
//	engine.Draw(frame) // frame.Backend = rec
//	for _, cmd := range rec.Commands() {
//		fmt.Println(cmd)
//	}
//	rec.Playback(gpuBackend)
package recorder

import (
	"fmt"

	"github.com/gogpu/overlay/draw"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetView         CommandType = iota // Set the active view
	CmdBindFramebuffer                    // Bind a render target
	CmdClearDepth                         // Clear a depth attachment
	CmdDrawPass                           // Submit a pass
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetView:         "SetView",
	CmdBindFramebuffer: "BindFramebuffer",
	CmdClearDepth:      "ClearDepth",
	CmdDrawPass:        "DrawPass",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetViewCommand changes the active view.
type SetViewCommand struct {
	// View is the new view, nil for the ambient region view.
	View *draw.View
}

// Type implements Command.
func (SetViewCommand) Type() CommandType { return CmdSetView }

func (c SetViewCommand) String() string {
	return fmt.Sprintf("SetView %s", viewName(c.View))
}

// BindFramebufferCommand changes the render target.
type BindFramebufferCommand struct {
	Framebuffer *draw.Framebuffer
}

// Type implements Command.
func (BindFramebufferCommand) Type() CommandType { return CmdBindFramebuffer }

func (c BindFramebufferCommand) String() string {
	return fmt.Sprintf("BindFramebuffer %s", fbName(c.Framebuffer))
}

// ClearDepthCommand clears the depth attachment of a framebuffer.
type ClearDepthCommand struct {
	Framebuffer *draw.Framebuffer
	Depth       float32
}

// Type implements Command.
func (ClearDepthCommand) Type() CommandType { return CmdClearDepth }

func (c ClearDepthCommand) String() string {
	return fmt.Sprintf("ClearDepth %s %g", fbName(c.Framebuffer), c.Depth)
}

// DrawPassCommand is one submission of a pass.
//
// The pass is referenced, while State and Calls are snapshots taken at
// submission time: a pass submitted twice with different states yields two
// commands with different State values.
type DrawPassCommand struct {
	Pass        *draw.Pass
	State       draw.State
	Calls       int
	View        *draw.View
	Framebuffer *draw.Framebuffer
}

// Type implements Command.
func (DrawPassCommand) Type() CommandType { return CmdDrawPass }

func (c DrawPassCommand) String() string {
	return fmt.Sprintf("DrawPass %s state=%s calls=%d view=%s fb=%s",
		c.Pass.Name(), c.State, c.Calls, viewName(c.View), fbName(c.Framebuffer))
}

func viewName(v *draw.View) string {
	if v == nil {
		return "<ambient>"
	}
	return v.Name
}

func fbName(fb *draw.Framebuffer) string {
	if fb == nil {
		return "<none>"
	}
	return fb.Name
}
