// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "fmt"

// Framebuffer identifies a render target of the host. The host binds its
// attachments when a backend binds the framebuffer.
type Framebuffer struct {
	Name string
}

// FramebufferList holds the framebuffers the overlay engine renders into.
type FramebufferList struct {
	// Default is the primary overlay framebuffer.
	Default *Framebuffer
	// InFront receives in-front geometry. Its depth is separate from the
	// scene depth.
	InFront *Framebuffer
}

// Purpose describes what a frame is drawn for.
type Purpose uint8

const (
	// PurposeViewport draws an interactive viewport into framebuffers.
	PurposeViewport Purpose = iota
	// PurposeImageRender draws an offline image into framebuffers.
	PurposeImageRender
	// PurposeSelect draws selection IDs.
	PurposeSelect
	// PurposeDepth draws depth only.
	PurposeDepth
)

// String returns the string representation of Purpose.
func (p Purpose) String() string {
	switch p {
	case PurposeViewport:
		return "Viewport"
	case PurposeImageRender:
		return "ImageRender"
	case PurposeSelect:
		return "Select"
	case PurposeDepth:
		return "Depth"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsFramebuffer reports whether the frame renders into framebuffers.
func (p Purpose) IsFramebuffer() bool {
	return p == PurposeViewport || p == PurposeImageRender
}

// IsSelect reports whether the frame draws selection IDs.
func (p Purpose) IsSelect() bool { return p == PurposeSelect }

// IsDepth reports whether the frame draws depth only.
func (p Purpose) IsDepth() bool { return p == PurposeDepth }

// IsImageRender reports whether the frame is an offline render.
func (p Purpose) IsImageRender() bool { return p == PurposeImageRender }

// Backend executes what the overlay engine built.
//
// Passes, shading groups and calls are plain data built by the engine; the
// backend only sees them at submission time. Backends are used from a single
// goroutine for the duration of a frame.
type Backend interface {
	// SetActiveView sets the view used by following submissions.
	// A nil view restores the ambient view of the region.
	SetActiveView(v *View)

	// BindFramebuffer makes fb the render target.
	BindFramebuffer(fb *Framebuffer)

	// ClearDepth clears the depth attachment of fb to depth.
	ClearDepth(fb *Framebuffer, depth float32)

	// DrawPass submits every call of p with p's current state.
	DrawPass(p *Pass)
}
