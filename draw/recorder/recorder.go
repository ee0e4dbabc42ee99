// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"github.com/gogpu/overlay/draw"
)

// Recorder is a draw.Backend that captures every call as a Command.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	view     *draw.View
	fb       *draw.Framebuffer
}

var _ draw.Backend = (*Recorder)(nil)

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// SetActiveView implements draw.Backend.
func (r *Recorder) SetActiveView(v *draw.View) {
	r.view = v
	r.commands = append(r.commands, SetViewCommand{View: v})
}

// BindFramebuffer implements draw.Backend.
func (r *Recorder) BindFramebuffer(fb *draw.Framebuffer) {
	r.fb = fb
	r.commands = append(r.commands, BindFramebufferCommand{Framebuffer: fb})
}

// ClearDepth implements draw.Backend.
func (r *Recorder) ClearDepth(fb *draw.Framebuffer, depth float32) {
	r.commands = append(r.commands, ClearDepthCommand{Framebuffer: fb, Depth: depth})
}

// DrawPass implements draw.Backend.
func (r *Recorder) DrawPass(p *draw.Pass) {
	r.commands = append(r.commands, DrawPassCommand{
		Pass:        p,
		State:       p.State(),
		Calls:       p.CallCount(),
		View:        r.view,
		Framebuffer: r.fb,
	})
}

// Commands returns the recorded commands in submission order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Draws returns only the pass submissions.
func (r *Recorder) Draws() []DrawPassCommand {
	var out []DrawPassCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawPassCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Submissions returns the submissions of p.
func (r *Recorder) Submissions(p *draw.Pass) []DrawPassCommand {
	var out []DrawPassCommand
	for _, c := range r.Draws() {
		if c.Pass == p {
			out = append(out, c)
		}
	}
	return out
}

// PassNames returns the names of submitted passes in order.
func (r *Recorder) PassNames() []string {
	draws := r.Draws()
	names := make([]string, len(draws))
	for i, c := range draws {
		names[i] = c.Pass.Name()
	}
	return names
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.view = nil
	r.fb = nil
}

// Playback replays the recorded commands to backend.
//
// Each pass is submitted with the state it had when it was recorded and is
// restored to its current state afterwards.
func (r *Recorder) Playback(backend draw.Backend) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetViewCommand:
			backend.SetActiveView(c.View)
		case BindFramebufferCommand:
			backend.BindFramebuffer(c.Framebuffer)
		case ClearDepthCommand:
			backend.ClearDepth(c.Framebuffer, c.Depth)
		case DrawPassCommand:
			cur := c.Pass.State()
			c.Pass.StateRemove(cur)
			c.Pass.StateAdd(c.State)
			backend.DrawPass(c.Pass)
			c.Pass.StateRemove(c.State)
			c.Pass.StateAdd(cur)
		}
	}
}
