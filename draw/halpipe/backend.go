// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay/draw"
)

// Backend is a draw.Backend that resolves the pipeline of every shading
// group of a submitted pass, then forwards the call to the next backend.
//
// Pipeline errors do not interrupt the frame. They are collected and
// reported by Err.
type Backend struct {
	next   draw.Backend
	cache  *Cache
	format gputypes.TextureFormat

	resolved int
	errs     []error
}

var _ draw.Backend = (*Backend)(nil)

// NewBackend creates a Backend rendering into color targets of format.
func NewBackend(next draw.Backend, cache *Cache, format gputypes.TextureFormat) *Backend {
	return &Backend{next: next, cache: cache, format: format}
}

// SetActiveView implements draw.Backend.
func (b *Backend) SetActiveView(v *draw.View) { b.next.SetActiveView(v) }

// BindFramebuffer implements draw.Backend.
func (b *Backend) BindFramebuffer(fb *draw.Framebuffer) { b.next.BindFramebuffer(fb) }

// ClearDepth implements draw.Backend.
func (b *Backend) ClearDepth(fb *draw.Framebuffer, depth float32) { b.next.ClearDepth(fb, depth) }

// DrawPass implements draw.Backend. Groups without calls are skipped.
func (b *Backend) DrawPass(p *draw.Pass) {
	for _, g := range p.Groups() {
		if len(g.Calls()) == 0 {
			continue
		}
		_, err := b.cache.Get(Key{
			Shader: g.Shader(),
			State:  p.State(),
			Format: b.format,
		})
		if err != nil {
			slogger().Warn("halpipe: pipeline unavailable", "pass", p.Name(), "err", err)
			b.errs = append(b.errs, err)
			continue
		}
		b.resolved++
	}
	b.next.DrawPass(p)
}

// Resolved returns the number of pipelines resolved so far.
func (b *Backend) Resolved() int { return b.resolved }

// Err returns the pipeline errors collected so far, or nil.
func (b *Backend) Err() error { return errors.Join(b.errs...) }
