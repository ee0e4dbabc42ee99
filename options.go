// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/scene"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Built-in wireframe category only
//	e := overlay.New()
//
//	// Host provided categories
//	e := overlay.New(
//	    overlay.WithCategory(frame.CategoryGrid, grid),
//	    overlay.WithCategory(frame.CategoryOutline, outline),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	categories map[frame.CategoryID]any
	theme      *scene.Theme
	dupli      *frame.DupliCache
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		categories: make(map[frame.CategoryID]any),
	}
}

// WithCategory registers the implementation of a category. c implements
// any subset of the frame stage interfaces (frame.Initializer,
// frame.Populator, ...). Registering CategoryWireframe replaces the built-in
// wireframe renderer.
func WithCategory(id frame.CategoryID, c any) Option {
	return func(o *engineOptions) {
		o.categories[id] = c
	}
}

// WithTheme sets the theme used by frames whose context has none.
func WithTheme(th *scene.Theme) Option {
	return func(o *engineOptions) {
		o.theme = th
	}
}

// WithDupliCache sets the dupli cache of the engine, for hosts that inspect
// or clear it. A cache must not be shared between engines: its entries refer
// to the shading groups of one engine.
func WithDupliCache(c *frame.DupliCache) Option {
	return func(o *engineOptions) {
		o.dupli = c
	}
}
