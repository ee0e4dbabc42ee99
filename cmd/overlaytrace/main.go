// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command overlaytrace draws one overlay frame of a TOML scene description
// and prints the submitted commands.
//
// Usage:
//
//	overlaytrace [flags] scene.toml
//
// Flags:
//
//	--hal      resolve render pipelines on a noop HAL device
//	--verbose  log engine diagnostics to stderr
//
// A scene file lists the view settings and the visible objects:
//
//	modes = ["Edit"]
//	edit = "Cube"
//	active = "Cube"
//
//	[view]
//	shading = "Solid"
//	overlays = ["Wireframes"]
//	wireframe_threshold = 1.0
//	select_outline = true
//
//	[[objects]]
//	id = "Cube"
//	kind = "Mesh"
//	edges = 12
//	vertices = 8
//	edit_mode = true
//	cage = true
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
