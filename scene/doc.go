// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene describes the host data the overlay engine reads every frame.
//
// The overlay engine does not own scene data. The host application translates
// its object, mesh and viewport state into the plain structs of this package
// once per frame and hands them to the engine, which only ever reads them.
//
// # Core Types
//
//   - Context: per-frame draw context (edit/active/pose objects, object mode,
//     viewport settings, region view, theme)
//   - Object: one visible object, with its draw flags and cached geometry
//   - Mesh: evaluated mesh counts and optional edit-mesh cage
//   - View3D: overlay, shading and viewport flags of the 3D view
//   - RegionView: projection state of the region being drawn
//   - Theme: wire colours used by overlay categories
//
// # Geometry Handles
//
// Geometry is referenced through *Batch handles owned by the host. A nil
// handle means the geometry is not available and the corresponding draw call
// is skipped.
package scene
