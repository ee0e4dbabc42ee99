// Package overlay draws the interactive annotations of a 3D viewport:
// wireframes, selection outlines, armatures, grids and object extras,
// composited over the rendered scene.
//
// # Overview
//
// The Engine orchestrates overlay categories through the stages of a frame.
// It resolves the context mode (edit mesh, pose, sculpt, ...) once per frame,
// decides per object which categories contribute geometry, and sequences
// the draw submissions, including the depth and stencil handling of x-ray
// and in-front objects.
//
// The wireframe category is built in. Every other category is provided by
// the host through WithCategory and implements any subset of the stage
// interfaces of package frame.
//
// # Quick Start
//
//	import "github.com/gogpu/overlay"
//
//	e := overlay.New(overlay.WithCategory(frame.CategoryGrid, grid))
//
//	f := &frame.Frame{Ctx: ctx, Backend: backend, Framebuffers: fbl}
//	e.Init(f)
//	e.CacheInit(f)
//	for _, ob := range visible {
//		e.CachePopulate(f, ob)
//	}
//	e.CacheFinish(f)
//	e.Draw(f)
//
// # Architecture
//
// The module is organized into:
//   - overlay: Engine, context mode dispatch, per-object predicates
//   - frame: per-frame state and the category contract
//   - scene: the host data consumed read-only
//   - draw: passes, shading groups, views and the Backend interface
//   - draw/recorder: a Backend that records submissions
//   - draw/halpipe: render pipelines for pass states on a HAL device
//   - wireframe: the wireframe category and its shaders
//
// # Frames
//
// A frame is sequential. The Engine keeps the state shared by the categories
// and the dupli cache across frames; nothing else outlives a frame.
package overlay

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
