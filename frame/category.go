// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"fmt"

	"github.com/gogpu/overlay/scene"
)

// CategoryID identifies an overlay category invoked by the engine.
type CategoryID uint8

const (
	CategoryAntialiasing CategoryID = iota
	CategoryEditMesh
	CategoryEditCurve // curves and surfaces
	CategoryEditText
	CategoryEditArmature
	CategoryEditLattice
	CategoryEditMetaball
	CategoryEditParticle
	CategoryPaint
	CategorySculpt
	CategoryPose         // bone selection fade of weight-painted meshes
	CategoryPoseArmature // armatures in pose mode
	CategoryArmature
	CategoryFacing
	CategoryGrid
	CategoryImage
	CategoryMetaball
	CategoryMotionPath
	CategoryOutline
	CategoryParticle
	CategoryWireframe
	CategoryExtra
	CategoryGPencil
	CategoryEmpty
	CategoryLight
	CategoryCamera
	CategorySpeaker
	CategoryLightProbe
	CategoryLattice

	// NumCategories is the number of category identifiers.
	NumCategories
)

var categoryNames = [...]string{
	CategoryAntialiasing: "Antialiasing",
	CategoryEditMesh:     "EditMesh",
	CategoryEditCurve:    "EditCurve",
	CategoryEditText:     "EditText",
	CategoryEditArmature: "EditArmature",
	CategoryEditLattice:  "EditLattice",
	CategoryEditMetaball: "EditMetaball",
	CategoryEditParticle: "EditParticle",
	CategoryPaint:        "Paint",
	CategorySculpt:       "Sculpt",
	CategoryPose:         "Pose",
	CategoryPoseArmature: "PoseArmature",
	CategoryArmature:     "Armature",
	CategoryFacing:       "Facing",
	CategoryGrid:         "Grid",
	CategoryImage:        "Image",
	CategoryMetaball:     "Metaball",
	CategoryMotionPath:   "MotionPath",
	CategoryOutline:      "Outline",
	CategoryParticle:     "Particle",
	CategoryWireframe:    "Wireframe",
	CategoryExtra:        "Extra",
	CategoryGPencil:      "GPencil",
	CategoryEmpty:        "Empty",
	CategoryLight:        "Light",
	CategoryCamera:       "Camera",
	CategorySpeaker:      "Speaker",
	CategoryLightProbe:   "LightProbe",
	CategoryLattice:      "Lattice",
}

// String returns the name of the category.
func (c CategoryID) String() string {
	if c < NumCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// A category implements any subset of the stage interfaces below. The
// engine calls a stage only on categories that implement it; stages a
// category does not implement are no-ops.

// Initializer runs once per frame before caching starts.
type Initializer interface {
	Init(f *Frame)
}

// CacheInitializer creates the passes and shading groups of a frame.
type CacheInitializer interface {
	CacheInit(f *Frame)
}

// Populator adds the draw calls of one object.
//
// dupli is the cache entry shared by the instances of a duplicated object,
// or nil. needsInit reports that the entry is new or stale and must be
// filled again.
type Populator interface {
	CachePopulate(f *Frame, ob *scene.Object, dupli *DupliData, needsInit bool)
}

// Finisher runs once after every object has been populated.
type Finisher interface {
	CacheFinish(f *Frame)
}

// Drawer submits the passes of the category.
type Drawer interface {
	Draw(f *Frame)
}

// InFrontDrawer submits the passes drawn into the in-front framebuffer.
type InFrontDrawer interface {
	InFrontDraw(f *Frame)
}

// CentersDrawer submits object center markers. Centers are drawn on top of
// in-front geometry.
type CentersDrawer interface {
	CentersDraw(f *Frame)
}

// Antialiaser brackets the overlay draws of a frame. End resolves the
// accumulated overlay colour and is called exactly once per frame.
type Antialiaser interface {
	Start(f *Frame)
	End(f *Frame)
}
