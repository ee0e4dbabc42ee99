// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Kind is the type of an object.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindMesh
	KindCurve
	KindSurface
	KindFont
	KindMetaBall
	KindLattice
	KindArmature
	KindLight
	KindCamera
	KindSpeaker
	KindLightProbe
	KindGPencil
)

var kindNames = [...]string{
	KindEmpty:      "Empty",
	KindMesh:       "Mesh",
	KindCurve:      "Curve",
	KindSurface:    "Surface",
	KindFont:       "Font",
	KindMetaBall:   "MetaBall",
	KindLattice:    "Lattice",
	KindArmature:   "Armature",
	KindLight:      "Light",
	KindCamera:     "Camera",
	KindSpeaker:    "Speaker",
	KindLightProbe: "LightProbe",
	KindGPencil:    "GPencil",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("scene: unknown object kind %q", s)
}

// DisplayType is the maximum shading level an object is drawn with.
// Values are ordered: comparisons against DisplayWire are meaningful.
type DisplayType uint8

const (
	DisplayBounds   DisplayType = 1
	DisplayWire     DisplayType = 2
	DisplaySolid    DisplayType = 3
	DisplayTextured DisplayType = 5
)

// DrawFlags are per-object draw overrides.
type DrawFlags uint16

const (
	// DrawWire draws the wireframe on top of the object's shading.
	DrawWire DrawFlags = 1 << iota
	// DrawInFront draws the object in front of everything else (x-ray).
	DrawInFront
	// DrawAllEdges draws every edge regardless of the wireframe threshold.
	DrawAllEdges
)

// Has reports whether all bits of f are set.
func (d DrawFlags) Has(f DrawFlags) bool { return d&f == f }

// BaseFlags carry the selection and origin state of an object's base.
type BaseFlags uint16

const (
	BaseSelected BaseFlags = 1 << iota
	BaseVisible
	// BaseFromDupli marks objects instanced by the duplication system.
	BaseFromDupli
	// BaseFromSet marks objects coming from a background set scene.
	BaseFromSet
)

// Has reports whether all bits of f are set.
func (b BaseFlags) Has(f BaseFlags) bool { return b&f == f }

// ObjectMode is the interaction mode bitmask of an object or of the context.
type ObjectMode uint16

const (
	ModeEdit ObjectMode = 1 << iota
	ModeSculpt
	ModeVertexPaint
	ModeWeightPaint
	ModeTexturePaint
	ModeParticleEdit
	ModePose
	ModeEditGPencil
	ModePaintGPencil
	ModeSculptGPencil
	ModeWeightGPencil

	// ModeObject is the zero mode.
	ModeObject ObjectMode = 0

	// ModeAllPaint groups every painting mode, sculpt included.
	ModeAllPaint = ModeSculpt | ModeVertexPaint | ModeWeightPaint | ModeTexturePaint
)

// Has reports whether all bits of f are set.
func (m ObjectMode) Has(f ObjectMode) bool { return m&f == f }

// Any reports whether at least one bit of f is set.
func (m ObjectMode) Any(f ObjectMode) bool { return m&f != 0 }

// DupliKey identifies the source object of a duplicated instance.
// Instances of the same source share one key.
type DupliKey string

// Batch is a host-owned GPU geometry handle.
type Batch struct {
	Name     string
	Vertices int
}

// MeshEval identifies one evaluated state of a mesh.
type MeshEval struct {
	Name string
}

// EditMesh is the edit-mode data of a mesh.
type EditMesh struct {
	// Cage is the mesh used to display the edit cage (modifiers applied
	// on cage). It may be nil.
	Cage *MeshEval
	// Final is the fully evaluated mesh.
	Final *MeshEval
}

// HasCage reports whether a modifier preview cage exists that differs from
// the final evaluated mesh.
func (em *EditMesh) HasCage() bool {
	return em != nil && em.Cage != nil && em.Cage != em.Final
}

// Mesh holds the counts of an evaluated mesh.
type Mesh struct {
	Edges    int
	Vertices int
	// Edit is non-nil while the mesh is in edit mode.
	Edit *EditMesh
}

// PBVHType is the kind of acceleration structure backing a sculpt session.
type PBVHType uint8

const (
	PBVHNone PBVHType = iota
	PBVHFaces
	PBVHGrids
	PBVHBMesh
)

// SculptSession is the sculpt-mode runtime of an object.
type SculptSession struct {
	PBVH                  PBVHType
	ShapeKeyActive        bool
	DeformModifiersActive bool
}

// Object is one visible object of the scene.
type Object struct {
	ID      string
	Kind    Kind
	Display DisplayType
	Draw    DrawFlags
	Base    BaseFlags
	Mode    ObjectMode

	Matrix f32.Mat4
	Color  f32.Vec4

	Mesh *Mesh
	// EditMode marks non-mesh objects that are in edit mode.
	// Meshes derive edit mode from Mesh.Edit.
	EditMode bool
	Sculpt   *SculptSession

	ParticleSystems int

	// DupliSource is set while the object is a duplicated instance.
	DupliSource DupliKey
	// DupliParent is the object that instanced this one.
	DupliParent *Object

	FaceWireframe *Batch
	LooseEdges    *Batch
	AllVerts      *Batch
}

// InEditMode reports whether the object is being edited.
func (o *Object) InEditMode() bool {
	if o.Kind == KindMesh {
		return o.Mesh != nil && o.Mesh.Edit != nil
	}
	return o.EditMode
}

// HasEditMeshCage reports whether the object is a mesh in edit mode whose
// modifier preview cage differs from the final mesh.
func (o *Object) HasEditMeshCage() bool {
	if o.Kind != KindMesh || o.Mesh == nil {
		return false
	}
	return o.Mesh.Edit.HasCage()
}

// UsesSculptPBVH reports whether the object draws directly from its sculpt
// PBVH. Face based PBVHs only do so without shape keys, deforming modifiers
// or full shading; grids and dynamic topology always do.
func (o *Object) UsesSculptPBVH(v3d *View3D) bool {
	ss := o.Sculpt
	if ss == nil || ss.PBVH == PBVHNone || !o.Mode.Has(ModeSculpt) {
		return false
	}
	if ss.PBVH != PBVHFaces {
		return true
	}
	fullShading := v3d != nil && v3d.Shading.Type > ShadingSolid
	return !(ss.ShapeKeyActive || ss.DeformModifiersActive || fullShading)
}
