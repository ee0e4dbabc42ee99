// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/scene"
)

// sceneFile is the TOML description of one frame.
type sceneFile struct {
	Purpose string `toml:"purpose"`
	// Modes is the object mode of the context, e.g. ["WeightPaint"].
	Modes        []string `toml:"modes"`
	Active       string   `toml:"active"`
	Edit         string   `toml:"edit"`
	Pose         string   `toml:"pose"`
	Transforming bool     `toml:"transforming"`
	// Frames is how many times the frame is drawn.
	Frames int `toml:"frames"`

	View    viewFile     `toml:"view"`
	Region  regionFile   `toml:"region"`
	Objects []objectFile `toml:"objects"`
}

type viewFile struct {
	Shading            string   `toml:"shading"`
	WireColor          string   `toml:"wire_color"`
	XRay               bool     `toml:"xray"`
	XRayAlpha          float32  `toml:"xray_alpha"`
	Overlays           []string `toml:"overlays"`
	EditOverlays       []string `toml:"edit_overlays"`
	WireframeThreshold float32  `toml:"wireframe_threshold"`
	SelectOutline      bool     `toml:"select_outline"`
	HideOverlays       bool     `toml:"hide_overlays"`
	Camera             string   `toml:"camera"`
}

type regionFile struct {
	Persp    string  `toml:"persp"`
	Dist     float32 `toml:"dist"`
	Clipping bool    `toml:"clipping"`
}

type objectFile struct {
	ID       string   `toml:"id"`
	Kind     string   `toml:"kind"`
	Display  string   `toml:"display"`
	Selected bool     `toml:"selected"`
	InFront  bool     `toml:"in_front"`
	Wire     bool     `toml:"wire"`
	AllEdges bool     `toml:"all_edges"`
	Modes    []string `toml:"modes"`

	Edges      int  `toml:"edges"`
	Vertices   int  `toml:"vertices"`
	LooseEdges bool `toml:"loose_edges"`
	EditMode   bool `toml:"edit_mode"`
	Cage       bool `toml:"cage"`

	Sculpt          string `toml:"sculpt"`
	ParticleSystems int    `toml:"particle_systems"`

	// Dupli is the duplication source; Instances copies of the object
	// are drawn when it is set.
	Dupli     string `toml:"dupli"`
	Instances int    `toml:"instances"`
}

// loadSceneFile reads and decodes a scene file. Unknown keys are errors.
func loadSceneFile(path string) (*sceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSceneFile(data)
}

func parseSceneFile(data []byte) (*sceneFile, error) {
	var sf sceneFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if sf.Frames <= 0 {
		sf.Frames = 1
	}
	return &sf, nil
}

var purposes = map[string]draw.Purpose{
	"":            draw.PurposeViewport,
	"viewport":    draw.PurposeViewport,
	"imagerender": draw.PurposeImageRender,
	"select":      draw.PurposeSelect,
	"depth":       draw.PurposeDepth,
}

var shadings = map[string]scene.ShadingType{
	"":         scene.ShadingSolid,
	"wire":     scene.ShadingWire,
	"solid":    scene.ShadingSolid,
	"material": scene.ShadingMaterial,
	"rendered": scene.ShadingRendered,
}

var wireColors = map[string]scene.WireColorType{
	"":       scene.WireColorTheme,
	"theme":  scene.WireColorTheme,
	"object": scene.WireColorObject,
	"random": scene.WireColorRandom,
}

var displays = map[string]scene.DisplayType{
	"":         scene.DisplaySolid,
	"bounds":   scene.DisplayBounds,
	"wire":     scene.DisplayWire,
	"solid":    scene.DisplaySolid,
	"textured": scene.DisplayTextured,
}

var persps = map[string]scene.Persp{
	"":       scene.PerspPersp,
	"ortho":  scene.PerspOrtho,
	"persp":  scene.PerspPersp,
	"camera": scene.PerspCamera,
}

var modes = map[string]scene.ObjectMode{
	"object":        scene.ModeObject,
	"edit":          scene.ModeEdit,
	"sculpt":        scene.ModeSculpt,
	"vertexpaint":   scene.ModeVertexPaint,
	"weightpaint":   scene.ModeWeightPaint,
	"texturepaint":  scene.ModeTexturePaint,
	"particleedit":  scene.ModeParticleEdit,
	"pose":          scene.ModePose,
	"editgpencil":   scene.ModeEditGPencil,
	"paintgpencil":  scene.ModePaintGPencil,
	"sculptgpencil": scene.ModeSculptGPencil,
	"weightgpencil": scene.ModeWeightGPencil,
}

var overlayFlags = map[string]scene.OverlayFlags{
	"wireframes":       scene.OverlayWireframes,
	"faceorientation":  scene.OverlayFaceOrientation,
	"hideobjectextras": scene.OverlayHideObjectExtras,
	"hidemotionpaths":  scene.OverlayHideMotionPaths,
	"boneselect":       scene.OverlayBoneSelect,
}

var editOverlayFlags = map[string]scene.OverlayEditFlags{
	"occludewire": scene.OverlayEditOccludeWire,
	"weight":      scene.OverlayEditWeight,
}

var pbvhTypes = map[string]scene.PBVHType{
	"":      scene.PBVHNone,
	"faces": scene.PBVHFaces,
	"grids": scene.PBVHGrids,
	"bmesh": scene.PBVHBMesh,
}

// lookup finds a name case-insensitively, ignoring underscores and dashes.
func lookup[T any](table map[string]T, what, name string) (T, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
	v, ok := table[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown %s %q", what, name)
	}
	return v, nil
}

func lookupFlags[T ~uint16 | ~uint32](table map[string]T, what string, names []string) (T, error) {
	var flags T
	for _, name := range names {
		f, err := lookup(table, what, name)
		if err != nil {
			return 0, err
		}
		flags |= f
	}
	return flags, nil
}

// builtScene is a scene file converted to engine input.
type builtScene struct {
	ctx     *scene.Context
	purpose draw.Purpose
	objects []*scene.Object
}

func (sf *sceneFile) build() (*builtScene, error) {
	purpose, err := lookup(purposes, "purpose", sf.Purpose)
	if err != nil {
		return nil, err
	}
	objectMode, err := lookupFlags(modes, "mode", sf.Modes)
	if err != nil {
		return nil, err
	}
	v3d, err := sf.View.build()
	if err != nil {
		return nil, err
	}
	rv, err := sf.Region.build()
	if err != nil {
		return nil, err
	}

	ctx := &scene.Context{
		ObjectMode:          objectMode,
		View3D:              v3d,
		Region:              rv,
		TransformInProgress: sf.Transforming,
	}

	byID := make(map[string]*scene.Object)
	var objects []*scene.Object
	for i := range sf.Objects {
		of := &sf.Objects[i]
		obs, err := of.build()
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", of.ID, err)
		}
		byID[of.ID] = obs[0]
		objects = append(objects, obs...)
	}

	ref := func(field, id string) (*scene.Object, error) {
		if id == "" {
			return nil, nil
		}
		ob, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s: unknown object %q", field, id)
		}
		return ob, nil
	}
	if ctx.ActiveObject, err = ref("active", sf.Active); err != nil {
		return nil, err
	}
	if ctx.EditObject, err = ref("edit", sf.Edit); err != nil {
		return nil, err
	}
	if ctx.PoseObject, err = ref("pose", sf.Pose); err != nil {
		return nil, err
	}

	return &builtScene{ctx: ctx, purpose: purpose, objects: objects}, nil
}

func (vf *viewFile) build() (*scene.View3D, error) {
	shading, err := lookup(shadings, "shading", vf.Shading)
	if err != nil {
		return nil, err
	}
	wireColor, err := lookup(wireColors, "wire color", vf.WireColor)
	if err != nil {
		return nil, err
	}
	overlays, err := lookupFlags(overlayFlags, "overlay", vf.Overlays)
	if err != nil {
		return nil, err
	}
	editOverlays, err := lookupFlags(editOverlayFlags, "edit overlay", vf.EditOverlays)
	if err != nil {
		return nil, err
	}

	v3d := &scene.View3D{
		Overlay: scene.Overlay{
			Flag:               overlays,
			EditFlag:           editOverlays,
			WireframeThreshold: vf.WireframeThreshold,
		},
		Shading: scene.Shading{
			Type:          shading,
			WireColor:     wireColor,
			XRayAlpha:     vf.XRayAlpha,
			XRayAlphaWire: vf.XRayAlpha,
		},
		CameraID: vf.Camera,
	}
	if vf.XRay {
		v3d.Shading.Flag |= scene.ShadingXRay | scene.ShadingXRayWireframe
	}
	if vf.SelectOutline {
		v3d.Flag |= scene.ViewSelectOutline
	}
	if vf.HideOverlays {
		v3d.Flag2 |= scene.ViewHideOverlays
	}
	return v3d, nil
}

func (rf *regionFile) build() (*scene.RegionView, error) {
	persp, err := lookup(persps, "perspective", rf.Persp)
	if err != nil {
		return nil, err
	}
	rv := &scene.RegionView{
		Persp:    persp,
		IsPersp:  persp != scene.PerspOrtho,
		Dist:     rf.Dist,
		Clipping: rf.Clipping,
	}
	if rv.Dist == 0 {
		rv.Dist = 10
	}
	return rv, nil
}

// build returns the object, or its instances when it is duplicated.
func (of *objectFile) build() ([]*scene.Object, error) {
	kind, err := scene.ParseKind(of.Kind)
	if err != nil {
		return nil, err
	}
	display, err := lookup(displays, "display type", of.Display)
	if err != nil {
		return nil, err
	}
	objectMode, err := lookupFlags(modes, "mode", of.Modes)
	if err != nil {
		return nil, err
	}
	pbvh, err := lookup(pbvhTypes, "sculpt PBVH", of.Sculpt)
	if err != nil {
		return nil, err
	}

	ob := &scene.Object{
		ID:              of.ID,
		Kind:            kind,
		Display:         display,
		Mode:            objectMode,
		ParticleSystems: of.ParticleSystems,
		DupliSource:     scene.DupliKey(of.Dupli),
	}
	if of.Selected {
		ob.Base |= scene.BaseSelected
	}
	if of.InFront {
		ob.Draw |= scene.DrawInFront
	}
	if of.Wire {
		ob.Draw |= scene.DrawWire
	}
	if of.AllEdges {
		ob.Draw |= scene.DrawAllEdges
	}
	if pbvh != scene.PBVHNone {
		ob.Sculpt = &scene.SculptSession{PBVH: pbvh}
	}

	if kind == scene.KindMesh {
		ob.Mesh = &scene.Mesh{Edges: of.Edges, Vertices: of.Vertices}
		if of.EditMode {
			final := &scene.MeshEval{Name: of.ID + "_final"}
			ob.Mesh.Edit = &scene.EditMesh{Final: final}
			if of.Cage {
				ob.Mesh.Edit.Cage = &scene.MeshEval{Name: of.ID + "_cage"}
			}
		}
	} else {
		ob.EditMode = of.EditMode
	}

	if of.Edges > 0 {
		ob.FaceWireframe = &scene.Batch{Name: of.ID + "_wire", Vertices: 2 * of.Edges}
	}
	if of.LooseEdges {
		ob.LooseEdges = &scene.Batch{Name: of.ID + "_loose_edges"}
	}
	if of.Vertices > 0 {
		ob.AllVerts = &scene.Batch{Name: of.ID + "_verts", Vertices: of.Vertices}
	}

	if ob.DupliSource == "" || of.Instances <= 1 {
		return []*scene.Object{ob}, nil
	}
	obs := make([]*scene.Object, of.Instances)
	for i := range obs {
		inst := *ob
		inst.ID = fmt.Sprintf("%s.%03d", of.ID, i)
		inst.Base |= scene.BaseFromDupli
		obs[i] = &inst
	}
	return obs, nil
}
