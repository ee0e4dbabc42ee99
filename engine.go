// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/scene"
	"github.com/gogpu/overlay/wireframe"
)

// Engine is the overlay orchestrator. It resolves the context mode of each
// frame and sequences the stages of the overlay categories.
//
// The stages of one frame are called in order with the same frame.Frame:
//
//	e.Init(f)
//	e.CacheInit(f)
//	for _, ob := range visible {
//	    e.CachePopulate(f, ob)
//	}
//	e.CacheFinish(f)
//	e.Draw(f)
//
// Engine is not safe for concurrent use.
type Engine struct {
	categories [frame.NumCategories]any
	wireframe  *wireframe.Renderer

	theme   *scene.Theme
	private *frame.Private
	extras  frame.Extras
	dupli   *frame.DupliCache

	// settings of the previous frame, see CacheInit.
	lastSettings settingsKey
	hasSettings  bool
}

// settingsKey holds what the dupli cache entries were computed from.
type settingsKey struct {
	overlay  scene.Overlay
	shading  scene.Shading
	mode     frame.ContextMode
	purpose  draw.Purpose
	clipping draw.State
}

// New creates an overlay engine with the built-in wireframe category and
// the categories registered with WithCategory.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{theme: o.theme, dupli: o.dupli}
	if e.dupli == nil {
		e.dupli = frame.NewDupliCache()
	}
	if _, ok := o.categories[frame.CategoryWireframe]; !ok {
		e.wireframe = wireframe.New()
		e.categories[frame.CategoryWireframe] = e.wireframe
	}
	for id, c := range o.categories {
		if id >= frame.NumCategories {
			Logger().Warn("overlay: ignoring unknown category", "id", int(id))
			continue
		}
		e.categories[id] = c
	}
	return e
}

// Wireframe returns the built-in wireframe renderer, or nil when it was
// replaced with WithCategory.
func (e *Engine) Wireframe() *wireframe.Renderer { return e.wireframe }

// DupliCache returns the dupli cache of the engine.
func (e *Engine) DupliCache() *frame.DupliCache { return e.dupli }

// Private returns the engine state of the current frame, or nil before the
// first Init and after Free.
func (e *Engine) Private() *frame.Private { return e.private }

// Category returns the implementation registered for id, or nil.
func (e *Engine) Category(id frame.CategoryID) any {
	if id >= frame.NumCategories {
		return nil
	}
	return e.categories[id]
}

// attach connects f to the engine state. A frame without a context gets an
// empty one.
func (e *Engine) attach(f *frame.Frame) {
	if e.private == nil {
		e.private = &frame.Private{}
	}
	if f.Ctx == nil {
		f.Ctx = &scene.Context{}
	}
	f.Private = e.private
	f.Extras = &e.extras
	f.Dupli = e.dupli
}

// Init resolves the context mode of the frame and runs the init stage of
// the categories.
func (e *Engine) Init(f *frame.Frame) {
	e.attach(f)
	ctx := f.Ctx
	pd := f.Private

	pd.Reset()
	pd.Theme = e.theme
	pd.Mode = frame.ResolveContextMode(ctx.EditObject, ctx.ActiveObject, ctx.ObjectMode)
	pd.DefaultView = draw.NewView("default", f.Region())

	Logger().Debug("overlay: init", "mode", pd.Mode, "purpose", f.Purpose)

	e.initCategory(f, frame.CategoryAntialiasing)
	for _, id := range routinesFor(pd.Mode).init {
		e.initCategory(f, id)
	}
	for _, id := range initOrder {
		e.initCategory(f, id)
	}
}

// CacheInit snapshots the view settings and creates the passes of the
// frame.
func (e *Engine) CacheInit(f *frame.Frame) {
	e.attach(f)
	ctx := f.Ctx
	pd := f.Private
	v3d := f.View3D()

	if v3d.Flag2&scene.ViewHideOverlays != 0 {
		pd.Overlay = scene.Overlay{}
		pd.ViewFlag = 0
	} else {
		pd.Overlay = v3d.Overlay
		pd.ViewFlag = v3d.Flag
	}
	if v3d.Shading.Type == scene.ShadingWire {
		pd.Overlay.Flag |= scene.OverlayWireframes
	}

	pd.ClippingState = 0
	if rv := f.Region(); rv != nil && rv.Clipping {
		pd.ClippingState = draw.StateClipPlanes
	}
	pd.XRayEnabled = v3d.Shading.XRayActive()
	pd.XRayEnabledAndNotWire = pd.XRayEnabled && v3d.Shading.Type > scene.ShadingWire
	pd.ClearInFront = v3d.Shading.Type != scene.ShadingSolid
	pd.DoPoseFadeGeom = pd.Overlay.Flag.Has(scene.OverlayBoneSelect) &&
		ctx.ObjectMode.Has(scene.ModeWeightPaint) &&
		ctx.PoseObject != nil

	e.beginDupli(f, settingsKey{
		overlay:  pd.Overlay,
		shading:  v3d.Shading,
		mode:     pd.Mode,
		purpose:  f.Purpose,
		clipping: pd.ClippingState,
	})
	f.Extras.Reset()

	for _, id := range routinesFor(pd.Mode).cacheInit {
		e.cacheInitCategory(f, id)
	}
	for _, id := range cacheInitOrder {
		e.cacheInitCategory(f, id)
	}
}

// beginDupli starts a dupli cache generation. Entries filled under other
// settings are dropped: their draw decisions no longer hold.
func (e *Engine) beginDupli(f *frame.Frame, key settingsKey) {
	if e.hasSettings && key != e.lastSettings && f.Dupli.Len() > 0 {
		Logger().Debug("overlay: settings changed, clearing dupli cache", "entries", f.Dupli.Len())
		f.Dupli.Clear()
	}
	e.lastSettings = key
	e.hasSettings = true
	f.Dupli.Begin()
}

// CachePopulate adds the overlays of one visible object.
func (e *Engine) CachePopulate(f *frame.Frame, ob *scene.Object) {
	ctx := f.Ctx
	fl := computeObjectFlags(f, ob)
	dupli, needsInit := f.Dupli.Lookup(ob)

	if fl.drawFacing {
		e.populate(f, frame.CategoryFacing, ob)
	}
	if fl.drawWires {
		e.populateDupli(f, frame.CategoryWireframe, ob, dupli, needsInit)
	}
	if fl.drawOutlines {
		e.populateDupli(f, frame.CategoryOutline, ob, dupli, needsInit)
	}
	if fl.drawBoneSelection {
		e.populate(f, frame.CategoryPose, ob)
	}

	switch {
	case fl.inEditMode:
		if id, ok := editCategory(ob.Kind); ok {
			e.populate(f, id, ob)
		}
	case fl.inPoseMode:
		e.populate(f, frame.CategoryPoseArmature, ob)
	case fl.inPaintMode:
		switch ctx.ObjectMode {
		case scene.ModeVertexPaint, scene.ModeWeightPaint, scene.ModeTexturePaint:
			e.populate(f, frame.CategoryPaint, ob)
		}
	case fl.inParticleEdit:
		e.populate(f, frame.CategoryEditParticle, ob)
	}

	if fl.inSculptMode {
		e.populate(f, frame.CategorySculpt, ob)
	}
	if fl.drawMotionPaths {
		e.populate(f, frame.CategoryMotionPath, ob)
	}

	switch ob.Kind {
	case scene.KindArmature:
		if (!fl.inEditMode && !fl.inPoseMode) || fl.isSelect {
			e.populate(f, frame.CategoryArmature, ob)
		}
	case scene.KindMetaBall:
		if !fl.inEditMode {
			e.populate(f, frame.CategoryMetaball, ob)
		}
	case scene.KindGPencil:
		e.populate(f, frame.CategoryGPencil, ob)
	}

	if fl.drawExtras {
		if id, ok := extrasCategory(ob.Kind); ok {
			e.populate(f, id, ob)
		}
	}

	if ob.ParticleSystems > 0 {
		e.populate(f, frame.CategoryParticle, ob)
	}

	// Relationship lines, centers and bounds.
	e.populate(f, frame.CategoryExtra, ob)

	if dupli != nil {
		dupli.Record(ob)
	}
}

func editCategory(k scene.Kind) (frame.CategoryID, bool) {
	switch k {
	case scene.KindMesh:
		return frame.CategoryEditMesh, true
	case scene.KindArmature:
		return frame.CategoryEditArmature, true
	case scene.KindCurve, scene.KindSurface:
		return frame.CategoryEditCurve, true
	case scene.KindLattice:
		return frame.CategoryEditLattice, true
	case scene.KindMetaBall:
		return frame.CategoryEditMetaball, true
	case scene.KindFont:
		return frame.CategoryEditText, true
	}
	return 0, false
}

func extrasCategory(k scene.Kind) (frame.CategoryID, bool) {
	switch k {
	case scene.KindEmpty:
		return frame.CategoryEmpty, true
	case scene.KindLight:
		return frame.CategoryLight, true
	case scene.KindCamera:
		return frame.CategoryCamera, true
	case scene.KindSpeaker:
		return frame.CategorySpeaker, true
	case scene.KindLightProbe:
		return frame.CategoryLightProbe, true
	case scene.KindLattice:
		return frame.CategoryLattice, true
	}
	return 0, false
}

// CacheFinish runs after every object has been populated. It also evicts
// the dupli entries of sources not seen during the frame.
func (e *Engine) CacheFinish(f *frame.Frame) {
	for _, id := range finishOrder {
		if c, ok := e.categories[id].(frame.Finisher); ok {
			c.CacheFinish(f)
		}
	}
	if n := f.Dupli.Sweep(); n > 0 {
		Logger().Debug("overlay: evicted dupli entries", "count", n)
	}
}

// Draw submits the overlays of the frame to f.Backend.
func (e *Engine) Draw(f *frame.Frame) {
	pd := f.Private
	b := f.Backend
	fbl := f.Framebuffers
	useFBO := f.Purpose.IsFramebuffer() && fbl != nil

	e.antialiasingStart(f)

	b.SetActiveView(pd.DefaultView)
	for _, id := range drawOrder {
		e.draw(f, id)
	}

	b.SetActiveView(nil)
	for _, id := range ambientDrawOrder {
		e.draw(f, id)
	}

	b.SetActiveView(pd.DefaultView)

	if useFBO {
		b.BindFramebuffer(fbl.InFront)
		if pd.ClearInFront {
			b.ClearDepth(fbl.InFront, 1.0)
		}
	}

	for _, id := range inFrontDrawOrder {
		if c, ok := e.categories[id].(frame.InFrontDrawer); ok {
			c.InFrontDraw(f)
		}
	}

	if useFBO {
		b.BindFramebuffer(fbl.Default)
	}

	e.draw(f, frame.CategoryMotionPath)
	if c, ok := e.categories[frame.CategoryExtra].(frame.CentersDrawer); ok {
		c.CentersDraw(f)
	}

	r := routinesFor(pd.Mode)
	if r.finalColor {
		e.antialiasingEnd(f)
	}
	for _, id := range r.draw {
		e.draw(f, id)
	}
	if !r.finalColor {
		e.antialiasingEnd(f)
	}
}

// ViewUpdate restarts antialiasing accumulation after a view change.
func (e *Engine) ViewUpdate() {
	if e.private != nil {
		e.private.AASample = 0
	}
}

// Free releases the engine state. The next Init starts from scratch.
func (e *Engine) Free() {
	e.private = nil
	e.dupli.Clear()
	e.hasSettings = false
	e.extras.Reset()
}

func (e *Engine) initCategory(f *frame.Frame, id frame.CategoryID) {
	if c, ok := e.categories[id].(frame.Initializer); ok {
		c.Init(f)
	}
}

func (e *Engine) cacheInitCategory(f *frame.Frame, id frame.CategoryID) {
	if c, ok := e.categories[id].(frame.CacheInitializer); ok {
		c.CacheInit(f)
	}
}

func (e *Engine) populate(f *frame.Frame, id frame.CategoryID, ob *scene.Object) {
	e.populateDupli(f, id, ob, nil, false)
}

func (e *Engine) populateDupli(f *frame.Frame, id frame.CategoryID, ob *scene.Object, dupli *frame.DupliData, needsInit bool) {
	if c, ok := e.categories[id].(frame.Populator); ok {
		c.CachePopulate(f, ob, dupli, needsInit)
	}
}

func (e *Engine) draw(f *frame.Frame, id frame.CategoryID) {
	if c, ok := e.categories[id].(frame.Drawer); ok {
		c.Draw(f)
	}
}

func (e *Engine) antialiasingStart(f *frame.Frame) {
	if c, ok := e.categories[frame.CategoryAntialiasing].(frame.Antialiaser); ok {
		c.Start(f)
	}
}

// antialiasingEnd resolves the overlay colour and counts the sample.
func (e *Engine) antialiasingEnd(f *frame.Frame) {
	if c, ok := e.categories[frame.CategoryAntialiasing].(frame.Antialiaser); ok {
		c.End(f)
	}
	f.Private.AASample++
}
