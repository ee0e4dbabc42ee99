// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

// Context is the per-frame draw context provided by the host.
type Context struct {
	// EditObject is the object in edit mode, if any.
	EditObject *Object
	// ActiveObject is the active object of the view layer, if any.
	ActiveObject *Object
	// PoseObject is the armature posed by the active object, if any.
	PoseObject *Object
	ObjectMode ObjectMode

	View3D *View3D
	Region *RegionView
	Theme  *Theme

	// TransformInProgress is set while objects are being transformed
	// interactively.
	TransformInProgress bool
}

// IsActive reports whether ob is the active object. Duplicated instances are
// active when their instancing parent is.
func (c *Context) IsActive(ob *Object) bool {
	if c.ActiveObject == nil || ob == nil {
		return false
	}
	if ob.Base.Has(BaseFromDupli) {
		return ob.DupliParent == c.ActiveObject
	}
	return ob == c.ActiveObject
}

// LooksThrough reports whether the view looks through ob as its camera.
func (c *Context) LooksThrough(ob *Object) bool {
	if c.Region == nil || c.View3D == nil {
		return false
	}
	return c.Region.Persp == PerspCamera && c.View3D.CameraID != "" && c.View3D.CameraID == ob.ID
}
