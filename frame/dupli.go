// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/scene"
)

// DupliData is the draw state shared by the instances of one duplicated
// object.
type DupliData struct {
	// WireGroup and WireGeom are the wireframe shading group and geometry
	// chosen for the first instance. Both nil means nothing to draw.
	WireGroup *draw.ShadingGroup
	WireGeom  *scene.Batch
	// BaseFlag is the base flag of the last populated instance.
	BaseFlag scene.BaseFlags

	// Draw flags, display type and wire batch of the last populated
	// instance. A change to any of them invalidates the entry.
	drawFlag scene.DrawFlags
	display  scene.DisplayType
	wire     *scene.Batch

	gen uint64
}

// Record snapshots the state of ob the entry was filled for.
func (d *DupliData) Record(ob *scene.Object) {
	d.BaseFlag = ob.Base
	d.drawFlag = ob.Draw
	d.display = ob.Display
	d.wire = ob.FaceWireframe
}

// DupliCache maps duplication sources to their shared draw state.
// It outlives frames; entries not used during a frame are evicted by Sweep.
// An entry is refilled when the instance drawn differs from the recorded
// state (see Stale). Other object data, such as the mesh contents behind an
// unchanged batch, is assumed stable while the source exists.
type DupliCache struct {
	entries map[scene.DupliKey]*DupliData
	gen     uint64
}

// NewDupliCache creates an empty cache.
func NewDupliCache() *DupliCache {
	return &DupliCache{entries: make(map[scene.DupliKey]*DupliData)}
}

// Supported reports whether objects of kind k get a cache entry.
func Supported(k scene.Kind) bool {
	switch k {
	case scene.KindMesh, scene.KindSurface, scene.KindLattice, scene.KindCurve, scene.KindFont:
		return true
	}
	return false
}

// Stale reports whether d was filled for an object state different from
// ob's: base flag, draw flags, display type or wire batch.
func Stale(d *DupliData, ob *scene.Object) bool {
	return d.BaseFlag != ob.Base ||
		d.drawFlag != ob.Draw ||
		d.display != ob.Display ||
		d.wire != ob.FaceWireframe
}

// Begin starts a new frame generation.
func (c *DupliCache) Begin() {
	c.gen++
}

// Lookup returns the entry of ob's duplication source, creating it if
// absent. It returns nil for objects that are not duplicated instances or
// whose kind is not cached. needsInit is true for new and stale entries.
func (c *DupliCache) Lookup(ob *scene.Object) (d *DupliData, needsInit bool) {
	if ob.DupliSource == "" || !Supported(ob.Kind) {
		return nil, false
	}
	d, ok := c.entries[ob.DupliSource]
	if !ok {
		d = &DupliData{}
		c.entries[ob.DupliSource] = d
		needsInit = true
	} else if Stale(d, ob) {
		needsInit = true
	}
	d.gen = c.gen
	return d, needsInit
}

// Sweep evicts the entries not looked up since the last Begin and returns
// how many were removed.
func (c *DupliCache) Sweep() int {
	n := 0
	for k, d := range c.entries {
		if d.gen != c.gen {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of entries.
func (c *DupliCache) Len() int { return len(c.entries) }

// Clear removes every entry.
func (c *DupliCache) Clear() {
	clear(c.entries)
}
