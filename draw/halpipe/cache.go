// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/overlay/draw"
)

// Stats are the counters of a Cache.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Pipelines int
	Modules   int
}

// Cache creates render pipelines on first use and keeps them until Destroy.
//
// Cache is safe for concurrent use: viewports drawn from different
// goroutines may share one cache.
type Cache struct {
	device hal.Device

	mu         sync.RWMutex
	bindLayout hal.BindGroupLayout
	layout     hal.PipelineLayout
	modules    map[*draw.Shader]hal.ShaderModule
	pipelines  map[Key]hal.RenderPipeline
	destroyed  bool

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache and the pipeline layout shared by overlay
// shaders: the globals block at binding 0 and the group parameters at
// binding 1 of group 0.
func NewCache(device hal.Device) (*Cache, error) {
	if device == nil {
		return nil, ErrNilDevice
	}

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "overlay_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("halpipe: create bind group layout: %w", err)
	}

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "overlay_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		device.DestroyBindGroupLayout(bindLayout)
		return nil, fmt.Errorf("halpipe: create pipeline layout: %w", err)
	}

	return &Cache{
		device:     device,
		bindLayout: bindLayout,
		layout:     layout,
		modules:    make(map[*draw.Shader]hal.ShaderModule),
		pipelines:  make(map[Key]hal.RenderPipeline),
	}, nil
}

// Get returns the pipeline of key, creating it on first use.
func (c *Cache) Get(key Key) (hal.RenderPipeline, error) {
	if key.Shader == nil {
		return nil, ErrNoShader
	}
	key = key.normalize()

	// Fast path: read lock
	c.mu.RLock()
	if c.destroyed {
		c.mu.RUnlock()
		return nil, ErrDestroyed
	}
	p, ok := c.pipelines[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil, ErrDestroyed
	}
	// Double-check: another goroutine may have created it.
	if p, ok := c.pipelines[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	c.misses.Add(1)

	module, err := c.moduleLocked(key.Shader)
	if err != nil {
		return nil, err
	}
	p, err = c.device.CreateRenderPipeline(descriptor(key, module, c.layout))
	if err != nil {
		return nil, fmt.Errorf("halpipe: create pipeline %s: %w", key.label(), err)
	}
	c.pipelines[key] = p

	slogger().Debug("halpipe: created pipeline",
		"shader", key.Shader.Name,
		"state", key.State.String(),
		"format", key.Format,
		"pipelines", len(c.pipelines))
	return p, nil
}

// moduleLocked returns the shader module of sh. c.mu must be held.
func (c *Cache) moduleLocked(sh *draw.Shader) (hal.ShaderModule, error) {
	if m, ok := c.modules[sh]; ok {
		return m, nil
	}
	if sh.Source == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, sh.Name)
	}
	spirv, err := CompileSPIRV(sh.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sh.Name, err)
	}
	m, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  sh.Name,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("halpipe: create shader module %s: %w", sh.Name, err)
	}
	c.modules[sh] = m
	return m, nil
}

// Stats returns the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Pipelines: len(c.pipelines),
		Modules:   len(c.modules),
	}
}

// Destroy releases every pipeline, module and layout. Get fails with
// ErrDestroyed afterwards. Destroy is idempotent.
func (c *Cache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.destroyed = true

	for k, p := range c.pipelines {
		c.device.DestroyRenderPipeline(p)
		delete(c.pipelines, k)
	}
	for sh, m := range c.modules {
		c.device.DestroyShaderModule(m)
		delete(c.modules, sh)
	}
	if c.layout != nil {
		c.device.DestroyPipelineLayout(c.layout)
		c.layout = nil
	}
	if c.bindLayout != nil {
		c.device.DestroyBindGroupLayout(c.bindLayout)
		c.bindLayout = nil
	}
}
