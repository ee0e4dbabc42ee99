// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/draw/recorder"
	"github.com/gogpu/overlay/scene"
	"github.com/gogpu/overlay/wireframe"
)

const testShaderSource = `
@vertex
fn vs_main(@location(0) pos: vec3<f32>, @location(1) wd: f32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 1.0 + wd * 0.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

// createNoopDevice creates a noop device for testing.
// Returns the device and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, cleanup
}

// captureDevice records the pipeline descriptors it is asked to create.
type captureDevice struct {
	hal.Device

	mu    sync.Mutex
	descs []*hal.RenderPipelineDescriptor
}

func (d *captureDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	d.mu.Lock()
	d.descs = append(d.descs, desc)
	d.mu.Unlock()
	return d.Device.CreateRenderPipeline(desc)
}

func newTestCache(t *testing.T) (*Cache, *captureDevice) {
	t.Helper()
	device, cleanup := createNoopDevice(t)
	dev := &captureDevice{Device: device}
	c, err := NewCache(dev)
	if err != nil {
		cleanup()
		t.Fatalf("NewCache failed: %v", err)
	}
	t.Cleanup(func() {
		c.Destroy()
		cleanup()
	})
	return c, dev
}

func TestCompileSPIRV(t *testing.T) {
	words, err := CompileSPIRV(testShaderSource)
	if err != nil {
		t.Fatalf("CompileSPIRV failed: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("CompileSPIRV returned no words")
	}
	if words[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", words[0])
	}
}

func TestCompileSPIRVError(t *testing.T) {
	if _, err := CompileSPIRV("fn broken( {"); err == nil {
		t.Error("CompileSPIRV should fail on invalid WGSL")
	}
}

func TestCompileWireframeShaders(t *testing.T) {
	for _, sh := range []*draw.Shader{wireframe.Shader, wireframe.SelectShader} {
		t.Run(sh.Name, func(t *testing.T) {
			if _, err := CompileSPIRV(sh.Source); err != nil {
				t.Errorf("CompileSPIRV(%s) failed: %v", sh.Name, err)
			}
		})
	}
}

func TestDepthStencil(t *testing.T) {
	tests := []struct {
		name        string
		state       draw.State
		depthWrite  bool
		depth       gputypes.CompareFunction
		stencil     gputypes.CompareFunction
		passOp      hal.StencilOperation
		stencilMask uint32
	}{
		{
			name:       "opaque wires",
			state:      draw.StateWriteColor | draw.StateWriteDepth | draw.StateDepthLessEqual | draw.StateStencilEqual,
			depthWrite: true,
			depth:      gputypes.CompareFunctionLessEqual,
			stencil:    gputypes.CompareFunctionEqual,
			passOp:     hal.StencilOperationKeep,
		},
		{
			name:        "xray depth pass",
			state:       draw.StateWriteDepth | draw.StateWriteStencil | draw.StateDepthGreaterEqual | draw.StateStencilNotEqual,
			depthWrite:  true,
			depth:       gputypes.CompareFunctionGreaterEqual,
			stencil:     gputypes.CompareFunctionNotEqual,
			passOp:      hal.StencilOperationReplace,
			stencilMask: 0xFF,
		},
		{
			name:        "stencil always write",
			state:       draw.StateWriteStencil | draw.StateStencilAlways,
			depth:       gputypes.CompareFunctionAlways,
			stencil:     gputypes.CompareFunctionAlways,
			passOp:      hal.StencilOperationReplace,
			stencilMask: 0xFF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := DepthStencil(tt.state)
			if ds.DepthWriteEnabled != tt.depthWrite {
				t.Errorf("DepthWriteEnabled = %v, want %v", ds.DepthWriteEnabled, tt.depthWrite)
			}
			if ds.DepthCompare != tt.depth {
				t.Errorf("DepthCompare = %v, want %v", ds.DepthCompare, tt.depth)
			}
			if ds.StencilFront.Compare != tt.stencil || ds.StencilBack.Compare != tt.stencil {
				t.Errorf("stencil compare = %v/%v, want %v", ds.StencilFront.Compare, ds.StencilBack.Compare, tt.stencil)
			}
			if ds.StencilFront.PassOp != tt.passOp {
				t.Errorf("PassOp = %v, want %v", ds.StencilFront.PassOp, tt.passOp)
			}
			if ds.StencilFront.FailOp != hal.StencilOperationKeep {
				t.Errorf("FailOp = %v, want Keep", ds.StencilFront.FailOp)
			}
			if ds.StencilWriteMask != tt.stencilMask {
				t.Errorf("StencilWriteMask = %#x, want %#x", ds.StencilWriteMask, tt.stencilMask)
			}
			if ds.StencilReadMask != 0xFF {
				t.Errorf("StencilReadMask = %#x, want 0xFF", ds.StencilReadMask)
			}
		})
	}
}

func TestStencilOp(t *testing.T) {
	tests := []struct {
		in   gputypes.StencilOperation
		want hal.StencilOperation
	}{
		{gputypes.StencilOperationKeep, hal.StencilOperationKeep},
		{gputypes.StencilOperationZero, hal.StencilOperationZero},
		{gputypes.StencilOperationReplace, hal.StencilOperationReplace},
		{gputypes.StencilOperationInvert, hal.StencilOperationInvert},
		{gputypes.StencilOperationIncrementClamp, hal.StencilOperationIncrementClamp},
		{gputypes.StencilOperationDecrementClamp, hal.StencilOperationDecrementClamp},
		{gputypes.StencilOperationIncrementWrap, hal.StencilOperationIncrementWrap},
		{gputypes.StencilOperationDecrementWrap, hal.StencilOperationDecrementWrap},
		{gputypes.StencilOperationUndefined, hal.StencilOperationKeep},
	}
	for _, tt := range tests {
		if got := stencilOp(tt.in); got != tt.want {
			t.Errorf("stencilOp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewCacheNilDevice(t *testing.T) {
	if _, err := NewCache(nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewCache(nil) error = %v, want ErrNilDevice", err)
	}
}

func TestCacheGet(t *testing.T) {
	c, dev := newTestCache(t)
	sh := &draw.Shader{Name: "test", Source: testShaderSource}
	key := Key{
		Shader: sh,
		State:  draw.StateWriteColor | draw.StateDepthLessEqual,
		Format: gputypes.TextureFormatBGRA8Unorm,
	}

	if _, err := c.Get(key); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := c.Get(key); err != nil {
		t.Fatalf("second Get failed: %v", err)
	}

	// Clip planes and the provoking vertex do not change the pipeline.
	clipped := key
	clipped.State |= draw.StateClipPlanes | draw.StateFirstVertexConvention
	if _, err := c.Get(clipped); err != nil {
		t.Fatalf("Get(clipped) failed: %v", err)
	}

	// A different target format does.
	uint32Target := key
	uint32Target.Format = gputypes.TextureFormatRGBA32Uint
	if _, err := c.Get(uint32Target); err != nil {
		t.Fatalf("Get(uint32Target) failed: %v", err)
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 2/2", st.Hits, st.Misses)
	}
	if st.Pipelines != 2 || st.Modules != 1 {
		t.Errorf("pipelines/modules = %d/%d, want 2/1", st.Pipelines, st.Modules)
	}
	if len(dev.descs) != 2 {
		t.Fatalf("created %d pipelines, want 2", len(dev.descs))
	}

	desc := dev.descs[0]
	if desc.Primitive.Topology != gputypes.PrimitiveTopologyLineList {
		t.Errorf("Topology = %v, want LineList", desc.Primitive.Topology)
	}
	if desc.Vertex.EntryPoint != "vs_main" || desc.Fragment.EntryPoint != "fs_main" {
		t.Errorf("entry points = %q/%q", desc.Vertex.EntryPoint, desc.Fragment.EntryPoint)
	}
	if got := desc.Fragment.Targets[0].WriteMask; got != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want All", got)
	}
	if desc.DepthStencil == nil || desc.DepthStencil.DepthCompare != gputypes.CompareFunctionLessEqual {
		t.Error("pipeline should carry the pass depth test")
	}
}

func TestDescriptorBlendAndCull(t *testing.T) {
	sh := &draw.Shader{Name: "test"}
	tests := []struct {
		name   string
		state  draw.State
		format gputypes.TextureFormat
		blend  bool
		cull   gputypes.CullMode
	}{
		{"plain", draw.StateWriteColor, gputypes.TextureFormatBGRA8Unorm, false, gputypes.CullModeNone},
		{"blend", draw.StateWriteColor | draw.StateBlendAlpha, gputypes.TextureFormatBGRA8Unorm, true, gputypes.CullModeNone},
		{"integer target", draw.StateWriteColor | draw.StateBlendAlpha, gputypes.TextureFormatRGBA32Uint, false, gputypes.CullModeNone},
		{"cull", draw.StateCullBack, gputypes.TextureFormatBGRA8Unorm, false, gputypes.CullModeBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := descriptor(Key{Shader: sh, State: tt.state, Format: tt.format}, nil, nil)
			if got := desc.Fragment.Targets[0].Blend != nil; got != tt.blend {
				t.Errorf("blend = %v, want %v", got, tt.blend)
			}
			if desc.Primitive.CullMode != tt.cull {
				t.Errorf("CullMode = %v, want %v", desc.Primitive.CullMode, tt.cull)
			}
		})
	}
}

func TestCacheErrors(t *testing.T) {
	c, _ := newTestCache(t)

	if _, err := c.Get(Key{}); !errors.Is(err, ErrNoShader) {
		t.Errorf("Get(no shader) error = %v, want ErrNoShader", err)
	}
	if _, err := c.Get(Key{Shader: &draw.Shader{Name: "empty"}}); !errors.Is(err, ErrNoSource) {
		t.Errorf("Get(no source) error = %v, want ErrNoSource", err)
	}
	if _, err := c.Get(Key{Shader: &draw.Shader{Name: "bad", Source: "fn broken( {"}}); err == nil {
		t.Error("Get(invalid source) should fail")
	}

	c.Destroy()
	c.Destroy()
	_, err := c.Get(Key{Shader: &draw.Shader{Name: "test", Source: testShaderSource}})
	if !errors.Is(err, ErrDestroyed) {
		t.Errorf("Get after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestCacheConcurrentGet(t *testing.T) {
	c, _ := newTestCache(t)
	sh := &draw.Shader{Name: "test", Source: testShaderSource}
	key := Key{Shader: sh, State: draw.StateWriteColor, Format: gputypes.TextureFormatBGRA8Unorm}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 16 {
				if _, err := c.Get(key); err != nil {
					t.Errorf("Get failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	st := c.Stats()
	if st.Misses != 1 || st.Pipelines != 1 {
		t.Errorf("misses/pipelines = %d/%d, want 1/1", st.Misses, st.Pipelines)
	}
	if st.Hits != 8*16-1 {
		t.Errorf("Hits = %d, want %d", st.Hits, 8*16-1)
	}
}

func TestBackend(t *testing.T) {
	c, _ := newTestCache(t)
	rec := recorder.New()
	b := NewBackend(rec, c, gputypes.TextureFormatBGRA8Unorm)

	sh := &draw.Shader{Name: "test", Source: testShaderSource}
	p := draw.NewPass("wires", draw.StateWriteColor|draw.StateDepthLessEqual)
	used := p.NewShadingGroup(sh)
	used.SetStencilMask(0xFF)
	used.Call(&scene.Batch{Name: "cube"}, nil)
	p.NewShadingGroup(sh) // empty, skipped

	view := &draw.View{Name: "wires"}
	fb := &draw.Framebuffer{Name: "default"}
	b.BindFramebuffer(fb)
	b.SetActiveView(view)
	b.ClearDepth(fb, 1)
	b.DrawPass(p)

	if err := b.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if b.Resolved() != 1 {
		t.Errorf("Resolved() = %d, want 1", b.Resolved())
	}
	if got := len(rec.Commands()); got != 4 {
		t.Errorf("forwarded %d commands, want 4", got)
	}
	if subs := rec.Submissions(p); len(subs) != 1 || subs[0].View != view {
		t.Error("pass should be forwarded with the active view")
	}
}

func TestBackendCollectsErrors(t *testing.T) {
	c, _ := newTestCache(t)
	rec := recorder.New()
	b := NewBackend(rec, c, gputypes.TextureFormatBGRA8Unorm)

	p := draw.NewPass("broken", draw.StateWriteColor)
	p.NewShadingGroup(&draw.Shader{Name: "empty"}).Call(&scene.Batch{}, nil)
	b.DrawPass(p)

	if err := b.Err(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Err() = %v, want ErrNoSource", err)
	}
	if len(rec.Draws()) != 1 {
		t.Error("pass should be forwarded despite the error")
	}
}
