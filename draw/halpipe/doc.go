// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halpipe builds render pipelines for overlay passes on a
// gogpu/wgpu HAL device.
//
// A pass carries a draw.State and each shading group a stencil mask. Cache
// translates the pair into a hal.RenderPipelineDescriptor, compiles the
// group's WGSL shader to SPIR-V with naga and keeps the resulting pipelines
// for reuse. Backend wraps another draw.Backend and resolves the pipelines
// of every submitted pass before forwarding it.
//
//	cache, err := halpipe.NewCache(device)
//	if err != nil {
//		return err
//	}
//	defer cache.Destroy()
//
//	b := halpipe.NewBackend(next, cache, gputypes.TextureFormatBGRA8Unorm)
//	engine.Draw(f) // f.Backend = b
//	if err := b.Err(); err != nil {
//		return err
//	}
package halpipe
