// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/overlay/draw"
)

// DeviceProvider gives the pipeline cache access to the GPU device of the
// host application.
//
// DeviceProvider is an alias for gpucontext.DeviceProvider, so hosts built
// on the gpucontext ecosystem (gogpu windows, headless sessions) can be
// passed directly.
type DeviceProvider = gpucontext.DeviceProvider

// halProvider is implemented by providers whose Device returns a wrapper
// and expose the HAL device separately.
type halProvider interface {
	HalDevice() any
}

// NewCacheFromProvider creates a cache on the device of p. The provider's
// Device must be a hal.Device, or p must expose one through HalDevice() any.
func NewCacheFromProvider(p DeviceProvider) (*Cache, error) {
	if p == nil {
		return nil, ErrNilDevice
	}
	device, err := providerDevice(p)
	if err != nil {
		return nil, err
	}
	slogger().Debug("halpipe: using provider device",
		"adapter", p.AdapterInfo().Name,
		"type", p.AdapterInfo().Type.String())
	return NewCache(device)
}

func providerDevice(p DeviceProvider) (hal.Device, error) {
	if d, ok := p.Device().(hal.Device); ok && d != nil {
		return d, nil
	}
	if hp, ok := p.(halProvider); ok {
		if d, ok := hp.HalDevice().(hal.Device); ok && d != nil {
			return d, nil
		}
	}
	return nil, ErrNoHALDevice
}

// TargetFormat returns the colour format pipelines are built for. Selection
// writes integer IDs; other purposes render to the provider's surface
// format, or BGRA8Unorm when the provider has no surface.
func TargetFormat(p DeviceProvider, purpose draw.Purpose) gputypes.TextureFormat {
	if purpose.IsSelect() {
		return gputypes.TextureFormatRGBA32Uint
	}
	if p != nil {
		if f := p.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return gputypes.TextureFormatBGRA8Unorm
}
