// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halpipe

import "errors"

var (
	// ErrNilDevice is returned by NewCache without a device.
	ErrNilDevice = errors.New("halpipe: nil device")

	// ErrNoShader is returned for a key without a shader.
	ErrNoShader = errors.New("halpipe: no shader")

	// ErrNoSource is returned for a shader without WGSL source.
	ErrNoSource = errors.New("halpipe: shader has no source")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// hal.Device.
	ErrNoHALDevice = errors.New("halpipe: provider has no HAL device")

	// ErrDestroyed is returned by a cache after Destroy.
	ErrDestroyed = errors.New("halpipe: cache destroyed")
)
