// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "golang.org/x/image/math/f32"

// Theme holds the colours overlay categories draw with.
// It is also bound to shaders as the globals uniform block.
type Theme struct {
	Wire        f32.Vec4
	WireEdit    f32.Vec4
	Active      f32.Vec4
	Select      f32.Vec4
	Transform   f32.Vec4
	Light       f32.Vec4
	Speaker     f32.Vec4
	Camera      f32.Vec4
	Empty       f32.Vec4
	Dupli       f32.Vec4
	DupliSelect f32.Vec4
}

// DefaultTheme returns the stock overlay colours.
func DefaultTheme() *Theme {
	return &Theme{
		Wire:        f32.Vec4{0, 0, 0, 1},
		WireEdit:    f32.Vec4{0, 0, 0, 1},
		Active:      f32.Vec4{1, 0.667, 0.251, 1},
		Select:      f32.Vec4{0.945, 0.345, 0, 1},
		Transform:   f32.Vec4{1, 1, 1, 1},
		Light:       f32.Vec4{0, 0, 0, 0.157},
		Speaker:     f32.Vec4{0, 0, 0, 1},
		Camera:      f32.Vec4{0, 0, 0, 1},
		Empty:       f32.Vec4{0, 0, 0, 1},
		Dupli:       f32.Vec4{0.376, 0.376, 0.376, 1},
		DupliSelect: f32.Vec4{0.639, 0.459, 0.243, 1},
	}
}
