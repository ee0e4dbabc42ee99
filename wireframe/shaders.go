// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wireframe

import (
	_ "embed"

	"github.com/gogpu/overlay/draw"
)

//go:embed shaders/wireframe.wgsl
var wireframeShaderSource string

//go:embed shaders/wireframe_select.wgsl
var wireframeSelectShaderSource string

var (
	// Shader draws coloured wires.
	Shader = &draw.Shader{Name: "wireframe", Source: wireframeShaderSource}
	// SelectShader draws wires into selection and depth buffers.
	SelectShader = &draw.Shader{Name: "wireframe_select", Source: wireframeSelectShaderSource}
)
