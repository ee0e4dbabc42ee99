// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wireframe implements the wireframe overlay category.
//
// Renderer decides per object whether its wires are drawn from the face
// wireframe batch, from the sculpt PBVH, or as loose edges and points
// through the extra call buffers, and into which of its ten shading groups
// the draw call goes.
//
// Wires are drawn with a view whose depth is offset towards the camera to
// avoid fighting with the surfaces they lie on. Objects drawn in front use
// a second pass submitted twice with a stencil test in between, see
// Renderer.InFrontDraw.
package wireframe
