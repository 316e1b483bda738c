// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BaseVertexShader is the vertex shader for the opaque base mesh.
//
//go:embed base.vert
var BaseVertexShader string

// BaseFragmentShader is the fragment shader for the opaque base mesh.
//
//go:embed base.frag
var BaseFragmentShader string

// ShellVertexShader displaces shell layers by the wind force.
//
//go:embed shell.vert
var ShellVertexShader string

// ShellFragmentShader draws strand cross-sections for one shell layer.
//
//go:embed shell.frag
var ShellFragmentShader string

// FinVertexShader bends fin tips with the wind force.
//
//go:embed fin.vert
var FinVertexShader string

// FinFragmentShader draws strands along a fin quad.
//
//go:embed fin.frag
var FinFragmentShader string
