// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package wgsl generates WGSL source code from assembled shader
// programs.
//
// The writer consumes a program.Set (or a single program.Program) and
// emits a complete WGSL module: stage input and output structs with
// @location and @builtin(position) bindings, a Uniforms struct bound
// at @group(0) @binding(0), texture/sampler global pairs for sampler
// uniforms, and one entry point per stage whose body is the linearized
// atom sequence.
//
// # Basic Usage
//
//	source, info, err := wgsl.Write(set, wgsl.Options{})
//
// # Varying Matching
//
// Vertex outputs and fragment inputs are matched by (semantic, index)
// and assigned the same @location, so the two stages link regardless
// of the order in which features resolved their parameters.
//
// # Helper Functions
//
// Function invocation atoms call helpers by name. The writer does not
// synthesize helper bodies; callers provide them through
// Options.Preamble, which is emitted verbatim ahead of the generated
// declarations.
package wgsl
