// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package wgsl

import "github.com/gogpu/rtshader/program"

// Options configures WGSL code generation.
type Options struct {
	// VertexEntry names the vertex entry point.
	// Defaults to "vs_main" if empty.
	VertexEntry string

	// FragmentEntry names the fragment entry point.
	// Defaults to "fs_main" if empty.
	FragmentEntry string

	// Preamble is emitted verbatim ahead of the generated
	// declarations. Helper functions called by invocation atoms
	// belong here.
	Preamble string
}

// DefaultOptions returns sensible default options for WGSL generation.
func DefaultOptions() Options {
	return Options{
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
	}
}

// TranslationInfo contains metadata about the generated module.
type TranslationInfo struct {
	// VertexEntry is the emitted vertex entry point name, empty when
	// the set has no vertex program.
	VertexEntry string

	// FragmentEntry is the emitted fragment entry point name, empty
	// when the set has no fragment program.
	FragmentEntry string

	// UniformCount is the number of fields in the Uniforms struct.
	UniformCount int

	// SamplerCount is the number of texture/sampler pairs.
	SamplerCount int

	// BindingCount is the number of resource bindings in group 0.
	BindingCount int
}

// Write generates WGSL source code for a program set.
// Returns the WGSL source as a string, translation info, or an error.
func Write(set *program.Set, options Options) (string, TranslationInfo, error) {
	if set == nil || (set.Vertex == nil && set.Fragment == nil) {
		return "", TranslationInfo{}, NewError(ErrInvalidProgram, "set has no programs")
	}

	// Apply defaults for empty entry names
	if options.VertexEntry == "" {
		options.VertexEntry = "vs_main"
	}
	if options.FragmentEntry == "" {
		options.FragmentEntry = "fs_main"
	}

	w := newWriter(set, &options)
	if err := w.writeModule(); err != nil {
		return "", TranslationInfo{}, err
	}

	return w.String(), w.info, nil
}

// WriteProgram generates WGSL source code for a single program.
func WriteProgram(p *program.Program, options Options) (string, TranslationInfo, error) {
	if p == nil {
		return "", TranslationInfo{}, NewError(ErrInvalidProgram, "program is nil")
	}

	set := &program.Set{}
	switch p.Stage() {
	case program.StageVertex:
		set.Vertex = p
	case program.StageFragment:
		set.Fragment = p
	}
	return Write(set, options)
}
