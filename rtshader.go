// Package rtshader assembles shader programs at runtime.
//
// rtshader builds vertex and fragment programs from typed parameters and
// ordered function atoms, renders them to WGSL, and compiles the result
// to SPIR-V through the naga compiler:
//   - program — parameter resolution and atom assembly
//   - wgsl — WGSL source generation for an assembled set
//
// The package provides a high-level API for the full pipeline as well as
// access to the individual assembly and generation stages.
//
// Example usage (SPIR-V):
//
//	set := program.NewSet()
//
//	vs := set.Vertex.EntryFunction()
//	iPos, _ := vs.ResolveInputParameter(program.SemanticPosition, 0,
//		program.ContentPositionObjectSpace, program.GpuFloat4)
//	oPos, _ := vs.ResolveOutputParameter(program.SemanticPosition, 0,
//		program.ContentPositionProjectiveSpace, program.GpuFloat4)
//	vs.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))
//
//	fs := set.Fragment.EntryFunction()
//	oColor, _ := fs.ResolveOutputParameter(program.SemanticColor, -1,
//		program.ContentColorDiffuse, program.GpuFloat4)
//	fs.Stage(program.FSColorEnd).CallFunction("flatColor", program.Out(oColor))
//
//	spirv, err := rtshader.CompileSPIRV(set, wgsl.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For the generated source without compilation, use BuildWGSL:
//
//	source, info, err := rtshader.BuildWGSL(set, wgsl.DefaultOptions())
package rtshader

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/rtshader/program"
	"github.com/gogpu/rtshader/wgsl"
)

// DefaultOptions returns sensible default generation options.
func DefaultOptions() wgsl.Options {
	return wgsl.DefaultOptions()
}

// BuildWGSL generates WGSL source code for an assembled program set.
//
// This is the generation stage alone. The returned source can be fed to
// any WGSL consumer; the translation info reports the entry point names
// and resource bindings the caller needs to set up a pipeline.
func BuildWGSL(set *program.Set, options wgsl.Options) (string, wgsl.TranslationInfo, error) {
	return wgsl.Write(set, options)
}

// CompileSPIRV generates WGSL for an assembled program set and compiles
// it to a SPIR-V binary.
//
// The pipeline is:
//  1. Render the set to WGSL source
//  2. Compile the source with naga (parse, lower, validate, generate)
func CompileSPIRV(set *program.Set, options wgsl.Options) ([]byte, error) {
	source, _, err := wgsl.Write(set, options)
	if err != nil {
		return nil, err
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compiling generated WGSL: %w", err)
	}
	return spirvBytes, nil
}

// CompileSPIRVWords compiles an assembled program set to SPIR-V as
// uint32 words, the form GPU APIs consume directly.
func CompileSPIRVWords(set *program.Set, options wgsl.Options) ([]uint32, error) {
	spirvBytes, err := CompileSPIRV(set, options)
	if err != nil {
		return nil, err
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
