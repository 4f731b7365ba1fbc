// Command rtshadergen assembles a fixed-function style shader pipeline
// and emits it as WGSL or SPIR-V.
//
// Usage:
//
//	rtshadergen [options]
//
// Examples:
//
//	rtshadergen                          # Print WGSL for a flat pipeline
//	rtshadergen -texture -vertexcolor    # Modulate a texture by vertex color
//	rtshadergen -texture -texcoords 2    # Two texture layers
//	rtshadergen -texture -o shader.spv   # Compile to SPIR-V
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gogpu/rtshader"
	"github.com/gogpu/rtshader/program"
)

var (
	output      = flag.String("o", "", "output file; compiles to SPIR-V (default: WGSL to stdout)")
	texture     = flag.Bool("texture", false, "sample diffuse texture layers")
	texcoords   = flag.Int("texcoords", 1, "texture coordinate sets when -texture is set")
	vertexColor = flag.Bool("vertexcolor", false, "use the per-vertex color attribute")
	version     = flag.Bool("version", false, "print version")
)

const rtshaderVersion = "0.1.0-dev"

// transformHelper multiplies a position by the world-view-projection
// matrix. Invoked from the assembled vertex stage.
const transformHelper = `fn transformPosition(m: mat4x4<f32>, v: vec4<f32>) -> vec4<f32> {
    return m * v;
}
`

// modulateHelper combines a base color with a sampled texel.
const modulateHelper = `fn modulate(a: vec4<f32>, b: vec4<f32>) -> vec4<f32> {
    return a * b;
}
`

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("rtshadergen version %s\n", rtshaderVersion)
		return
	}

	if *texcoords < 1 || *texcoords > 8 {
		fmt.Fprintln(os.Stderr, "Error: -texcoords must be between 1 and 8")
		os.Exit(1)
	}

	set, err := buildSet(*texture, *vertexColor, *texcoords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	options := rtshader.DefaultOptions()
	options.Preamble = transformHelper
	if *texture {
		options.Preamble += "\n" + modulateHelper
	}

	if *output != "" {
		// Compile to SPIR-V and write the binary
		spirvBytes, err := rtshader.CompileSPIRV(set, options)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*output, spirvBytes, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled to %s (%d bytes)\n", *output, len(spirvBytes))
		return
	}

	source, info, err := rtshader.BuildWGSL(set, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(source)
	fmt.Fprintf(os.Stderr, "entries: %s, %s; uniforms: %d; samplers: %d; bindings: %d\n",
		info.VertexEntry, info.FragmentEntry,
		info.UniformCount, info.SamplerCount, info.BindingCount)
}

// buildSet assembles the requested pipeline: transformed position,
// optionally a vertex color base, optionally modulated texture layers.
func buildSet(textured, colored bool, layers int) (*program.Set, error) {
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos, err := vs.ResolveInputParameter(program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	if err != nil {
		return nil, err
	}
	oPos, err := vs.ResolveOutputParameter(program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	if err != nil {
		return nil, err
	}
	wvp, err := set.Vertex.ResolveUniform("uWorldViewProj", program.GpuMatrix4x4)
	if err != nil {
		return nil, err
	}
	vs.Stage(program.VSTransform).CallFunction("transformPosition",
		program.Out(oPos), program.In(wvp), program.In(iPos))

	fs := set.Fragment.EntryFunction()
	color, err := fs.ResolveLocalParameterByName(program.SemanticUnknown, 0, "color", program.GpuFloat4)
	if err != nil {
		return nil, err
	}

	if colored {
		iColor, err := vs.ResolveInputParameter(program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
		if err != nil {
			return nil, err
		}
		oColor, err := vs.ResolveOutputParameter(program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
		if err != nil {
			return nil, err
		}
		vs.Stage(program.VSColor).Assign(program.Out(oColor), program.In(iColor))

		fColor, err := fs.ResolveInputParameter(program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
		if err != nil {
			return nil, err
		}
		fs.Stage(program.FSColorBegin).Assign(program.Out(color), program.In(fColor))
	} else {
		base, err := set.Fragment.ResolveUniform("uBaseColor", program.GpuFloat4)
		if err != nil {
			return nil, err
		}
		fs.Stage(program.FSColorBegin).Assign(program.Out(color), program.In(base))
	}

	if textured {
		for i := 0; i < layers; i++ {
			content := program.TexcoordContent(i)
			vIn, err := vs.ResolveInputParameter(program.SemanticTexcoord, -1, content, program.GpuFloat2)
			if err != nil {
				return nil, err
			}
			vOut, err := vs.ResolveOutputParameter(program.SemanticTexcoord, -1, content, program.GpuFloat2)
			if err != nil {
				return nil, err
			}
			vs.Stage(program.VSTexturing).Assign(program.Out(vOut), program.In(vIn))

			fIn, err := fs.ResolveInputParameter(program.SemanticTexcoord, -1, content, program.GpuFloat2)
			if err != nil {
				return nil, err
			}
			layer, err := set.Fragment.ResolveUniform("uTexture"+strconv.Itoa(i), program.GpuSampler2D)
			if err != nil {
				return nil, err
			}
			texel, err := fs.ResolveLocalParameterByName(program.SemanticUnknown, i+1, "texel"+strconv.Itoa(i), program.GpuFloat4)
			if err != nil {
				return nil, err
			}
			fs.Stage(program.FSSampling).SampleTexture(
				program.In(layer), program.In(fIn), program.Out(texel))
			fs.Stage(program.FSTexturing).CallFunction("modulate",
				program.InOut(color), program.In(texel))
		}
	}

	oColor, err := fs.ResolveOutputParameter(program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	if err != nil {
		return nil, err
	}
	fs.Stage(program.FSColorEnd).Assign(program.Out(oColor), program.In(color))

	return set, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: rtshadergen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  rtshadergen                        Print WGSL to stdout\n")
	fmt.Fprintf(os.Stderr, "  rtshadergen -texture -vertexcolor  Textured with vertex color\n")
	fmt.Fprintf(os.Stderr, "  rtshadergen -texture -o out.spv    Compile to SPIR-V\n")
}
