package program

import "fmt"

// ShaderStage identifies a pipeline stage.
type ShaderStage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = iota
	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Program binds the entry function of one pipeline stage to the
// uniform parameters it reads from the render state. Samplers are
// uniforms with a sampler element type.
type Program struct {
	stage    ShaderStage
	entry    *Function
	uniforms []*Parameter
}

// NewProgram creates an empty program for the given stage with a
// default entry function.
func NewProgram(stage ShaderStage) *Program {
	name := "vs_main"
	desc := "vertex shader entry point"
	ftype := FunctionVertexMain
	if stage == StageFragment {
		name = "fs_main"
		desc = "fragment shader entry point"
		ftype = FunctionFragmentMain
	}
	return &Program{
		stage: stage,
		entry: NewFunction(name, desc, ftype),
	}
}

// Stage returns the pipeline stage of the program.
func (p *Program) Stage() ShaderStage { return p.stage }

// EntryFunction returns the function assembled as the stage entry
// point.
func (p *Program) EntryFunction() *Function { return p.entry }

// Uniforms returns the uniform parameters in resolution order.
func (p *Program) Uniforms() []*Parameter { return p.uniforms }

// UniformByName returns the uniform with the given name, or nil when
// there is none.
func (p *Program) UniformByName(name string) *Parameter {
	return ParameterByName(p.uniforms, name)
}

// ResolveUniform returns the uniform with the given name, creating it
// on first use. Resolving an existing name with a different element
// type fails with a type-mismatch error.
func (p *Program) ResolveUniform(name string, gtype GpuType) (*Parameter, error) {
	if u := ParameterByName(p.uniforms, name); u != nil {
		if u.gtype != gtype {
			return nil, &Error{
				Kind:     ErrTypeMismatch,
				Function: p.entry.name,
				Index:    -1,
				Name:     name,
				Message: fmt.Sprintf("cannot resolve uniform <%s> as %s: already declared as %s",
					name, gtype, u.gtype),
			}
		}
		return u, nil
	}

	u := NewParameter(gtype, name, SemanticUnknown, len(p.uniforms), ContentUnknown)
	p.uniforms = append(p.uniforms, u)
	return u, nil
}

// Set groups the programs of one render pipeline.
type Set struct {
	// Vertex is the vertex stage program.
	Vertex *Program

	// Fragment is the fragment stage program.
	Fragment *Program
}

// NewSet creates a set with fresh vertex and fragment programs.
func NewSet() *Set {
	return &Set{
		Vertex:   NewProgram(StageVertex),
		Fragment: NewProgram(StageFragment),
	}
}
