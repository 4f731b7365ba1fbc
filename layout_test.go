package rtshader

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rtshader/program"
	"github.com/gogpu/rtshader/wgsl"
)

// TestVertexLayoutLocationsMatchWriter tests that the derived layout
// lines up with the VertexInput struct the writer emits.
func TestVertexLayoutLocationsMatchWriter(t *testing.T) {
	p := program.NewProgram(program.StageVertex)
	fn := p.EntryFunction()
	iPos, err := fn.ResolveInputParameter(program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	if err != nil {
		t.Fatalf("resolve position: %v", err)
	}
	if _, err := fn.ResolveInputParameter(program.SemanticNormal, 0, program.ContentNormalObjectSpace, program.GpuFloat3); err != nil {
		t.Fatalf("resolve normal: %v", err)
	}
	if _, err := fn.ResolveInputParameter(program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2); err != nil {
		t.Fatalf("resolve texcoord: %v", err)
	}
	oPos, err := fn.ResolveOutputParameter(program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	if err != nil {
		t.Fatalf("resolve output position: %v", err)
	}
	fn.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))

	layouts, err := VertexLayout(fn)
	if err != nil {
		t.Fatalf("VertexLayout failed: %v", err)
	}
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}

	layout := layouts[0]
	if layout.ArrayStride != 36 {
		t.Errorf("ArrayStride = %d, want 36", layout.ArrayStride)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want %v", layout.StepMode, gputypes.VertexStepModeVertex)
	}

	want := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x3, Offset: 16, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 2},
	}
	if len(layout.Attributes) != len(want) {
		t.Fatalf("len(Attributes) = %d, want %d", len(layout.Attributes), len(want))
	}
	for i, attr := range layout.Attributes {
		if attr != want[i] {
			t.Errorf("Attributes[%d] = %+v, want %+v", i, attr, want[i])
		}
	}

	// The writer must hand the same locations to the same inputs.
	source, _, err := BuildWGSL(&program.Set{Vertex: p}, wgsl.DefaultOptions())
	if err != nil {
		t.Fatalf("BuildWGSL failed: %v", err)
	}
	for _, line := range []string{
		"@location(0) iPos_0: vec4<f32>,",
		"@location(1) iNormal_0: vec3<f32>,",
		"@location(2) iTexcoord_0: vec2<f32>,",
	} {
		if !strings.Contains(source, line) {
			t.Errorf("Generated WGSL missing %q:\n%s", line, source)
		}
	}
}

// TestVertexLayoutEmptyFunction tests that a function without inputs
// produces no buffers.
func TestVertexLayoutEmptyFunction(t *testing.T) {
	fn := program.NewFunction("main", "entry", program.FunctionVertexMain)

	layouts, err := VertexLayout(fn)
	if err != nil {
		t.Fatalf("VertexLayout failed: %v", err)
	}
	if layouts != nil {
		t.Errorf("layouts = %v, want nil", layouts)
	}
}

// TestVertexLayoutRejectsNonFloat tests that attribute types without a
// vertex format are reported.
func TestVertexLayoutRejectsNonFloat(t *testing.T) {
	fn := program.NewFunction("main", "entry", program.FunctionVertexMain)
	p := program.NewParameter(program.GpuInt4, "iBones", program.SemanticBlendIndices, 0, program.ContentBlendIndices)
	if err := fn.AddInputParameter(p); err != nil {
		t.Fatalf("AddInputParameter failed: %v", err)
	}

	_, err := VertexLayout(fn)
	if err == nil {
		t.Fatal("Expected error for int attribute")
	}
	if !strings.Contains(err.Error(), "iBones") {
		t.Errorf("Expected parameter name in error, got: %v", err)
	}
}
