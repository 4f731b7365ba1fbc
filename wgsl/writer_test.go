// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package wgsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/rtshader/program"
)

// =============================================================================
// Test helpers
// =============================================================================

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want kind %v", kind)
	}
	var wgslErr *Error
	if !errors.As(err, &wgslErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if wgslErr.Kind != kind {
		t.Errorf("Kind = %v, want %v (message: %s)", wgslErr.Kind, kind, wgslErr.Message)
	}
}

func mustInput(t *testing.T, fn *program.Function, semantic program.Semantic, index int, content program.Content, gtype program.GpuType) *program.Parameter {
	t.Helper()
	p, err := fn.ResolveInputParameter(semantic, index, content, gtype)
	if err != nil {
		t.Fatalf("ResolveInputParameter() error = %v", err)
	}
	return p
}

func mustOutput(t *testing.T, fn *program.Function, semantic program.Semantic, index int, content program.Content, gtype program.GpuType) *program.Parameter {
	t.Helper()
	p, err := fn.ResolveOutputParameter(semantic, index, content, gtype)
	if err != nil {
		t.Fatalf("ResolveOutputParameter() error = %v", err)
	}
	return p
}

func mustUniform(t *testing.T, p *program.Program, name string, gtype program.GpuType) *program.Parameter {
	t.Helper()
	u, err := p.ResolveUniform(name, gtype)
	if err != nil {
		t.Fatalf("ResolveUniform() error = %v", err)
	}
	return u
}

func mustLocal(t *testing.T, fn *program.Function, name string, gtype program.GpuType) *program.Parameter {
	t.Helper()
	l, err := fn.ResolveLocalParameterByName(program.SemanticUnknown, 0, name, gtype)
	if err != nil {
		t.Fatalf("ResolveLocalParameterByName() error = %v", err)
	}
	return l
}

// buildMinimalVertex assembles a pass-through vertex program.
func buildMinimalVertex(t *testing.T) *program.Program {
	t.Helper()
	p := program.NewProgram(program.StageVertex)
	fn := p.EntryFunction()
	iPos := mustInput(t, fn, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, fn, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	fn.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))
	return p
}

// buildTexturedSet assembles the classic textured-quad pipeline: a
// vertex stage transforming position and passing a texture coordinate
// through, and a fragment stage sampling a diffuse map.
func buildTexturedSet(t *testing.T) *program.Set {
	t.Helper()
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos := mustInput(t, vs, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	iTex := mustInput(t, vs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oPos := mustOutput(t, vs, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	oTex := mustOutput(t, vs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	wvp := mustUniform(t, set.Vertex, "uWorldViewProj", program.GpuMatrix4x4)
	vs.Stage(program.VSTransform).CallFunction("transformPosition",
		program.Out(oPos), program.In(wvp), program.In(iPos))
	vs.Stage(program.VSTexturing).Assign(program.Out(oTex), program.In(iTex))

	fs := set.Fragment.EntryFunction()
	fTex := mustInput(t, fs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oColor := mustOutput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	diffuseMap := mustUniform(t, set.Fragment, "uDiffuseMap", program.GpuSampler2D)
	texel := mustLocal(t, fs, "texel", program.GpuFloat4)
	fs.Stage(program.FSSampling).SampleTexture(
		program.In(diffuseMap), program.In(fTex), program.Out(texel))
	fs.Stage(program.FSColorEnd).Assign(program.Out(oColor), program.In(texel))

	return set
}

// =============================================================================
// Module emission
// =============================================================================

func TestWrite_TexturedQuad(t *testing.T) {
	set := buildTexturedSet(t)

	options := DefaultOptions()
	options.Preamble = "fn transformPosition(m: mat4x4<f32>, v: vec4<f32>) -> vec4<f32> {\n" +
		"    return m * v;\n" +
		"}\n"

	source, info, err := Write(set, options)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `fn transformPosition(m: mat4x4<f32>, v: vec4<f32>) -> vec4<f32> {
    return m * v;
}

struct VertexInput {
    @location(0) iPos_0: vec4<f32>,
    @location(1) iTexcoord_0: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) oPos_0: vec4<f32>,
    @location(0) oTexcoord_0: vec2<f32>,
}

struct FragmentInput {
    @location(0) iTexcoord_0: vec2<f32>,
}

struct FragmentOutput {
    @location(0) oColor_0: vec4<f32>,
}

struct Uniforms {
    uWorldViewProj: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(0) @binding(1) var uDiffuseMap_tex: texture_2d<f32>;
@group(0) @binding(2) var uDiffuseMap_smp: sampler;

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.oPos_0 = transformPosition(uniforms.uWorldViewProj, in.iPos_0);
    out.oTexcoord_0 = in.iTexcoord_0;
    return out;
}

@fragment
fn fs_main(in: FragmentInput) -> FragmentOutput {
    var out: FragmentOutput;
    var texel: vec4<f32>;
    texel = textureSample(uDiffuseMap_tex, uDiffuseMap_smp, in.iTexcoord_0);
    out.oColor_0 = texel;
    return out;
}
`
	if source != want {
		t.Errorf("Write() output mismatch\ngot:\n%s\nwant:\n%s", source, want)
	}

	if info.VertexEntry != "vs_main" {
		t.Errorf("VertexEntry = %q, want %q", info.VertexEntry, "vs_main")
	}
	if info.FragmentEntry != "fs_main" {
		t.Errorf("FragmentEntry = %q, want %q", info.FragmentEntry, "fs_main")
	}
	if info.UniformCount != 1 {
		t.Errorf("UniformCount = %d, want 1", info.UniformCount)
	}
	if info.SamplerCount != 1 {
		t.Errorf("SamplerCount = %d, want 1", info.SamplerCount)
	}
	if info.BindingCount != 3 {
		t.Errorf("BindingCount = %d, want 3", info.BindingCount)
	}
}

func TestWrite_VaryingLocationsFollowVertexOutputs(t *testing.T) {
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos := mustInput(t, vs, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, vs, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	oColor := mustOutput(t, vs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	oTex := mustOutput(t, vs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	vs.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))
	vs.Stage(program.VSColor).Assign(program.Out(oColor), program.In(iPos))
	vs.Stage(program.VSTexturing).Assign(program.Out(oTex), program.In(iPos).WithMask(program.MaskX|program.MaskY))

	// The fragment side declares its inputs in the opposite order.
	// Locations must still follow the vertex outputs.
	fs := set.Fragment.EntryFunction()
	fTex := mustInput(t, fs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	fColor := mustInput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	oOut := mustOutput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fs.Stage(program.FSColorBegin).Assign(program.Out(oOut), program.In(fColor))
	fs.Stage(program.FSTexturing).Assign(
		program.Out(oOut).WithMask(program.MaskX), program.In(fTex).WithMask(program.MaskX))

	source, _, err := Write(set, DefaultOptions())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// Vertex assigned color location 0 and texcoord location 1.
	if !strings.Contains(source, "@location(1) iTexcoord_0: vec2<f32>,") {
		t.Errorf("Expected fragment texcoord input at location 1, got:\n%s", source)
	}
	if !strings.Contains(source, "@location(0) iColor_0: vec4<f32>,") {
		t.Errorf("Expected fragment color input at location 0, got:\n%s", source)
	}
}

func TestWrite_VertexOnly(t *testing.T) {
	p := buildMinimalVertex(t)

	source, info, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if info.VertexEntry != "vs_main" {
		t.Errorf("VertexEntry = %q, want %q", info.VertexEntry, "vs_main")
	}
	if info.FragmentEntry != "" {
		t.Errorf("FragmentEntry = %q, want empty", info.FragmentEntry)
	}
	if strings.Contains(source, "@fragment") {
		t.Error("Vertex-only set should not emit a fragment entry")
	}
	if !strings.Contains(source, "@builtin(position) oPos_0: vec4<f32>,") {
		t.Errorf("Expected position builtin output, got:\n%s", source)
	}
}

func TestWrite_FragmentOnlyAssignsSequentialLocations(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	fColor := mustInput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fTex := mustInput(t, fn, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fn.Stage(program.FSColorBegin).Assign(program.Out(oColor), program.In(fColor))
	fn.Stage(program.FSTexturing).Assign(
		program.Out(oColor).WithMask(program.MaskX), program.In(fTex).WithMask(program.MaskX))

	source, info, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if info.VertexEntry != "" {
		t.Errorf("VertexEntry = %q, want empty", info.VertexEntry)
	}
	if !strings.Contains(source, "@location(0) iColor_0: vec4<f32>,") {
		t.Errorf("Expected color input at location 0, got:\n%s", source)
	}
	if !strings.Contains(source, "@location(1) iTexcoord_0: vec2<f32>,") {
		t.Errorf("Expected texcoord input at location 1, got:\n%s", source)
	}
}

func TestWrite_NoUniformsOmitsStruct(t *testing.T) {
	p := buildMinimalVertex(t)

	source, info, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if strings.Contains(source, "struct Uniforms") {
		t.Error("Expected no Uniforms struct without uniforms")
	}
	if strings.Contains(source, "@group(0)") {
		t.Error("Expected no bindings without uniforms")
	}
	if info.BindingCount != 0 {
		t.Errorf("BindingCount = %d, want 0", info.BindingCount)
	}
}

func TestWrite_SamplerCubeTexture(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	fTex := mustInput(t, fn, program.SemanticTexcoord, -1, program.ContentNormalWorldSpace, program.GpuFloat3)
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	sky := mustUniform(t, p, "uSky", program.GpuSamplerCube)
	fn.Stage(program.FSSampling).SampleTexture(
		program.In(sky), program.In(fTex), program.Out(oColor))

	source, info, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if !strings.Contains(source, "@group(0) @binding(0) var uSky_tex: texture_cube<f32>;") {
		t.Errorf("Expected cube texture binding at 0, got:\n%s", source)
	}
	if !strings.Contains(source, "@group(0) @binding(1) var uSky_smp: sampler;") {
		t.Errorf("Expected sampler binding at 1, got:\n%s", source)
	}
	if info.UniformCount != 0 {
		t.Errorf("UniformCount = %d, want 0", info.UniformCount)
	}
	if info.BindingCount != 2 {
		t.Errorf("BindingCount = %d, want 2", info.BindingCount)
	}
}

func TestWrite_SharedUniformEmittedOnce(t *testing.T) {
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos := mustInput(t, vs, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, vs, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	vTime := mustUniform(t, set.Vertex, "uTime", program.GpuFloat1)
	vs.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))
	vs.Stage(program.VSPostProcess).Assign(
		program.Out(oPos).WithMask(program.MaskW), program.In(vTime))

	fs := set.Fragment.EntryFunction()
	oColor := mustOutput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fTime := mustUniform(t, set.Fragment, "uTime", program.GpuFloat1)
	fs.Stage(program.FSColorBegin).Assign(
		program.Out(oColor).WithMask(program.MaskX), program.In(fTime))

	source, info, err := Write(set, DefaultOptions())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := strings.Count(source, "uTime: f32,"); got != 1 {
		t.Errorf("uTime field emitted %d times, want 1", got)
	}
	if info.UniformCount != 1 {
		t.Errorf("UniformCount = %d, want 1", info.UniformCount)
	}

	// Both stages read the same struct field.
	if !strings.Contains(source, "out.oPos_0.w = uniforms.uTime;") {
		t.Errorf("Expected vertex stage to read uniforms.uTime, got:\n%s", source)
	}
	if !strings.Contains(source, "out.oColor_0.x = uniforms.uTime;") {
		t.Errorf("Expected fragment stage to read uniforms.uTime, got:\n%s", source)
	}
}

func TestWrite_SingleComponentWriteMask(t *testing.T) {
	p := program.NewProgram(program.StageVertex)
	fn := p.EntryFunction()
	iPos := mustInput(t, fn, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, fn, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	tmp := mustLocal(t, fn, "tmp", program.GpuFloat4)
	fn.Stage(program.VSPreProcess).Assign(
		program.Out(tmp).WithMask(program.MaskW), program.In(iPos).WithMask(program.MaskX))
	fn.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))

	source, _, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if !strings.Contains(source, "tmp.w = in.iPos_0.x;") {
		t.Errorf("Expected single-component masked assignment, got:\n%s", source)
	}
}

func TestWrite_CallWithoutOutput(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	iPos := fn.InputParameters()[0]
	fn.Stage(program.VSPostProcess).CallFunction("debugMark", program.In(iPos))

	source, _, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if !strings.Contains(source, "debugMark(in.iPos_0);") {
		t.Errorf("Expected bare call statement, got:\n%s", source)
	}
}

func TestWrite_InOutOperandIsArgumentAndResult(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	tmp := mustLocal(t, fn, "tmp", program.GpuFloat4)
	fn.Stage(program.VSPostProcess).CallFunction("saturateColor", program.InOut(tmp))

	source, _, err := WriteProgram(p, DefaultOptions())
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if !strings.Contains(source, "tmp = saturateColor(tmp);") {
		t.Errorf("Expected in-out operand as argument and result, got:\n%s", source)
	}
}

func TestWrite_PreambleTrimmed(t *testing.T) {
	p := buildMinimalVertex(t)

	options := DefaultOptions()
	options.Preamble = "fn helper() -> f32 {\n    return 1.0;\n}\n\n\n"

	source, _, err := WriteProgram(p, options)
	if err != nil {
		t.Fatalf("WriteProgram() error = %v", err)
	}

	if !strings.HasPrefix(source, "fn helper() -> f32 {\n    return 1.0;\n}\n\nstruct VertexInput {") {
		t.Errorf("Expected one blank line after preamble, got:\n%s", source)
	}
}

// =============================================================================
// Emission errors
// =============================================================================

func TestWrite_MissingVertexPositionOutput(t *testing.T) {
	p := program.NewProgram(program.StageVertex)
	fn := p.EntryFunction()
	iPos := mustInput(t, fn, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oTex := mustOutput(t, fn, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	fn.Stage(program.VSTexturing).Assign(
		program.Out(oTex), program.In(iPos).WithMask(program.MaskX|program.MaskY))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidProgram)
}

func TestWrite_FragmentPositionOutput(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	if err := fn.AddOutputParameter(program.NewOutPosition(0)); err != nil {
		t.Fatalf("AddOutputParameter() error = %v", err)
	}

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrUnsupportedFeature)
}

func TestWrite_UnmatchedFragmentInput(t *testing.T) {
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos := mustInput(t, vs, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, vs, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	vs.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))

	// The vertex stage never wrote a texture coordinate.
	fs := set.Fragment.EntryFunction()
	fTex := mustInput(t, fs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oColor := mustOutput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fs.Stage(program.FSTexturing).Assign(
		program.Out(oColor).WithMask(program.MaskX), program.In(fTex).WithMask(program.MaskX))

	_, _, err := Write(set, DefaultOptions())
	assertKind(t, err, ErrInvalidProgram)
}

func TestWrite_VaryingTypeMismatch(t *testing.T) {
	set := program.NewSet()

	vs := set.Vertex.EntryFunction()
	iPos := mustInput(t, vs, program.SemanticPosition, 0, program.ContentPositionObjectSpace, program.GpuFloat4)
	oPos := mustOutput(t, vs, program.SemanticPosition, 0, program.ContentPositionProjectiveSpace, program.GpuFloat4)
	oTex := mustOutput(t, vs, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	vs.Stage(program.VSTransform).Assign(program.Out(oPos), program.In(iPos))
	vs.Stage(program.VSTexturing).Assign(
		program.Out(oTex), program.In(iPos).WithMask(program.MaskX|program.MaskY))

	fs := set.Fragment.EntryFunction()
	if err := fs.AddInputParameter(program.NewInTexcoord(program.GpuFloat4, 0, program.TexcoordContent(0))); err != nil {
		t.Fatalf("AddInputParameter() error = %v", err)
	}
	oColor := mustOutput(t, fs, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fs.Stage(program.FSTexturing).Assign(program.Out(oColor), program.In(fs.InputParameters()[0]))

	_, _, err := Write(set, DefaultOptions())
	assertKind(t, err, ErrInvalidProgram)
}

func TestWrite_UniformTypeConflictAcrossStages(t *testing.T) {
	set := buildTexturedSet(t)
	mustUniform(t, set.Vertex, "uScale", program.GpuFloat1)
	mustUniform(t, set.Fragment, "uScale", program.GpuFloat4)

	_, _, err := Write(set, DefaultOptions())
	assertKind(t, err, ErrInvalidProgram)
}

func TestWrite_MatrixStageInput(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	world := program.NewParameter(program.GpuMatrix4x4, "iWorld", program.SemanticTexcoord, 4, program.TexcoordContent(4))
	if err := fn.AddInputParameter(world); err != nil {
		t.Fatalf("AddInputParameter() error = %v", err)
	}

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrUnsupportedType)
}

func TestWrite_SamplerOutsideSample(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	diffuseMap := mustUniform(t, p, "uDiffuseMap", program.GpuSampler2D)
	fn.Stage(program.FSColorEnd).Assign(program.Out(oColor), program.In(diffuseMap))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidAtom)
}

func TestWrite_UndeclaredParameter(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	stray := program.NewParameter(program.GpuFloat4, "stray", program.SemanticUnknown, 0, program.ContentUnknown)
	fn.Stage(program.FSColorEnd).Assign(program.Out(oColor), program.In(stray))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidAtom)
}

func TestWrite_MultipleCallOutputs(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	a := mustLocal(t, fn, "a", program.GpuFloat4)
	b, err := fn.ResolveLocalParameterByName(program.SemanticUnknown, 1, "b", program.GpuFloat4)
	if err != nil {
		t.Fatalf("ResolveLocalParameterByName() error = %v", err)
	}
	fn.Stage(program.VSPostProcess).CallFunction("split",
		program.Out(a), program.Out(b), program.In(fn.InputParameters()[0]))

	_, _, werr := WriteProgram(p, DefaultOptions())
	assertKind(t, werr, ErrUnsupportedFeature)
}

func TestWrite_MultiComponentWriteMask(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	tmp := mustLocal(t, fn, "tmp", program.GpuFloat4)
	fn.Stage(program.VSPostProcess).Assign(
		program.Out(tmp).WithMask(program.MaskX|program.MaskY),
		program.In(fn.InputParameters()[0]).WithMask(program.MaskX|program.MaskY))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrUnsupportedFeature)
}

func TestWrite_SampleWithoutSampler(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	fTex := mustInput(t, fn, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	fn.Stage(program.FSSampling).SampleTexture(program.In(fTex), program.Out(oColor))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidAtom)
}

func TestWrite_SampleUndeclaredSampler(t *testing.T) {
	p := program.NewProgram(program.StageFragment)
	fn := p.EntryFunction()
	fTex := mustInput(t, fn, program.SemanticTexcoord, -1, program.TexcoordContent(0), program.GpuFloat2)
	oColor := mustOutput(t, fn, program.SemanticColor, -1, program.ContentColorDiffuse, program.GpuFloat4)
	stray := program.NewParameter(program.GpuSampler2D, "sStray", program.SemanticUnknown, 0, program.ContentUnknown)
	fn.Stage(program.FSSampling).SampleTexture(
		program.In(stray), program.In(fTex), program.Out(oColor))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidAtom)
}

func TestWrite_AssignmentWithoutWrite(t *testing.T) {
	p := buildMinimalVertex(t)
	fn := p.EntryFunction()
	tmp := mustLocal(t, fn, "tmp", program.GpuFloat4)
	fn.Stage(program.VSPostProcess).Assign(
		program.In(tmp), program.In(fn.InputParameters()[0]))

	_, _, err := WriteProgram(p, DefaultOptions())
	assertKind(t, err, ErrInvalidAtom)
}
