// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package wgsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/rtshader/program"
)

// varyingKey identifies a varying by binding, independent of the
// parameter names each stage picked for it.
type varyingKey struct {
	semantic program.Semantic
	index    int
}

// varyingSlot records the location and type a vertex output was
// emitted with, so the fragment side can be matched against it.
type varyingSlot struct {
	location int
	gtype    program.GpuType
}

// samplerBinding is the texture/sampler global pair a sampler uniform
// expands to.
type samplerBinding struct {
	param   *program.Parameter
	texture string
	sampler string
}

// Writer generates WGSL source code from a program set.
type Writer struct {
	set     *program.Set
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Plain uniforms in Uniforms struct field order
	uniformFields []*program.Parameter

	// Sampler uniforms by name, plus their emission order
	samplerPairs map[string]samplerBinding
	samplerOrder []string

	// Vertex output locations, for matching fragment inputs
	varyings map[varyingKey]varyingSlot

	info TranslationInfo
}

func newWriter(set *program.Set, options *Options) *Writer {
	return &Writer{
		set:          set,
		options:      options,
		samplerPairs: make(map[string]samplerBinding),
		varyings:     make(map[varyingKey]varyingSlot),
	}
}

// String returns the generated WGSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeModule generates the complete WGSL module.
func (w *Writer) writeModule() error {
	if err := w.checkStages(); err != nil {
		return err
	}

	if w.options.Preamble != "" {
		w.out.WriteString(strings.TrimRight(w.options.Preamble, "\n"))
		w.out.WriteByte('\n')
	}

	if err := w.collectUniforms(); err != nil {
		return err
	}

	if err := w.writeStageStructs(); err != nil {
		return err
	}

	if err := w.writeUniformGlobals(); err != nil {
		return err
	}

	if w.set.Vertex != nil {
		if err := w.writeEntryPoint(w.set.Vertex, w.options.VertexEntry); err != nil {
			return err
		}
		w.info.VertexEntry = w.options.VertexEntry
	}
	if w.set.Fragment != nil {
		if err := w.writeEntryPoint(w.set.Fragment, w.options.FragmentEntry); err != nil {
			return err
		}
		w.info.FragmentEntry = w.options.FragmentEntry
	}

	return nil
}

// checkStages verifies each slot of the set holds a program of the
// matching stage.
func (w *Writer) checkStages() error {
	if w.set.Vertex != nil && w.set.Vertex.Stage() != program.StageVertex {
		return NewError(ErrInvalidProgram, "vertex slot holds a non-vertex program")
	}
	if w.set.Fragment != nil && w.set.Fragment.Stage() != program.StageFragment {
		return NewError(ErrInvalidProgram, "fragment slot holds a non-fragment program")
	}
	return nil
}

// collectUniforms merges the uniforms of both stages by name.
// Plain uniforms become fields of the Uniforms struct; samplers become
// texture/sampler global pairs.
func (w *Writer) collectUniforms() error {
	seen := make(map[string]*program.Parameter)
	for _, p := range []*program.Program{w.set.Vertex, w.set.Fragment} {
		if p == nil {
			continue
		}
		for _, u := range p.Uniforms() {
			if prev, ok := seen[u.Name()]; ok {
				if prev.Type() != u.Type() {
					return NewErrorf(ErrInvalidProgram,
						"uniform <%s> declared as both %s and %s", u.Name(), prev.Type(), u.Type())
				}
				continue
			}
			seen[u.Name()] = u
			if u.Type().IsSampler() {
				w.samplerPairs[u.Name()] = samplerBinding{
					param:   u,
					texture: u.Name() + "_tex",
					sampler: u.Name() + "_smp",
				}
				w.samplerOrder = append(w.samplerOrder, u.Name())
			} else {
				w.uniformFields = append(w.uniformFields, u)
			}
		}
	}

	w.info.UniformCount = len(w.uniformFields)
	w.info.SamplerCount = len(w.samplerOrder)
	w.info.BindingCount = 2 * len(w.samplerOrder)
	if len(w.uniformFields) > 0 {
		w.info.BindingCount++
	}
	return nil
}

// writeStageStructs emits the input and output structs of each stage.
// Vertex structs come first so fragment inputs can reuse the varying
// locations the vertex outputs were assigned.
func (w *Writer) writeStageStructs() error {
	if w.set.Vertex != nil {
		fn := w.set.Vertex.EntryFunction()
		if len(fn.InputParameters()) > 0 {
			if err := w.writeVertexInputStruct(fn); err != nil {
				return err
			}
		}
		if err := w.writeVertexOutputStruct(fn); err != nil {
			return err
		}
	}
	if w.set.Fragment != nil {
		fn := w.set.Fragment.EntryFunction()
		if len(fn.InputParameters()) > 0 {
			if err := w.writeFragmentInputStruct(fn); err != nil {
				return err
			}
		}
		if len(fn.OutputParameters()) > 0 {
			if err := w.writeFragmentOutputStruct(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeVertexInputStruct emits the VertexInput struct. Every input is
// a vertex attribute with a sequential location, position included.
func (w *Writer) writeVertexInputStruct(fn *program.Function) error {
	w.sectionBreak()
	w.writeLine("struct VertexInput {")
	w.pushIndent()
	for i, p := range fn.InputParameters() {
		name, err := w.ioTypeName(p)
		if err != nil {
			return err
		}
		w.writeLine("@location(%d) %s: %s,", i, p.Name(), name)
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeVertexOutputStruct emits the VertexOutput struct. The position
// output maps to the position builtin and everything else gets a
// varying location, recorded for the fragment side.
func (w *Writer) writeVertexOutputStruct(fn *program.Function) error {
	outputs := fn.OutputParameters()

	positions := 0
	for _, p := range outputs {
		if p.Semantic() == program.SemanticPosition {
			positions++
		}
	}
	if positions == 0 {
		return NewErrorf(ErrInvalidProgram,
			"vertex function <%s> has no position output", fn.Name())
	}
	if positions > 1 {
		return NewErrorf(ErrUnsupportedFeature,
			"vertex function <%s> has more than one position output", fn.Name())
	}

	w.sectionBreak()
	w.writeLine("struct VertexOutput {")
	w.pushIndent()
	location := 0
	for _, p := range outputs {
		name, err := w.ioTypeName(p)
		if err != nil {
			return err
		}
		if p.Semantic() == program.SemanticPosition {
			if p.Type() != program.GpuFloat4 {
				return NewErrorf(ErrInvalidProgram,
					"vertex position output <%s> must be float4", p.Name())
			}
			w.writeLine("@builtin(position) %s: %s,", p.Name(), name)
			continue
		}
		w.varyings[varyingKey{p.Semantic(), p.Index()}] = varyingSlot{location, p.Type()}
		w.writeLine("@location(%d) %s: %s,", location, p.Name(), name)
		location++
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeFragmentInputStruct emits the FragmentInput struct. When a
// vertex program is present, inputs are matched to its outputs by
// semantic and index; otherwise locations are assigned sequentially.
func (w *Writer) writeFragmentInputStruct(fn *program.Function) error {
	w.sectionBreak()
	w.writeLine("struct FragmentInput {")
	w.pushIndent()
	next := 0
	for _, p := range fn.InputParameters() {
		name, err := w.ioTypeName(p)
		if err != nil {
			return err
		}
		if p.Semantic() == program.SemanticPosition {
			if p.Type() != program.GpuFloat4 {
				return NewErrorf(ErrInvalidProgram,
					"fragment position input <%s> must be float4", p.Name())
			}
			w.writeLine("@builtin(position) %s: %s,", p.Name(), name)
			continue
		}
		location := next
		if w.set.Vertex != nil {
			slot, ok := w.varyings[varyingKey{p.Semantic(), p.Index()}]
			if !ok {
				return NewErrorf(ErrInvalidProgram,
					"fragment input <%s> has no matching vertex output for %s index %d",
					p.Name(), p.Semantic(), p.Index())
			}
			if slot.gtype != p.Type() {
				return NewErrorf(ErrInvalidProgram,
					"fragment input <%s> is %s but the matching vertex output is %s",
					p.Name(), p.Type(), slot.gtype)
			}
			location = slot.location
		} else {
			next++
		}
		w.writeLine("@location(%d) %s: %s,", location, p.Name(), name)
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeFragmentOutputStruct emits the FragmentOutput struct with
// sequential color target locations.
func (w *Writer) writeFragmentOutputStruct(fn *program.Function) error {
	for _, p := range fn.OutputParameters() {
		if p.Semantic() == program.SemanticPosition {
			return NewErrorf(ErrUnsupportedFeature,
				"fragment function <%s> cannot write a position output", fn.Name())
		}
	}

	w.sectionBreak()
	w.writeLine("struct FragmentOutput {")
	w.pushIndent()
	for i, p := range fn.OutputParameters() {
		name, err := w.ioTypeName(p)
		if err != nil {
			return err
		}
		w.writeLine("@location(%d) %s: %s,", i, p.Name(), name)
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeUniformGlobals emits the Uniforms struct, its binding, and one
// texture/sampler binding pair per sampler uniform, all in group 0.
func (w *Writer) writeUniformGlobals() error {
	if len(w.uniformFields) == 0 && len(w.samplerOrder) == 0 {
		return nil
	}

	if len(w.uniformFields) > 0 {
		w.sectionBreak()
		w.writeLine("struct Uniforms {")
		w.pushIndent()
		for _, u := range w.uniformFields {
			name, ok := typeName(u.Type())
			if !ok {
				return NewErrorf(ErrUnsupportedType,
					"uniform <%s> has unsupported type %s", u.Name(), u.Type())
			}
			w.writeLine("%s: %s,", u.Name(), name)
		}
		w.popIndent()
		w.writeLine("}")
	}

	w.sectionBreak()
	binding := 0
	if len(w.uniformFields) > 0 {
		w.writeLine("@group(0) @binding(0) var<uniform> uniforms: Uniforms;")
		binding = 1
	}
	for _, name := range w.samplerOrder {
		pair := w.samplerPairs[name]
		textureType := "texture_2d<f32>"
		if pair.param.Type() == program.GpuSamplerCube {
			textureType = "texture_cube<f32>"
		}
		w.writeLine("@group(0) @binding(%d) var %s: %s;", binding, pair.texture, textureType)
		binding++
		w.writeLine("@group(0) @binding(%d) var %s: sampler;", binding, pair.sampler)
		binding++
	}
	return nil
}

// writeEntryPoint emits one stage entry function: output and local
// declarations first, then the function atoms in group order, then the
// return.
func (w *Writer) writeEntryPoint(p *program.Program, entryName string) error {
	fn := p.EntryFunction()

	attr, structIn, structOut := "@vertex", "VertexInput", "VertexOutput"
	if p.Stage() == program.StageFragment {
		attr, structIn, structOut = "@fragment", "FragmentInput", "FragmentOutput"
	}

	w.sectionBreak()
	w.writeLine(attr)

	signature := "fn " + entryName + "("
	if len(fn.InputParameters()) > 0 {
		signature += "in: " + structIn
	}
	signature += ")"
	hasOutputs := len(fn.OutputParameters()) > 0
	if hasOutputs {
		signature += " -> " + structOut
	}
	w.writeLine("%s {", signature)

	w.pushIndent()
	if hasOutputs {
		w.writeLine("var out: %s;", structOut)
	}
	for _, l := range fn.LocalParameters() {
		name, ok := typeName(l.Type())
		if !ok {
			return NewErrorf(ErrUnsupportedType,
				"local <%s> has unsupported type %s", l.Name(), l.Type())
		}
		w.writeLine("var %s: %s;", l.Name(), name)
	}

	refs := w.entryRefs(p)
	for _, atom := range fn.AtomInstances() {
		if err := w.writeAtom(atom, refs, fn.Name()); err != nil {
			return err
		}
	}

	if hasOutputs {
		w.writeLine("return out;")
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// entryRefs maps every parameter visible to an entry function to the
// WGSL expression that reads or writes it. Samplers get no expression;
// they are only legal inside texture sample atoms.
func (w *Writer) entryRefs(p *program.Program) map[*program.Parameter]string {
	fn := p.EntryFunction()
	refs := make(map[*program.Parameter]string)
	for _, in := range fn.InputParameters() {
		refs[in] = "in." + in.Name()
	}
	for _, out := range fn.OutputParameters() {
		refs[out] = "out." + out.Name()
	}
	for _, l := range fn.LocalParameters() {
		refs[l] = l.Name()
	}
	for _, u := range p.Uniforms() {
		if u.Type().IsSampler() {
			continue
		}
		refs[u] = "uniforms." + u.Name()
	}
	return refs
}

// writeAtom emits the statement for a single function atom.
func (w *Writer) writeAtom(atom program.FunctionAtom, refs map[*program.Parameter]string, fnName string) error {
	switch a := atom.(type) {
	case *program.AssignmentAtom:
		return w.writeAssignment(a, refs, fnName)
	case *program.FunctionInvocation:
		return w.writeInvocation(a, refs, fnName)
	case *program.SampleTextureAtom:
		return w.writeSample(a, refs, fnName)
	default:
		return NewErrorf(ErrUnsupportedFeature, "unsupported atom %T in function <%s>", atom, fnName)
	}
}

// writeAssignment emits "dst = src;" from the first written and first
// read operand.
func (w *Writer) writeAssignment(a *program.AssignmentAtom, refs map[*program.Parameter]string, fnName string) error {
	var dst, src *program.Operand
	ops := a.Operands()
	for i := range ops {
		op := &ops[i]
		if op.Usage.Writes() && dst == nil {
			dst = op
		} else if op.Usage.Reads() && src == nil {
			src = op
		}
	}
	if dst == nil || src == nil {
		return NewErrorf(ErrInvalidAtom,
			"assignment in function <%s> needs one written and one read operand", fnName)
	}

	dstRef, err := w.destRef(*dst, refs, fnName)
	if err != nil {
		return err
	}
	srcRef, err := w.operandRef(*src, refs, fnName)
	if err != nil {
		return err
	}
	w.writeLine("%s = %s;", dstRef, srcRef)
	return nil
}

// writeInvocation emits a call statement. Read operands become
// arguments in declaration order; a single written operand receives
// the return value.
func (w *Writer) writeInvocation(a *program.FunctionInvocation, refs map[*program.Parameter]string, fnName string) error {
	var args []string
	var outRef string
	outs := 0
	for _, op := range a.Operands() {
		if op.Usage.Writes() {
			outs++
			if outs > 1 {
				return NewErrorf(ErrUnsupportedFeature,
					"call of <%s> in function <%s> writes more than one operand", a.Name(), fnName)
			}
			ref, err := w.destRef(op, refs, fnName)
			if err != nil {
				return err
			}
			outRef = ref
		}
		if op.Usage.Reads() {
			ref, err := w.operandRef(op, refs, fnName)
			if err != nil {
				return err
			}
			args = append(args, ref)
		}
	}

	call := a.Name() + "(" + strings.Join(args, ", ") + ")"
	if outs == 1 {
		w.writeLine("%s = %s;", outRef, call)
	} else {
		w.writeLine("%s;", call)
	}
	return nil
}

// writeSample emits "dst = textureSample(tex, smp, coord);". The
// sampler operand selects the texture/sampler pair by uniform name.
func (w *Writer) writeSample(a *program.SampleTextureAtom, refs map[*program.Parameter]string, fnName string) error {
	var samplerParam *program.Parameter
	var coord, dst *program.Operand
	ops := a.Operands()
	for i := range ops {
		op := &ops[i]
		if op.Parameter == nil {
			return NewErrorf(ErrInvalidAtom, "operand without a parameter in function <%s>", fnName)
		}
		switch {
		case op.Parameter.Type().IsSampler():
			if samplerParam == nil {
				samplerParam = op.Parameter
			}
		case op.Usage.Writes():
			if dst == nil {
				dst = op
			}
		case op.Usage.Reads():
			if coord == nil {
				coord = op
			}
		}
	}
	if samplerParam == nil || coord == nil || dst == nil {
		return NewErrorf(ErrInvalidAtom,
			"texture sample in function <%s> needs a sampler, a coordinate, and a destination", fnName)
	}

	pair, ok := w.samplerPairs[samplerParam.Name()]
	if !ok {
		return NewErrorf(ErrInvalidAtom,
			"sampler <%s> is not declared as a uniform in function <%s>", samplerParam.Name(), fnName)
	}

	dstRef, err := w.destRef(*dst, refs, fnName)
	if err != nil {
		return err
	}
	coordRef, err := w.operandRef(*coord, refs, fnName)
	if err != nil {
		return err
	}
	w.writeLine("%s = textureSample(%s, %s, %s);", dstRef, pair.texture, pair.sampler, coordRef)
	return nil
}

// operandRef returns the WGSL expression for an operand, swizzle
// included.
func (w *Writer) operandRef(op program.Operand, refs map[*program.Parameter]string, fnName string) (string, error) {
	p := op.Parameter
	if p == nil {
		return "", NewErrorf(ErrInvalidAtom, "operand without a parameter in function <%s>", fnName)
	}
	if p.Type().IsSampler() {
		return "", NewErrorf(ErrInvalidAtom,
			"sampler <%s> referenced outside a texture sample in function <%s>", p.Name(), fnName)
	}
	ref, ok := refs[p]
	if !ok {
		return "", NewErrorf(ErrInvalidAtom,
			"parameter <%s> is not declared in function <%s>", p.Name(), fnName)
	}
	return ref + op.Mask.Swizzle(), nil
}

// destRef is operandRef for written operands. WGSL forbids assigning
// through a multi-component swizzle, so only whole values and single
// components are accepted.
func (w *Writer) destRef(op program.Operand, refs map[*program.Parameter]string, fnName string) (string, error) {
	if op.Mask != program.MaskAll && op.Mask.Components() > 1 {
		return "", NewErrorf(ErrUnsupportedFeature,
			"cannot assign through multi-component swizzle %s in function <%s>", op.Mask.Swizzle(), fnName)
	}
	return w.operandRef(op, refs, fnName)
}

// typeName maps a GPU type to its WGSL spelling. Samplers and unknown
// types have no direct spelling and report false.
func typeName(t program.GpuType) (string, bool) {
	switch t {
	case program.GpuFloat1:
		return "f32", true
	case program.GpuFloat2:
		return "vec2<f32>", true
	case program.GpuFloat3:
		return "vec3<f32>", true
	case program.GpuFloat4:
		return "vec4<f32>", true
	case program.GpuInt1:
		return "i32", true
	case program.GpuInt2:
		return "vec2<i32>", true
	case program.GpuInt3:
		return "vec3<i32>", true
	case program.GpuInt4:
		return "vec4<i32>", true
	case program.GpuMatrix2x2:
		return "mat2x2<f32>", true
	case program.GpuMatrix3x3:
		return "mat3x3<f32>", true
	case program.GpuMatrix4x4:
		return "mat4x4<f32>", true
	default:
		return "", false
	}
}

// ioTypeName maps a stage input or output parameter to its WGSL type.
// Matrices and samplers cannot cross stage boundaries.
func (w *Writer) ioTypeName(p *program.Parameter) (string, error) {
	t := p.Type()
	if t.IsFloat() || t.IsInt() {
		name, _ := typeName(t)
		return name, nil
	}
	return "", NewErrorf(ErrUnsupportedType,
		"parameter <%s> has type %s, which cannot be a stage input or output", p.Name(), t)
}

// sectionBreak separates top level declarations with a blank line.
func (w *Writer) sectionBreak() {
	if w.out.Len() > 0 {
		w.out.WriteByte('\n')
	}
}

// writeLine writes an indented line to the output.
func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases the indentation level.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases the indentation level.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
