package program

import (
	"sort"
	"strconv"
)

// FunctionType tells how a function is used in the assembled program.
type FunctionType uint8

const (
	// FunctionVertexMain is the vertex stage entry point.
	FunctionVertexMain FunctionType = iota
	// FunctionFragmentMain is the fragment stage entry point.
	FunctionFragmentMain
	// FunctionInternal is a helper function.
	FunctionInternal
)

// String returns a human-readable name for the function type.
func (t FunctionType) String() string {
	switch t {
	case FunctionVertexMain:
		return "vertex main"
	case FunctionFragmentMain:
		return "fragment main"
	default:
		return "internal"
	}
}

// Function is a shader function under assembly. It owns the input,
// output, and local parameter lists plus the ordered atoms of the
// body. Functions are not safe for concurrent use.
type Function struct {
	name         string
	description  string
	functionType FunctionType

	inputs  []*Parameter
	outputs []*Parameter
	locals  []*Parameter

	atoms       map[int][]FunctionAtom
	sortedAtoms []FunctionAtom
}

// NewFunction creates an empty function.
func NewFunction(name, description string, functionType FunctionType) *Function {
	return &Function{
		name:         name,
		description:  description,
		functionType: functionType,
		atoms:        make(map[int][]FunctionAtom),
	}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Description returns the human-readable description of the function.
func (f *Function) Description() string { return f.description }

// Type returns how the function is used in the assembled program.
func (f *Function) Type() FunctionType { return f.functionType }

// InputParameters returns the input parameter list in declaration order.
func (f *Function) InputParameters() []*Parameter { return f.inputs }

// OutputParameters returns the output parameter list in declaration order.
func (f *Function) OutputParameters() []*Parameter { return f.outputs }

// LocalParameters returns the local parameter list in declaration order.
func (f *Function) LocalParameters() []*Parameter { return f.locals }

// ResolveInputParameter returns the input parameter bound to the given
// semantic, index, content, and element type, creating and registering
// it on first use.
//
// A parameter already carrying the requested content and type is
// returned as is, regardless of index. Index -1 asks for the next free
// index of the semantic. When gtype is GpuUnknown the type implied by
// the content is used; a content without an implied type fails with an
// undeclared-content-type error. Resolving SemanticUnknown returns
// (nil, nil).
func (f *Function) ResolveInputParameter(semantic Semantic, index int, content Content, gtype GpuType) (*Parameter, error) {
	gtype, err := f.concreteType(content, gtype)
	if err != nil {
		return nil, err
	}

	if p := ParameterByContent(f.inputs, content, gtype); p != nil {
		return p, nil
	}

	if index < 0 {
		index = nextSemanticIndex(f.inputs, semantic)
	} else if p := ParameterBySemantic(f.inputs, semantic, index); p != nil && p.content == content {
		if p.gtype == gtype {
			return p, nil
		}
		return nil, typeMismatchError(f.name, semantic, index)
	}

	p, err := f.newInputParameter(semantic, index, content, gtype)
	if p == nil || err != nil {
		return nil, err
	}
	if err := f.AddInputParameter(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveOutputParameter returns the output parameter bound to the
// given semantic, index, content, and element type, creating and
// registering it on first use. It follows the same rules as
// ResolveInputParameter, except that blend weights and blend indices
// are rejected with an unsupported-semantic error.
func (f *Function) ResolveOutputParameter(semantic Semantic, index int, content Content, gtype GpuType) (*Parameter, error) {
	gtype, err := f.concreteType(content, gtype)
	if err != nil {
		return nil, err
	}

	if p := ParameterByContent(f.outputs, content, gtype); p != nil {
		return p, nil
	}

	if index < 0 {
		index = nextSemanticIndex(f.outputs, semantic)
	} else if p := ParameterBySemantic(f.outputs, semantic, index); p != nil && p.content == content {
		if p.gtype == gtype {
			return p, nil
		}
		return nil, typeMismatchError(f.name, semantic, index)
	}

	p, err := f.newOutputParameter(semantic, index, content, gtype)
	if p == nil || err != nil {
		return nil, err
	}
	if err := f.AddOutputParameter(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveLocalParameterByName returns the local parameter with the
// given name, creating it with content ContentUnknown on first use.
// An existing local must match the requested type, semantic, and
// index exactly or the resolve fails with a type-mismatch error.
func (f *Function) ResolveLocalParameterByName(semantic Semantic, index int, name string, gtype GpuType) (*Parameter, error) {
	if p := ParameterByName(f.locals, name); p != nil {
		if p.gtype == gtype && p.semantic == semantic && p.index == index {
			return p, nil
		}
		return nil, localTypeMismatchError(f.name, name)
	}

	p := NewParameter(gtype, name, semantic, index, ContentUnknown)
	if err := f.addParameter(&f.locals, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveLocalParameter returns the local parameter carrying the given
// content and element type, creating it under a synthesized name on
// first use. When gtype is GpuUnknown the type implied by the content
// is used; a content without an implied type fails with an
// undeclared-content-type error.
func (f *Function) ResolveLocalParameter(semantic Semantic, index int, content Content, gtype GpuType) (*Parameter, error) {
	gtype, err := f.concreteType(content, gtype)
	if err != nil {
		return nil, err
	}

	if p := ParameterByContent(f.locals, content, gtype); p != nil {
		return p, nil
	}

	p := NewParameter(gtype, "lLocalParam_"+strconv.Itoa(len(f.locals)), semantic, index, content)
	if err := f.addParameter(&f.locals, p); err != nil {
		return nil, err
	}
	return p, nil
}

// concreteType replaces GpuUnknown with the type implied by content.
func (f *Function) concreteType(content Content, gtype GpuType) (GpuType, error) {
	if gtype != GpuUnknown {
		return gtype, nil
	}
	derived, ok := typeFromContent(content)
	if !ok {
		return GpuUnknown, undeclaredContentError(f.name, content)
	}
	return derived, nil
}

// nextSemanticIndex counts the parameters bound to semantic, which is
// the next free index. Indices are sequential from 0; deleting a
// parameter does not open its slot for reuse.
func nextSemanticIndex(list []*Parameter, semantic Semantic) int {
	index := 0
	for _, p := range list {
		if p.semantic == semantic {
			index++
		}
	}
	return index
}

// newInputParameter dispatches to the factory for the semantic.
// Non-texcoord semantics carry a canonical element type; a conflicting
// request is a type mismatch. SemanticUnknown yields (nil, nil).
func (f *Function) newInputParameter(semantic Semantic, index int, content Content, gtype GpuType) (*Parameter, error) {
	switch semantic {
	case SemanticPosition:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInPosition(index), nil
	case SemanticBlendWeights:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInWeights(index), nil
	case SemanticBlendIndices:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInIndices(index), nil
	case SemanticNormal:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInNormal(index), nil
	case SemanticColor:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInColor(index), nil
	case SemanticTexcoord:
		return NewInTexcoord(gtype, index, content), nil
	case SemanticBinormal:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInBinormal(index), nil
	case SemanticTangent:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewInTangent(index), nil
	default:
		return nil, nil
	}
}

// newOutputParameter dispatches to the factory for the semantic.
// Blend weights and indices cannot be outputs.
func (f *Function) newOutputParameter(semantic Semantic, index int, content Content, gtype GpuType) (*Parameter, error) {
	switch semantic {
	case SemanticPosition:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewOutPosition(index), nil
	case SemanticBlendWeights, SemanticBlendIndices:
		return nil, unsupportedSemanticError(f.name, semantic, index)
	case SemanticNormal:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewOutNormal(index), nil
	case SemanticColor:
		if gtype != GpuFloat4 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewOutColor(index), nil
	case SemanticTexcoord:
		return NewOutTexcoord(gtype, index, content), nil
	case SemanticBinormal:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewOutBinormal(index), nil
	case SemanticTangent:
		if gtype != GpuFloat3 {
			return nil, typeMismatchError(f.name, semantic, index)
		}
		return NewOutTangent(index), nil
	default:
		return nil, nil
	}
}

// AddInputParameter registers an input parameter. It fails with a
// duplicate-binding error when the input list already binds the
// parameter's (semantic, index), and with a duplicate-name error when
// the name is already declared as an input or output.
func (f *Function) AddInputParameter(p *Parameter) error {
	if ParameterBySemantic(f.inputs, p.semantic, p.index) != nil {
		return duplicateBindingError(f.name, p.name, p.semantic, p.index)
	}
	return f.addParameter(&f.inputs, p)
}

// AddOutputParameter registers an output parameter. It fails with a
// duplicate-binding error when the output list already binds the
// parameter's (semantic, index), and with a duplicate-name error when
// the name is already declared as an input or output.
func (f *Function) AddOutputParameter(p *Parameter) error {
	if ParameterBySemantic(f.outputs, p.semantic, p.index) != nil {
		return duplicateBindingError(f.name, p.name, p.semantic, p.index)
	}
	return f.addParameter(&f.outputs, p)
}

// addParameter appends p to list after checking its name against the
// input and output lists. Locals are not checked, so a local may
// shadow another local.
func (f *Function) addParameter(list *[]*Parameter, p *Parameter) error {
	if ParameterByName(f.inputs, p.name) != nil {
		return duplicateNameError(f.name, p.name)
	}
	if ParameterByName(f.outputs, p.name) != nil {
		return duplicateNameError(f.name, p.name)
	}
	*list = append(*list, p)
	return nil
}

// DeleteInputParameter removes p from the input list. Absent
// parameters are ignored.
func (f *Function) DeleteInputParameter(p *Parameter) {
	f.inputs = deleteParameter(f.inputs, p)
}

// DeleteOutputParameter removes p from the output list. Absent
// parameters are ignored.
func (f *Function) DeleteOutputParameter(p *Parameter) {
	f.outputs = deleteParameter(f.outputs, p)
}

// DeleteAllInputParameters clears the input list.
func (f *Function) DeleteAllInputParameters() {
	f.inputs = nil
}

// DeleteAllOutputParameters clears the output list.
func (f *Function) DeleteAllOutputParameters() {
	f.outputs = nil
}

// deleteParameter removes the first identity match of p from list.
func deleteParameter(list []*Parameter, p *Parameter) []*Parameter {
	for i, q := range list {
		if q == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// AddAtomInstance registers an atom under its group order and
// invalidates the linearized cache.
func (f *Function) AddAtomInstance(atom FunctionAtom) {
	order := atom.GroupOrder()
	f.atoms[order] = append(f.atoms[order], atom)
	f.sortedAtoms = nil
}

// AddAtomAssign registers an assignment of src into dst at the given
// group order.
func (f *Function) AddAtomAssign(dst, src *Parameter, groupOrder int) {
	f.AddAtomInstance(NewAssignmentAtom(groupOrder, Out(dst), In(src)))
}

// DeleteAtomInstance removes the atom from its group bucket and
// reports whether it was registered. The linearized cache is
// invalidated only on removal.
func (f *Function) DeleteAtomInstance(atom FunctionAtom) bool {
	order := atom.GroupOrder()
	bucket := f.atoms[order]
	for i, a := range bucket {
		if a == atom {
			f.atoms[order] = append(bucket[:i], bucket[i+1:]...)
			f.sortedAtoms = nil
			return true
		}
	}
	return false
}

// AtomInstances returns all atoms ordered by ascending group order,
// preserving registration order within a group. The result is
// memoized until the next add or delete.
func (f *Function) AtomInstances() []FunctionAtom {
	if f.sortedAtoms != nil {
		return f.sortedAtoms
	}

	orders := make([]int, 0, len(f.atoms))
	total := 0
	for order, bucket := range f.atoms {
		orders = append(orders, order)
		total += len(bucket)
	}
	sort.Ints(orders)

	flat := make([]FunctionAtom, 0, total)
	for _, order := range orders {
		flat = append(flat, f.atoms[order]...)
	}
	f.sortedAtoms = flat
	return flat
}

// FunctionStageRef appends atoms to a function at a fixed group
// order. It lets feature code register its operations without
// repeating the order on every call.
type FunctionStageRef struct {
	parent *Function
	stage  int
}

// Stage returns a facade that registers atoms at the given group
// order.
func (f *Function) Stage(groupOrder int) FunctionStageRef {
	return FunctionStageRef{parent: f, stage: groupOrder}
}

// CallFunction registers an invocation of the named helper.
func (r FunctionStageRef) CallFunction(name string, operands ...Operand) {
	r.parent.AddAtomInstance(NewFunctionInvocation(name, r.stage, operands...))
}

// SampleTexture registers a texture sample.
func (r FunctionStageRef) SampleTexture(operands ...Operand) {
	r.parent.AddAtomInstance(NewSampleTextureAtom(r.stage, operands...))
}

// Assign registers an assignment between two parameters.
func (r FunctionStageRef) Assign(operands ...Operand) {
	r.parent.AddAtomInstance(NewAssignmentAtom(r.stage, operands...))
}
