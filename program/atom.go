package program

import "math/bits"

// OperandUsage tells how an atom accesses an operand.
type OperandUsage uint8

const (
	// UsageIn marks an operand the atom reads.
	UsageIn OperandUsage = 1 << 0

	// UsageOut marks an operand the atom writes.
	UsageOut OperandUsage = 1 << 1

	// UsageInOut marks an operand the atom reads and writes.
	UsageInOut OperandUsage = UsageIn | UsageOut
)

// Reads reports whether the usage includes reading.
func (u OperandUsage) Reads() bool { return u&UsageIn != 0 }

// Writes reports whether the usage includes writing.
func (u OperandUsage) Writes() bool { return u&UsageOut != 0 }

// ComponentMask restricts an operand to selected vector components.
// The zero mask selects the whole value.
type ComponentMask uint8

const (
	// MaskAll selects the whole value.
	MaskAll ComponentMask = 0

	// MaskX selects the first component.
	MaskX ComponentMask = 1 << 0

	// MaskY selects the second component.
	MaskY ComponentMask = 1 << 1

	// MaskZ selects the third component.
	MaskZ ComponentMask = 1 << 2

	// MaskW selects the fourth component.
	MaskW ComponentMask = 1 << 3
)

// Swizzle returns the component-selection suffix for the mask,
// including the leading dot, or the empty string for MaskAll.
func (m ComponentMask) Swizzle() string {
	if m == MaskAll {
		return ""
	}
	buf := make([]byte, 1, 5)
	buf[0] = '.'
	if m&MaskX != 0 {
		buf = append(buf, 'x')
	}
	if m&MaskY != 0 {
		buf = append(buf, 'y')
	}
	if m&MaskZ != 0 {
		buf = append(buf, 'z')
	}
	if m&MaskW != 0 {
		buf = append(buf, 'w')
	}
	return string(buf)
}

// Components returns the number of components the mask selects.
// MaskAll reports zero: the whole value, not a selection.
func (m ComponentMask) Components() int {
	return bits.OnesCount8(uint8(m))
}

// Operand references a parameter from a function atom. The reference
// is non-owning; the parameter belongs to its function.
type Operand struct {
	// Parameter is the referenced parameter.
	Parameter *Parameter

	// Usage tells whether the atom reads, writes, or updates it.
	Usage OperandUsage

	// Mask optionally restricts the operand to selected components.
	Mask ComponentMask
}

// In returns a read operand for p.
func In(p *Parameter) Operand {
	return Operand{Parameter: p, Usage: UsageIn}
}

// Out returns a write operand for p.
func Out(p *Parameter) Operand {
	return Operand{Parameter: p, Usage: UsageOut}
}

// InOut returns a read-write operand for p.
func InOut(p *Parameter) Operand {
	return Operand{Parameter: p, Usage: UsageInOut}
}

// WithMask returns a copy of the operand restricted to the masked
// components.
func (o Operand) WithMask(mask ComponentMask) Operand {
	o.Mask = mask
	return o
}

// FunctionAtom is a single operation in a function body. Atoms carry
// a group-execution order; linearization runs groups in ascending
// order and preserves registration order within a group.
type FunctionAtom interface {
	// GroupOrder returns the execution-group order of the atom.
	GroupOrder() int

	// Operands returns the operand list in declaration order.
	Operands() []Operand

	functionAtom()
}

type atomBase struct {
	groupOrder int
	operands   []Operand
}

func (a *atomBase) GroupOrder() int     { return a.groupOrder }
func (a *atomBase) Operands() []Operand { return a.operands }
func (a *atomBase) functionAtom()       {}

// FunctionInvocation is an atom that calls a named helper function.
type FunctionInvocation struct {
	atomBase
	name string
}

// NewFunctionInvocation creates an invocation of the named helper at
// the given group order.
func NewFunctionInvocation(name string, groupOrder int, operands ...Operand) *FunctionInvocation {
	return &FunctionInvocation{
		atomBase: atomBase{groupOrder: groupOrder, operands: operands},
		name:     name,
	}
}

// Name returns the callee name.
func (a *FunctionInvocation) Name() string { return a.name }

// AssignmentAtom is an atom that copies a source operand into a
// destination operand.
type AssignmentAtom struct {
	atomBase
}

// NewAssignmentAtom creates an assignment at the given group order.
// The operand list must carry one written and one read operand.
func NewAssignmentAtom(groupOrder int, operands ...Operand) *AssignmentAtom {
	return &AssignmentAtom{
		atomBase: atomBase{groupOrder: groupOrder, operands: operands},
	}
}

// SampleTextureAtom is an atom that samples a texture through a
// sampler parameter.
type SampleTextureAtom struct {
	atomBase
}

// NewSampleTextureAtom creates a texture sample at the given group
// order. The operand list must carry a read sampler operand, a read
// coordinate operand, and a written destination operand.
func NewSampleTextureAtom(groupOrder int, operands ...Operand) *SampleTextureAtom {
	return &SampleTextureAtom{
		atomBase: atomBase{groupOrder: groupOrder, operands: operands},
	}
}
