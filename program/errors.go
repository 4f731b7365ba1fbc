package program

import "fmt"

// ErrorKind categorizes program assembly errors.
type ErrorKind uint8

const (
	// ErrTypeMismatch indicates a resolve request whose element type
	// conflicts with an already registered parameter.
	ErrTypeMismatch ErrorKind = iota

	// ErrUnsupportedSemantic indicates a binding the target list cannot
	// carry.
	ErrUnsupportedSemantic

	// ErrDuplicateBinding indicates two parameters on one
	// (semantic, index) slot of the same list.
	ErrDuplicateBinding

	// ErrDuplicateName indicates a parameter name already declared in
	// the function.
	ErrDuplicateName

	// ErrUndeclaredContentType indicates a content value without an
	// implied element type.
	ErrUndeclaredContentType
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrUnsupportedSemantic:
		return "UnsupportedSemantic"
	case ErrDuplicateBinding:
		return "DuplicateBinding"
	case ErrDuplicateName:
		return "DuplicateName"
	case ErrUndeclaredContentType:
		return "UndeclaredContentType"
	default:
		return "Unknown"
	}
}

// Error represents a program assembly error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Function is the name of the function the operation targeted.
	Function string

	// Semantic is the requested binding semantic, when relevant.
	Semantic Semantic

	// Index is the requested binding index, or -1 when not relevant.
	Index int

	// Name is the offending parameter name, when relevant.
	Name string

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("program %s: %s", e.Kind, e.Message)
}

// NewError creates a program error without parameter context.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Index:   -1,
		Message: message,
	}
}

// IsTypeMismatch returns true if the error is ErrTypeMismatch.
func (e *Error) IsTypeMismatch() bool {
	return e.Kind == ErrTypeMismatch
}

// IsUnsupportedSemantic returns true if the error is ErrUnsupportedSemantic.
func (e *Error) IsUnsupportedSemantic() bool {
	return e.Kind == ErrUnsupportedSemantic
}

// IsDuplicateBinding returns true if the error is ErrDuplicateBinding.
func (e *Error) IsDuplicateBinding() bool {
	return e.Kind == ErrDuplicateBinding
}

// IsDuplicateName returns true if the error is ErrDuplicateName.
func (e *Error) IsDuplicateName() bool {
	return e.Kind == ErrDuplicateName
}

// IsUndeclaredContentType returns true if the error is ErrUndeclaredContentType.
func (e *Error) IsUndeclaredContentType() bool {
	return e.Kind == ErrUndeclaredContentType
}

func typeMismatchError(fn string, semantic Semantic, index int) *Error {
	return &Error{
		Kind:     ErrTypeMismatch,
		Function: fn,
		Semantic: semantic,
		Index:    index,
		Message: fmt.Sprintf("cannot resolve parameter semantic %s index %d in function <%s> due to type mismatch",
			semantic, index, fn),
	}
}

func unsupportedSemanticError(fn string, semantic Semantic, index int) *Error {
	return &Error{
		Kind:     ErrUnsupportedSemantic,
		Function: fn,
		Semantic: semantic,
		Index:    index,
		Message: fmt.Sprintf("cannot resolve parameter semantic %s index %d in function <%s>: semantic is not supported here",
			semantic, index, fn),
	}
}

func duplicateBindingError(fn string, name string, semantic Semantic, index int) *Error {
	return &Error{
		Kind:     ErrDuplicateBinding,
		Function: fn,
		Semantic: semantic,
		Index:    index,
		Name:     name,
		Message: fmt.Sprintf("parameter <%s> duplicates binding semantic %s index %d in function <%s>",
			name, semantic, index, fn),
	}
}

func duplicateNameError(fn string, name string) *Error {
	return &Error{
		Kind:     ErrDuplicateName,
		Function: fn,
		Index:    -1,
		Name:     name,
		Message:  fmt.Sprintf("parameter <%s> already declared in function <%s>", name, fn),
	}
}

func undeclaredContentError(fn string, content Content) *Error {
	return &Error{
		Kind:     ErrUndeclaredContentType,
		Function: fn,
		Index:    -1,
		Message:  fmt.Sprintf("cannot derive element type from content %s in function <%s>", content, fn),
	}
}

func localTypeMismatchError(fn string, name string) *Error {
	return &Error{
		Kind:     ErrTypeMismatch,
		Function: fn,
		Index:    -1,
		Name:     name,
		Message:  fmt.Sprintf("cannot resolve local parameter <%s> in function <%s> due to type mismatch", name, fn),
	}
}
