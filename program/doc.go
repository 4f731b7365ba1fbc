// Package program implements runtime assembly of shader programs from
// typed parameters and ordered operations.
//
// The package is organized around a Function type that owns three
// parameter lists and a container of function atoms:
//
//   - Inputs: parameters the function receives from the pipeline
//   - Outputs: parameters the function writes for the next stage
//   - Locals: temporaries scoped to the function body
//   - Atoms: the operations of the body, grouped by execution order
//
// # Parameter Resolution
//
// Callers do not construct input and output parameters directly.
// They resolve them by semantic, content, element type, and index:
//
//	pos, err := fn.ResolveInputParameter(program.SemanticPosition, 0,
//	    program.ContentPositionObjectSpace, program.GpuFloat4)
//
// Resolution is idempotent. Asking twice for the same binding returns
// the same parameter, so independent feature stages can share data
// without coordinating. Conflicting requests fail with *Error rather
// than silently aliasing a register.
//
// # Function Atoms
//
// Atoms are the instructions of the assembled function. Each atom
// carries a group order; linearization sorts groups ascending and
// preserves insertion order inside a group. The FunctionStageRef
// facade binds a group order once and lets feature code append atoms
// without repeating it:
//
//	stage := fn.Stage(program.VSTransform)
//	stage.CallFunction("transformPosition", program.In(wvp),
//	    program.In(pos), program.Out(outPos))
//
// # Programs and Sets
//
// A Program pairs an entry Function with the uniforms it draws from
// the render state. A Set groups the vertex and fragment programs that
// together describe one pipeline. Code generation for sets lives in
// the wgsl package.
package program
