package program

// GpuType identifies the element type of a shader parameter.
type GpuType uint8

const (
	// GpuUnknown marks a parameter whose type has not been declared.
	// Resolution derives a concrete type from the content when it can.
	GpuUnknown GpuType = iota
	// GpuFloat1 is a single 32-bit float.
	GpuFloat1
	// GpuFloat2 is a 2-component float vector.
	GpuFloat2
	// GpuFloat3 is a 3-component float vector.
	GpuFloat3
	// GpuFloat4 is a 4-component float vector.
	GpuFloat4
	// GpuInt1 is a single 32-bit signed integer.
	GpuInt1
	// GpuInt2 is a 2-component integer vector.
	GpuInt2
	// GpuInt3 is a 3-component integer vector.
	GpuInt3
	// GpuInt4 is a 4-component integer vector.
	GpuInt4
	// GpuMatrix2x2 is a 2x2 float matrix.
	GpuMatrix2x2
	// GpuMatrix3x3 is a 3x3 float matrix.
	GpuMatrix3x3
	// GpuMatrix4x4 is a 4x4 float matrix.
	GpuMatrix4x4
	// GpuSampler2D is a 2D texture sampler.
	GpuSampler2D
	// GpuSamplerCube is a cube texture sampler.
	GpuSamplerCube
)

// String returns the shading-language style name of the type.
func (t GpuType) String() string {
	switch t {
	case GpuFloat1:
		return "float1"
	case GpuFloat2:
		return "float2"
	case GpuFloat3:
		return "float3"
	case GpuFloat4:
		return "float4"
	case GpuInt1:
		return "int1"
	case GpuInt2:
		return "int2"
	case GpuInt3:
		return "int3"
	case GpuInt4:
		return "int4"
	case GpuMatrix2x2:
		return "matrix2x2"
	case GpuMatrix3x3:
		return "matrix3x3"
	case GpuMatrix4x4:
		return "matrix4x4"
	case GpuSampler2D:
		return "sampler2D"
	case GpuSamplerCube:
		return "samplerCube"
	default:
		return "unknown"
	}
}

// Components returns the number of scalar components of the type.
// Samplers and GpuUnknown have zero components.
func (t GpuType) Components() int {
	switch t {
	case GpuFloat1, GpuInt1:
		return 1
	case GpuFloat2, GpuInt2:
		return 2
	case GpuFloat3, GpuInt3:
		return 3
	case GpuFloat4, GpuInt4, GpuMatrix2x2:
		return 4
	case GpuMatrix3x3:
		return 9
	case GpuMatrix4x4:
		return 16
	default:
		return 0
	}
}

// IsFloat reports whether the type is a float scalar or vector.
func (t GpuType) IsFloat() bool {
	return t >= GpuFloat1 && t <= GpuFloat4
}

// IsInt reports whether the type is an integer scalar or vector.
func (t GpuType) IsInt() bool {
	return t >= GpuInt1 && t <= GpuInt4
}

// IsMatrix reports whether the type is a matrix.
func (t GpuType) IsMatrix() bool {
	return t >= GpuMatrix2x2 && t <= GpuMatrix4x4
}

// IsSampler reports whether the type is a texture sampler.
func (t GpuType) IsSampler() bool {
	return t == GpuSampler2D || t == GpuSamplerCube
}
