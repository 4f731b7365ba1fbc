package rtshader

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rtshader/program"
)

// VertexLayout derives the vertex buffer layout matching the inputs of
// a vertex entry function. Attributes appear in declaration order,
// tightly packed into a single interleaved buffer, with shader
// locations matching the VertexInput struct the WGSL writer emits for
// the same function.
func VertexLayout(fn *program.Function) ([]gputypes.VertexBufferLayout, error) {
	inputs := fn.InputParameters()
	if len(inputs) == 0 {
		return nil, nil
	}

	attributes := make([]gputypes.VertexAttribute, 0, len(inputs))
	offset := uint64(0)
	for i, p := range inputs {
		format, err := vertexFormat(p.Type())
		if err != nil {
			return nil, fmt.Errorf("input <%s>: %w", p.Name(), err)
		}
		attributes = append(attributes, gputypes.VertexAttribute{
			Format:         format,
			Offset:         offset,
			ShaderLocation: uint32(i),
		})
		offset += 4 * uint64(p.Type().Components())
	}

	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: offset,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  attributes,
		},
	}, nil
}

// vertexFormat maps a float element type to its vertex format. Vertex
// attributes are always float data; blend weights and indices resolve
// as float4 like every other attribute.
func vertexFormat(t program.GpuType) (gputypes.VertexFormat, error) {
	switch t {
	case program.GpuFloat1:
		return gputypes.VertexFormatFloat32, nil
	case program.GpuFloat2:
		return gputypes.VertexFormatFloat32x2, nil
	case program.GpuFloat3:
		return gputypes.VertexFormatFloat32x3, nil
	case program.GpuFloat4:
		return gputypes.VertexFormatFloat32x4, nil
	default:
		var zero gputypes.VertexFormat
		return zero, fmt.Errorf("no vertex format for %s", t)
	}
}
