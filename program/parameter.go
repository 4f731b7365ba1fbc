package program

import "strconv"

// Semantic identifies the pipeline binding slot family of a parameter.
type Semantic uint8

const (
	// SemanticUnknown marks parameters without a pipeline binding,
	// such as locals and uniforms.
	SemanticUnknown Semantic = iota
	// SemanticPosition binds a position attribute.
	SemanticPosition
	// SemanticBlendWeights binds skinning blend weights.
	SemanticBlendWeights
	// SemanticBlendIndices binds skinning blend indices.
	SemanticBlendIndices
	// SemanticNormal binds a surface normal.
	SemanticNormal
	// SemanticColor binds a vertex color.
	SemanticColor
	// SemanticTexcoord binds a texture coordinate set.
	SemanticTexcoord
	// SemanticBinormal binds a surface binormal.
	SemanticBinormal
	// SemanticTangent binds a surface tangent.
	SemanticTangent
)

// String returns a human-readable name for the semantic.
func (s Semantic) String() string {
	switch s {
	case SemanticPosition:
		return "position"
	case SemanticBlendWeights:
		return "blend_weights"
	case SemanticBlendIndices:
		return "blend_indices"
	case SemanticNormal:
		return "normal"
	case SemanticColor:
		return "color"
	case SemanticTexcoord:
		return "texcoord"
	case SemanticBinormal:
		return "binormal"
	case SemanticTangent:
		return "tangent"
	default:
		return "unknown"
	}
}

// Content identifies what a parameter actually carries. Two parameters
// with the same content hold the same data regardless of their names,
// which is what lets independent feature stages share bindings.
type Content uint8

const (
	// ContentUnknown carries no sharing information. Content lookups
	// never match it.
	ContentUnknown Content = iota
	// ContentPositionObjectSpace is a position in object space.
	ContentPositionObjectSpace
	// ContentPositionWorldSpace is a position in world space.
	ContentPositionWorldSpace
	// ContentPositionProjectiveSpace is a clip-space position.
	ContentPositionProjectiveSpace
	// ContentNormalObjectSpace is a normal in object space.
	ContentNormalObjectSpace
	// ContentNormalWorldSpace is a normal in world space.
	ContentNormalWorldSpace
	// ContentNormalTangentSpace is a normal in tangent space.
	ContentNormalTangentSpace
	// ContentBinormalObjectSpace is a binormal in object space.
	ContentBinormalObjectSpace
	// ContentTangentObjectSpace is a tangent in object space.
	ContentTangentObjectSpace
	// ContentColorDiffuse is the diffuse color.
	ContentColorDiffuse
	// ContentColorSpecular is the specular color.
	ContentColorSpecular
	// ContentBlendWeights are skinning blend weights.
	ContentBlendWeights
	// ContentBlendIndices are skinning blend indices.
	ContentBlendIndices
	// ContentPointSpriteSize is the point sprite size.
	ContentPointSpriteSize
	// ContentTexcoord0 through ContentTexcoord7 are the texture
	// coordinate sets.
	ContentTexcoord0
	ContentTexcoord1
	ContentTexcoord2
	ContentTexcoord3
	ContentTexcoord4
	ContentTexcoord5
	ContentTexcoord6
	ContentTexcoord7
)

// String returns a human-readable name for the content.
func (c Content) String() string {
	switch c {
	case ContentPositionObjectSpace:
		return "position_object_space"
	case ContentPositionWorldSpace:
		return "position_world_space"
	case ContentPositionProjectiveSpace:
		return "position_projective_space"
	case ContentNormalObjectSpace:
		return "normal_object_space"
	case ContentNormalWorldSpace:
		return "normal_world_space"
	case ContentNormalTangentSpace:
		return "normal_tangent_space"
	case ContentBinormalObjectSpace:
		return "binormal_object_space"
	case ContentTangentObjectSpace:
		return "tangent_object_space"
	case ContentColorDiffuse:
		return "color_diffuse"
	case ContentColorSpecular:
		return "color_specular"
	case ContentBlendWeights:
		return "blend_weights"
	case ContentBlendIndices:
		return "blend_indices"
	case ContentPointSpriteSize:
		return "point_sprite_size"
	case ContentTexcoord0, ContentTexcoord1, ContentTexcoord2, ContentTexcoord3,
		ContentTexcoord4, ContentTexcoord5, ContentTexcoord6, ContentTexcoord7:
		return "texcoord" + strconv.Itoa(int(c-ContentTexcoord0))
	default:
		return "unknown"
	}
}

// TexcoordContent returns the content value for texture coordinate
// set n. It panics if n is outside [0, 7].
func TexcoordContent(n int) Content {
	if n < 0 || n > 7 {
		panic("program: texture coordinate set out of range")
	}
	return ContentTexcoord0 + Content(n)
}

// Parameter is a single data slot of a shader function: an input,
// output, local, or uniform. Parameters are immutable after creation
// and compared by identity; most callers obtain them from the resolve
// methods on Function and Program rather than constructing them.
type Parameter struct {
	gtype    GpuType
	name     string
	semantic Semantic
	index    int
	content  Content
}

// NewParameter creates a parameter with explicit attributes.
func NewParameter(gtype GpuType, name string, semantic Semantic, index int, content Content) *Parameter {
	return &Parameter{
		gtype:    gtype,
		name:     name,
		semantic: semantic,
		index:    index,
		content:  content,
	}
}

// Type returns the element type of the parameter.
func (p *Parameter) Type() GpuType { return p.gtype }

// Name returns the parameter name, unique within its function.
func (p *Parameter) Name() string { return p.name }

// Semantic returns the binding semantic of the parameter.
func (p *Parameter) Semantic() Semantic { return p.semantic }

// Index returns the binding index within the semantic.
func (p *Parameter) Index() int { return p.index }

// Content returns the content carried by the parameter.
func (p *Parameter) Content() Content { return p.content }

// String returns a short description for debugging.
func (p *Parameter) String() string {
	return p.gtype.String() + " " + p.name
}

// ParameterByName returns the first parameter in list with the given
// name, or nil when there is none.
func ParameterByName(list []*Parameter, name string) *Parameter {
	for _, p := range list {
		if p.name == name {
			return p
		}
	}
	return nil
}

// ParameterBySemantic returns the first parameter in list bound to the
// given semantic and index, or nil when there is none.
func ParameterBySemantic(list []*Parameter, semantic Semantic, index int) *Parameter {
	for _, p := range list {
		if p.semantic == semantic && p.index == index {
			return p
		}
	}
	return nil
}

// ParameterByContent returns the first parameter in list carrying the
// given content and element type, or nil when there is none. When
// gtype is GpuUnknown the type implied by the content is matched
// instead; ContentUnknown and contents without an implied type never
// match.
func ParameterByContent(list []*Parameter, content Content, gtype GpuType) *Parameter {
	if gtype == GpuUnknown {
		derived, ok := typeFromContent(content)
		if !ok {
			return nil
		}
		gtype = derived
	}
	if content == ContentUnknown {
		return nil
	}
	for _, p := range list {
		if p.content == content && p.gtype == gtype {
			return p
		}
	}
	return nil
}

// typeFromContent derives the element type implied by a content value.
func typeFromContent(content Content) (GpuType, bool) {
	switch content {
	case ContentColorDiffuse, ContentColorSpecular,
		ContentPositionProjectiveSpace, ContentPositionWorldSpace,
		ContentPositionObjectSpace:
		return GpuFloat4, true
	case ContentNormalTangentSpace, ContentNormalObjectSpace,
		ContentNormalWorldSpace:
		return GpuFloat3, true
	case ContentPointSpriteSize:
		return GpuFloat1, true
	default:
		return GpuUnknown, false
	}
}

// NewInPosition returns an input position parameter carrying the
// object-space position.
func NewInPosition(index int) *Parameter {
	return NewParameter(GpuFloat4, "iPos_"+strconv.Itoa(index),
		SemanticPosition, index, ContentPositionObjectSpace)
}

// NewOutPosition returns an output position parameter carrying the
// projective-space position.
func NewOutPosition(index int) *Parameter {
	return NewParameter(GpuFloat4, "oPos_"+strconv.Itoa(index),
		SemanticPosition, index, ContentPositionProjectiveSpace)
}

// NewInWeights returns an input blend weights parameter.
func NewInWeights(index int) *Parameter {
	return NewParameter(GpuFloat4, "iBlendWeights_"+strconv.Itoa(index),
		SemanticBlendWeights, index, ContentBlendWeights)
}

// NewInIndices returns an input blend indices parameter.
func NewInIndices(index int) *Parameter {
	return NewParameter(GpuFloat4, "iBlendIndices_"+strconv.Itoa(index),
		SemanticBlendIndices, index, ContentBlendIndices)
}

// NewInNormal returns an input object-space normal parameter.
func NewInNormal(index int) *Parameter {
	return NewParameter(GpuFloat3, "iNormal_"+strconv.Itoa(index),
		SemanticNormal, index, ContentNormalObjectSpace)
}

// NewOutNormal returns an output object-space normal parameter.
func NewOutNormal(index int) *Parameter {
	return NewParameter(GpuFloat3, "oNormal_"+strconv.Itoa(index),
		SemanticNormal, index, ContentNormalObjectSpace)
}

// NewInColor returns an input color parameter. Index 0 carries the
// diffuse color, higher indices the specular color.
func NewInColor(index int) *Parameter {
	content := ContentColorDiffuse
	if index > 0 {
		content = ContentColorSpecular
	}
	return NewParameter(GpuFloat4, "iColor_"+strconv.Itoa(index),
		SemanticColor, index, content)
}

// NewOutColor returns an output color parameter. Index 0 carries the
// diffuse color, higher indices the specular color.
func NewOutColor(index int) *Parameter {
	content := ContentColorDiffuse
	if index > 0 {
		content = ContentColorSpecular
	}
	return NewParameter(GpuFloat4, "oColor_"+strconv.Itoa(index),
		SemanticColor, index, content)
}

// NewInTexcoord returns an input texture coordinate parameter with the
// given element type and content.
func NewInTexcoord(gtype GpuType, index int, content Content) *Parameter {
	return NewParameter(gtype, "iTexcoord_"+strconv.Itoa(index),
		SemanticTexcoord, index, content)
}

// NewOutTexcoord returns an output texture coordinate parameter with
// the given element type and content.
func NewOutTexcoord(gtype GpuType, index int, content Content) *Parameter {
	return NewParameter(gtype, "oTexcoord_"+strconv.Itoa(index),
		SemanticTexcoord, index, content)
}

// NewInBinormal returns an input object-space binormal parameter.
func NewInBinormal(index int) *Parameter {
	return NewParameter(GpuFloat3, "iBinormal_"+strconv.Itoa(index),
		SemanticBinormal, index, ContentBinormalObjectSpace)
}

// NewOutBinormal returns an output object-space binormal parameter.
func NewOutBinormal(index int) *Parameter {
	return NewParameter(GpuFloat3, "oBinormal_"+strconv.Itoa(index),
		SemanticBinormal, index, ContentBinormalObjectSpace)
}

// NewInTangent returns an input object-space tangent parameter.
func NewInTangent(index int) *Parameter {
	return NewParameter(GpuFloat3, "iTangent_"+strconv.Itoa(index),
		SemanticTangent, index, ContentTangentObjectSpace)
}

// NewOutTangent returns an output object-space tangent parameter.
func NewOutTangent(index int) *Parameter {
	return NewParameter(GpuFloat3, "oTangent_"+strconv.Itoa(index),
		SemanticTangent, index, ContentTangentObjectSpace)
}
