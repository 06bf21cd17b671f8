package metadata

/** @brief Shader stages a builtin shader can belong to. */
type ShaderStage int

const (
	ShaderStageVertex   ShaderStage = 0x00000001
	ShaderStageFragment ShaderStage = 0x00000004
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	}
	return "unknown"
}

const (
	/** @brief Transforms vertices by the model-view-projection matrix. */
	BuiltinShaderVertexMVP string = "VShader_MVP"
	/** @brief Per-vertex lighting, vertex colour only. */
	BuiltinShaderFragmentLitGouraud string = "FShader_LitGouraud"
	/** @brief Per-vertex lighting modulated by a texture. */
	BuiltinShaderFragmentLitTexture string = "FShader_LitTexture"
)

/**
 * @brief Represents a shader on the frontend.
 */
type Shader struct {
	/** @brief The shader identifier */
	ID    uint32
	Name  string
	Stage ShaderStage
	/** @brief Backend specific data. */
	InternalData interface{}
}

/**
 * @brief A linked vertex + fragment pair.
 */
type ShaderSet struct {
	ID       uint32
	Vertex   *Shader
	Fragment *Shader
}

// Name returns "vertex+fragment", used in logs.
func (s *ShaderSet) Name() string {
	if s == nil || s.Vertex == nil || s.Fragment == nil {
		return ""
	}
	return s.Vertex.Name + "+" + s.Fragment.Name
}
