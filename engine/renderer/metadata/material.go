package metadata

/**
 * @brief A fill binds a shader set with an optional texture and is applied
 * to a whole model.
 */
type Fill struct {
	/** @brief The fill name. */
	Name string
	/** @brief The linked shader pair used to draw. */
	Shaders *ShaderSet
	/** @brief Nil for solid fills. */
	Texture *Texture
	/** @brief The builtin texture tag, TexNone for solid fills. */
	Builtin BuiltinTexture
}

// IsTextured reports whether the fill samples a texture.
func (f *Fill) IsTextured() bool {
	return f != nil && f.Texture != nil
}
