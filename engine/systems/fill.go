package systems

import (
	"fmt"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

// FillCollection holds the fills every populated scene draws with: one flat
// lit fill and one lit fill per builtin texture. It is built once and reused
// across Populate calls.
type FillCollection struct {
	LitSolid    *metadata.Fill
	litTextures map[metadata.BuiltinTexture]*metadata.Fill
}

func NewFillCollection(r renderer.RendererBackend, textures *TextureSystem) (*FillCollection, error) {
	if r == nil || textures == nil {
		err := fmt.Errorf("func NewFillCollection - renderer and texture system are required: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}

	vs, err := r.ShaderLoadBuiltin(metadata.ShaderStageVertex, metadata.BuiltinShaderVertexMVP)
	if err != nil {
		core.LogError("failed to load vertex shader: %s", err)
		return nil, err
	}
	gouraud, err := r.ShaderLoadBuiltin(metadata.ShaderStageFragment, metadata.BuiltinShaderFragmentLitGouraud)
	if err != nil {
		core.LogError("failed to load fragment shader: %s", err)
		return nil, err
	}
	litTex, err := r.ShaderLoadBuiltin(metadata.ShaderStageFragment, metadata.BuiltinShaderFragmentLitTexture)
	if err != nil {
		core.LogError("failed to load fragment shader: %s", err)
		return nil, err
	}

	solidSet, err := r.ShaderSetCreate(vs, gouraud)
	if err != nil {
		return nil, err
	}
	texturedSet, err := r.ShaderSetCreate(vs, litTex)
	if err != nil {
		return nil, err
	}

	fc := &FillCollection{
		LitSolid: &metadata.Fill{
			Name:    "lit_solid",
			Shaders: solidSet,
			Builtin: metadata.TexNone,
		},
		litTextures: make(map[metadata.BuiltinTexture]*metadata.Fill, len(metadata.BuiltinTextures)),
	}
	for _, tag := range metadata.BuiltinTextures {
		tex, err := textures.Get(tag)
		if err != nil {
			core.LogError("fill for %s: %s", tag, err)
			return nil, err
		}
		fc.litTextures[tag] = &metadata.Fill{
			Name:    "lit_" + tag.String(),
			Shaders: texturedSet,
			Texture: tex,
			Builtin: tag,
		}
	}
	return fc, nil
}

// LitTexture returns the lit fill sampling tag, or nil if tag is not a builtin texture.
func (fc *FillCollection) LitTexture(tag metadata.BuiltinTexture) *metadata.Fill {
	return fc.litTextures[tag]
}

// ForTexture returns LitSolid for TexNone and the matching LitTexture otherwise.
func (fc *FillCollection) ForTexture(tag metadata.BuiltinTexture) (*metadata.Fill, error) {
	if tag == metadata.TexNone {
		return fc.LitSolid, nil
	}
	if f := fc.LitTexture(tag); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnknownBuiltinTexture, tag)
}
