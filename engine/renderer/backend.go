package renderer

import "github.com/spaghettifunk/crystalroom/engine/renderer/metadata"

// RendererBackend is the slice of a renderer the scene populator talks to:
// texture upload and sampler setup, builtin shader lookup and shader linking.
// Drawing, windowing and frame pacing stay on the other side of it.
type RendererBackend interface {
	Shutdown() error
	TextureCreate(pixels []uint8, texture *metadata.Texture) error
	TextureSetSampleMode(texture *metadata.Texture, mode metadata.SampleMode) error
	TextureDestroy(texture *metadata.Texture) error
	ShaderLoadBuiltin(stage metadata.ShaderStage, name string) (*metadata.Shader, error)
	ShaderSetCreate(shaders ...*metadata.Shader) (*metadata.ShaderSet, error)
}
