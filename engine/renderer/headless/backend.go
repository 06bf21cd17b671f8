// Package headless implements an in-memory renderer backend. Textures are
// kept as RGBA images with their mip chains so the generated content can be
// inspected and exported without a GPU.
package headless

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

var builtinShaders = map[string]metadata.ShaderStage{
	metadata.BuiltinShaderVertexMVP:          metadata.ShaderStageVertex,
	metadata.BuiltinShaderFragmentLitGouraud: metadata.ShaderStageFragment,
	metadata.BuiltinShaderFragmentLitTexture: metadata.ShaderStageFragment,
}

type textureData struct {
	texture *metadata.Texture
	levels  []*image.RGBA
}

// Backend is safe for concurrent use.
type Backend struct {
	mu            sync.Mutex
	nextTextureID uint32
	nextShaderID  uint32
	nextSetID     uint32
	textures      map[uint32]*textureData
	shaders       map[string]*metadata.Shader
}

func New() *Backend {
	return &Backend{
		textures: make(map[uint32]*textureData),
		shaders:  make(map[string]*metadata.Shader),
	}
}

func (b *Backend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, td := range b.textures {
		invalidate(td.texture)
		delete(b.textures, id)
	}
	b.shaders = make(map[string]*metadata.Shader)
	return nil
}

func (b *Backend) TextureCreate(pixels []uint8, texture *metadata.Texture) error {
	if texture == nil {
		return fmt.Errorf("%w: nil texture", core.ErrInvalidTexture)
	}
	if texture.ChannelCount != 4 {
		return fmt.Errorf("%w: %s has %d channels, only RGBA is supported", core.ErrInvalidTexture, texture.Name, texture.ChannelCount)
	}
	w, h := int(texture.Width), int(texture.Height)
	if w == 0 || h == 0 || len(pixels) != w*h*4 {
		return fmt.Errorf("%w: %s is %dx%d but got %d bytes", core.ErrInvalidTexture, texture.Name, w, h, len(pixels))
	}

	base := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(base.Pix, pixels)
	levels := []*image.RGBA{base}
	if texture.Flags.Has(metadata.TextureFlagGenMipmaps) {
		levels = buildMipChain(base)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextTextureID++
	texture.ID = b.nextTextureID
	texture.MipLevels = uint32(len(levels))
	if texture.Generation == metadata.InvalidID {
		texture.Generation = 0
	} else {
		texture.Generation++
	}
	td := &textureData{texture: texture, levels: levels}
	texture.InternalData = td
	b.textures[texture.ID] = td

	core.LogDebug("headless: created texture %s (%dx%d, %d levels)", texture.Name, w, h, len(levels))
	return nil
}

// buildMipChain halves the image until both sides are one pixel.
func buildMipChain(base *image.RGBA) []*image.RGBA {
	levels := []*image.RGBA{base}
	prev := base
	for {
		w, h := prev.Bounds().Dx(), prev.Bounds().Dy()
		if w == 1 && h == 1 {
			break
		}
		next := image.NewRGBA(image.Rect(0, 0, max(1, w/2), max(1, h/2)))
		draw.BiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		levels = append(levels, next)
		prev = next
	}
	return levels
}

func (b *Backend) TextureSetSampleMode(texture *metadata.Texture, mode metadata.SampleMode) error {
	if _, err := b.lookup(texture); err != nil {
		return err
	}
	texture.SampleMode = mode
	return nil
}

func (b *Backend) TextureDestroy(texture *metadata.Texture) error {
	if _, err := b.lookup(texture); err != nil {
		return err
	}
	b.mu.Lock()
	delete(b.textures, texture.ID)
	b.mu.Unlock()
	invalidate(texture)
	return nil
}

// Level returns mip level n of a texture created by this backend.
func (b *Backend) Level(texture *metadata.Texture, n int) (*image.RGBA, error) {
	td, err := b.lookup(texture)
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= len(td.levels) {
		return nil, fmt.Errorf("%w: %s has no mip level %d", core.ErrInvalidTexture, texture.Name, n)
	}
	return td.levels[n], nil
}

func (b *Backend) lookup(texture *metadata.Texture) (*textureData, error) {
	if texture == nil {
		return nil, fmt.Errorf("%w: nil texture", core.ErrInvalidTexture)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	td, ok := b.textures[texture.ID]
	if !ok || td.texture != texture {
		return nil, fmt.Errorf("%w: %s", core.ErrTextureNotFound, texture.Name)
	}
	return td, nil
}

func invalidate(texture *metadata.Texture) {
	texture.ID = metadata.InvalidID
	texture.Generation = metadata.InvalidID
	texture.MipLevels = 0
	texture.InternalData = nil
}

// ShaderLoadBuiltin returns the named builtin shader. Loading the same name
// twice returns the same shader.
func (b *Backend) ShaderLoadBuiltin(stage metadata.ShaderStage, name string) (*metadata.Shader, error) {
	want, ok := builtinShaders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownShader, name)
	}
	if want != stage {
		return nil, fmt.Errorf("%w: %s is a %s shader, requested as %s", core.ErrInvalidShader, name, want, stage)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.shaders[name]; ok {
		return s, nil
	}
	b.nextShaderID++
	s := &metadata.Shader{ID: b.nextShaderID, Name: name, Stage: stage}
	b.shaders[name] = s
	return s, nil
}

// ShaderSetCreate links exactly one vertex and one fragment shader.
func (b *Backend) ShaderSetCreate(shaders ...*metadata.Shader) (*metadata.ShaderSet, error) {
	set := &metadata.ShaderSet{}
	for _, s := range shaders {
		if s == nil {
			return nil, fmt.Errorf("%w: nil shader", core.ErrInvalidShader)
		}
		switch s.Stage {
		case metadata.ShaderStageVertex:
			if set.Vertex != nil {
				return nil, fmt.Errorf("%w: two vertex shaders", core.ErrInvalidShader)
			}
			set.Vertex = s
		case metadata.ShaderStageFragment:
			if set.Fragment != nil {
				return nil, fmt.Errorf("%w: two fragment shaders", core.ErrInvalidShader)
			}
			set.Fragment = s
		}
	}
	if set.Vertex == nil || set.Fragment == nil {
		return nil, fmt.Errorf("%w: a shader set needs a vertex and a fragment stage", core.ErrInvalidShader)
	}

	b.mu.Lock()
	b.nextSetID++
	set.ID = b.nextSetID
	b.mu.Unlock()
	return set, nil
}
