package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

const (
	textureLight uint8 = 180
	textureDark  uint8 = 80
	brickMortar  uint8 = 60
)

// TextureSystem owns the procedural builtin textures. They are created once
// through the backend and shared by every scene population.
type TextureSystem struct {
	textures map[metadata.BuiltinTexture]*metadata.Texture
	renderer renderer.RendererBackend
	jobs     *JobSystem
}

func NewTextureSystem(r renderer.RendererBackend) (*TextureSystem, error) {
	if r == nil {
		err := fmt.Errorf("func NewTextureSystem - renderer backend must not be nil: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &TextureSystem{
		textures: make(map[metadata.BuiltinTexture]*metadata.Texture),
		renderer: r,
	}, nil
}

// UseJobs makes Initialize generate pixels on js instead of the caller.
func (ts *TextureSystem) UseJobs(js *JobSystem) {
	ts.jobs = js
}

// Initialize creates every builtin texture with mipmaps and anisotropic
// repeat sampling. A texture the backend leaves invalid is a setup error.
func (ts *TextureSystem) Initialize() error {
	var missing []metadata.BuiltinTexture
	for _, tag := range metadata.BuiltinTextures {
		if _, ok := ts.textures[tag]; !ok {
			missing = append(missing, tag)
		}
	}
	pixels, err := ts.generate(missing)
	if err != nil {
		return err
	}

	for i, tag := range missing {
		t := &metadata.Texture{
			ID:           metadata.InvalidID,
			Name:         tag.String(),
			TextureType:  metadata.TextureType2d,
			Width:        metadata.BuiltinTextureDimension,
			Height:       metadata.BuiltinTextureDimension,
			ChannelCount: uint8(metadata.BuiltinTextureChannels),
			Generation:   metadata.InvalidID,
			Flags:        metadata.TextureFlagBits(metadata.TextureFlagGenMipmaps),
		}
		if err := ts.renderer.TextureCreate(pixels[i], t); err != nil {
			core.LogError("failed to create builtin texture %s: %s", tag, err)
			return err
		}
		if !t.IsValid() {
			err := fmt.Errorf("%w: builtin texture %s", core.ErrInvalidTexture, tag)
			core.LogError(err.Error())
			return err
		}
		if err := ts.renderer.TextureSetSampleMode(t, metadata.SampleAnisotropic|metadata.SampleRepeat); err != nil {
			core.LogError("failed to set sample mode on %s: %s", tag, err)
			return err
		}
		ts.textures[tag] = t
		core.LogDebug("builtin texture %s ready (%d mip levels)", tag, t.MipLevels)
	}
	return nil
}

// generate returns the pixels of each tag, in order. Textures are only ever
// created on the calling goroutine.
func (ts *TextureSystem) generate(tags []metadata.BuiltinTexture) ([][]uint8, error) {
	out := make([][]uint8, len(tags))
	errs := make([]error, len(tags))
	if ts.jobs == nil {
		for i, tag := range tags {
			out[i], errs[i] = GenerateBuiltinPixels(tag)
		}
	} else {
		var wg sync.WaitGroup
		for i, tag := range tags {
			i, tag := i, tag
			wg.Add(1)
			ts.jobs.Submit(metadata.JobTask{
				Name: "generate " + tag.String(),
				OnStart: func() error {
					out[i], errs[i] = GenerateBuiltinPixels(tag)
					return errs[i]
				},
				OnCompletionCallback: wg.Done,
			})
		}
		wg.Wait()
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (ts *TextureSystem) Get(tag metadata.BuiltinTexture) (*metadata.Texture, error) {
	if !tag.IsValid() {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownBuiltinTexture, tag)
	}
	t, ok := ts.textures[tag]
	if !ok {
		return nil, fmt.Errorf("%w: texture %s", core.ErrSystemNotInitialized, tag)
	}
	return t, nil
}

func (ts *TextureSystem) Shutdown() error {
	// Destroy all loaded textures.
	for tag, t := range ts.textures {
		if t.Generation != metadata.InvalidID {
			if err := ts.renderer.TextureDestroy(t); err != nil {
				return err
			}
		}
		delete(ts.textures, tag)
	}
	return nil
}

// GenerateBuiltinPixels returns the RGBA pixels for tag.
func GenerateBuiltinPixels(tag metadata.BuiltinTexture) ([]uint8, error) {
	switch tag {
	case metadata.TexChecker:
		return GenerateCheckerPixels(), nil
	case metadata.TexBlock:
		return GenerateBrickPixels(), nil
	case metadata.TexPanel:
		return GeneratePanelPixels(), nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnknownBuiltinTexture, tag)
}

// GenerateCheckerPixels alternates light and dark 128 pixel squares.
func GenerateCheckerPixels() []uint8 {
	return generatePixels(func(i, j uint32) uint8 {
		if ((i/4>>5)^(j/4>>5))&1 != 0 {
			return textureLight
		}
		return textureDark
	})
}

// GeneratePanelPixels draws a dark 4 pixel border along the top and left edges.
func GeneratePanelPixels() []uint8 {
	return generatePixels(func(i, j uint32) uint8 {
		if i/4 == 0 || j/4 == 0 {
			return textureDark
		}
		return textureLight
	})
}

// GenerateBrickPixels draws horizontal mortar every 64 rows and vertical
// joints every 128 columns, shifted by 64 columns on alternate courses.
func GenerateBrickPixels() []uint8 {
	return generatePixels(func(i, j uint32) uint8 {
		x, y := i/4, j/4
		var joint uint32
		if x&31 == 0 {
			joint = 1
		}
		if y&15 == 0 || (x&15 == 0 && (joint^((y>>4)&1)) == 0) {
			return brickMortar
		}
		return textureLight
	})
}

// generatePixels fills a builtin-sized RGBA buffer with an opaque grey level
// chosen per pixel; i is the column and j the row.
func generatePixels(shade func(i, j uint32) uint8) []uint8 {
	dim := metadata.BuiltinTextureDimension
	channels := metadata.BuiltinTextureChannels
	pixels := make([]uint8, dim*dim*channels)

	// Each pixel.
	for j := uint32(0); j < dim; j++ {
		for i := uint32(0); i < dim; i++ {
			index_bpp := ((j * dim) + i) * channels
			v := shade(i, j)
			pixels[index_bpp+0] = v
			pixels[index_bpp+1] = v
			pixels[index_bpp+2] = v
			pixels[index_bpp+3] = 255
		}
	}
	return pixels
}
