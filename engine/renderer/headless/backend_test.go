package headless

import (
	"image/color"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

func solidPixels(w, h int, c color.RGBA) []uint8 {
	pixels := make([]uint8, w*h*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i+0] = c.R
		pixels[i+1] = c.G
		pixels[i+2] = c.B
		pixels[i+3] = c.A
	}
	return pixels
}

func newTexture(name string, w, h uint32, flags metadata.TextureFlag) *metadata.Texture {
	return &metadata.Texture{
		Name:         name,
		Width:        w,
		Height:       h,
		ChannelCount: 4,
		Generation:   metadata.InvalidID,
		Flags:        metadata.TextureFlagBits(flags),
	}
}

func TestTextureCreateBuildsMipChain(t *testing.T) {
	b := New()
	grey := color.RGBA{R: 80, G: 80, B: 80, A: 255}
	tex := newTexture("grey", 256, 256, metadata.TextureFlagGenMipmaps)

	require.NoError(t, b.TextureCreate(solidPixels(256, 256, grey), tex))
	assert.True(t, tex.IsValid())
	assert.Equal(t, uint32(0), tex.Generation)
	assert.Equal(t, uint32(9), tex.MipLevels)

	last, err := b.Level(tex, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, last.Bounds().Dx())
	assert.Equal(t, grey, last.RGBAAt(0, 0))

	mid, err := b.Level(tex, 3)
	require.NoError(t, err)
	assert.Equal(t, 32, mid.Bounds().Dx())
	assert.Equal(t, grey, mid.RGBAAt(7, 19))

	_, err = b.Level(tex, 9)
	assert.ErrorIs(t, err, core.ErrInvalidTexture)
}

func TestTextureCreateWithoutMipmaps(t *testing.T) {
	b := New()
	tex := newTexture("flat", 16, 8, 0)
	require.NoError(t, b.TextureCreate(solidPixels(16, 8, color.RGBA{A: 255}), tex))
	assert.Equal(t, uint32(1), tex.MipLevels)
}

func TestTextureCreateRejectsBadInput(t *testing.T) {
	b := New()

	err := b.TextureCreate(make([]uint8, 10), newTexture("short", 4, 4, 0))
	assert.ErrorIs(t, err, core.ErrInvalidTexture)

	err = b.TextureCreate(nil, newTexture("empty", 0, 0, 0))
	assert.ErrorIs(t, err, core.ErrInvalidTexture)

	rgb := newTexture("rgb", 2, 2, 0)
	rgb.ChannelCount = 3
	err = b.TextureCreate(make([]uint8, 12), rgb)
	assert.ErrorIs(t, err, core.ErrInvalidTexture)

	assert.ErrorIs(t, b.TextureCreate(nil, nil), core.ErrInvalidTexture)
}

func TestTextureSampleModeAndDestroy(t *testing.T) {
	b := New()
	tex := newTexture("t", 2, 2, 0)
	require.NoError(t, b.TextureCreate(make([]uint8, 16), tex))

	mode := metadata.SampleAnisotropic | metadata.SampleRepeat
	require.NoError(t, b.TextureSetSampleMode(tex, mode))
	assert.Equal(t, mode, tex.SampleMode)
	assert.Equal(t, "anisotropic|repeat", tex.SampleMode.String())

	require.NoError(t, b.TextureDestroy(tex))
	assert.False(t, tex.IsValid())
	assert.ErrorIs(t, b.TextureDestroy(tex), core.ErrTextureNotFound)
	assert.ErrorIs(t, b.TextureSetSampleMode(tex, mode), core.ErrTextureNotFound)
}

func TestShaderLoadBuiltin(t *testing.T) {
	b := New()

	vs, err := b.ShaderLoadBuiltin(metadata.ShaderStageVertex, metadata.BuiltinShaderVertexMVP)
	require.NoError(t, err)
	again, err := b.ShaderLoadBuiltin(metadata.ShaderStageVertex, metadata.BuiltinShaderVertexMVP)
	require.NoError(t, err)
	assert.Same(t, vs, again)

	_, err = b.ShaderLoadBuiltin(metadata.ShaderStageFragment, "FShader_Missing")
	assert.ErrorIs(t, err, core.ErrUnknownShader)

	_, err = b.ShaderLoadBuiltin(metadata.ShaderStageFragment, metadata.BuiltinShaderVertexMVP)
	assert.ErrorIs(t, err, core.ErrInvalidShader)
}

func TestShaderSetCreate(t *testing.T) {
	b := New()
	vs, err := b.ShaderLoadBuiltin(metadata.ShaderStageVertex, metadata.BuiltinShaderVertexMVP)
	require.NoError(t, err)
	fs, err := b.ShaderLoadBuiltin(metadata.ShaderStageFragment, metadata.BuiltinShaderFragmentLitGouraud)
	require.NoError(t, err)

	set, err := b.ShaderSetCreate(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, "VShader_MVP+FShader_LitGouraud", set.Name())

	_, err = b.ShaderSetCreate(vs)
	assert.ErrorIs(t, err, core.ErrInvalidShader)
	_, err = b.ShaderSetCreate(vs, vs, fs)
	assert.ErrorIs(t, err, core.ErrInvalidShader)
	_, err = b.ShaderSetCreate(vs, nil)
	assert.ErrorIs(t, err, core.ErrInvalidShader)
}

func TestExportPNG(t *testing.T) {
	b := New()
	c := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	tex := newTexture("light", 8, 8, 0)
	require.NoError(t, b.TextureCreate(solidPixels(8, 8, c), tex))

	path, err := b.ExportPNG(tex, t.TempDir())
	require.NoError(t, err)

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	r, g, bl, a := img.At(3, 3).RGBA()
	assert.Equal(t, []uint32{180, 180, 180, 255}, []uint32{r >> 8, g >> 8, bl >> 8, a >> 8})
}

func TestShutdownInvalidatesTextures(t *testing.T) {
	b := New()
	tex := newTexture("t", 2, 2, 0)
	require.NoError(t, b.TextureCreate(make([]uint8, 16), tex))
	require.NoError(t, b.Shutdown())
	assert.False(t, tex.IsValid())
}
