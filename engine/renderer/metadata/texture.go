package metadata

import "fmt"

/** @brief Marks an unassigned identifier or generation. */
const InvalidID uint32 = 4294967295

/** @brief Width and height, in pixels, of every builtin texture. */
const BuiltinTextureDimension uint32 = 256

/** @brief Channels per pixel of every builtin texture (RGBA). */
const BuiltinTextureChannels uint32 = 4

type TextureFlag int

const (
	/** @brief Indicates if the texture has transparency. */
	TextureFlagHasTransparency TextureFlag = 0x1
	/** @brief Asks the backend to build a full mip chain on creation. */
	TextureFlagGenMipmaps TextureFlag = 0x2
)

/** @brief Holds bit flags for textures.. */
type TextureFlagBits uint8

func (f TextureFlagBits) Has(flag TextureFlag) bool {
	return f&TextureFlagBits(flag) != 0
}

/**
 * @brief Represents various types of textures.
 */
type TextureType int

const (
	/** @brief A standard two-dimensional texture. */
	TextureType2d TextureType = iota
)

/** @brief Sampler configuration requested from the backend, as bit flags. */
type SampleMode uint8

const (
	SampleLinear      SampleMode = 0x0
	SampleNearest     SampleMode = 0x1
	SampleAnisotropic SampleMode = 0x2
	SampleRepeat      SampleMode = 0x0
	SampleClamp       SampleMode = 0x4
	SampleClampBorder SampleMode = 0x8
)

func (m SampleMode) String() string {
	filter := "linear"
	switch {
	case m&SampleAnisotropic != 0:
		filter = "anisotropic"
	case m&SampleNearest != 0:
		filter = "nearest"
	}
	address := "repeat"
	switch {
	case m&SampleClampBorder != 0:
		address = "clamp-border"
	case m&SampleClamp != 0:
		address = "clamp"
	}
	return filter + "|" + address
}

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The unique texture identifier. */
	ID uint32
	/** @brief The texture type. */
	TextureType TextureType
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief The number of channels in the texture. */
	ChannelCount uint8
	/** @brief Holds various Flags for this texture. */
	Flags TextureFlagBits
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The texture Name. */
	Name string
	/** @brief The sampler configuration last applied by the backend. */
	SampleMode SampleMode
	/** @brief Number of mip levels the backend holds, including the base level. */
	MipLevels uint32
	/** @brief Backend specific data. */
	InternalData interface{}
}

// IsValid reports whether the backend finished creating the texture.
func (t *Texture) IsValid() bool {
	return t != nil && t.Generation != InvalidID && t.Width > 0 && t.Height > 0
}

/**
 * @brief Tags the procedurally generated textures every scene can use.
 */
type BuiltinTexture int

const (
	TexNone BuiltinTexture = iota
	TexChecker
	TexBlock
	TexPanel
	TexCount
)

// BuiltinTextures lists every tag that maps to a real texture.
var BuiltinTextures = []BuiltinTexture{TexChecker, TexBlock, TexPanel}

func (b BuiltinTexture) String() string {
	switch b {
	case TexNone:
		return "none"
	case TexChecker:
		return "checker"
	case TexBlock:
		return "block"
	case TexPanel:
		return "panel"
	}
	return fmt.Sprintf("BuiltinTexture(%d)", int(b))
}

func (b BuiltinTexture) IsValid() bool {
	return b > TexNone && b < TexCount
}
