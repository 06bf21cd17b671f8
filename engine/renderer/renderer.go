package renderer

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer/headless"
)

type RendererType uint8

const (
	Headless RendererType = iota
	Vulkan
	OpenGL
)

func (rt RendererType) String() string {
	switch rt {
	case Headless:
		return "headless"
	case Vulkan:
		return "vulkan"
	case OpenGL:
		return "opengl"
	}
	return "unknown"
}

// ParseRendererType maps a configuration value to a RendererType.
func ParseRendererType(name string) (RendererType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "headless", "":
		return Headless, nil
	case "vulkan":
		return Vulkan, nil
	case "opengl":
		return OpenGL, nil
	}
	return Headless, fmt.Errorf("%w: unknown renderer %q", core.ErrInvalidConfig, name)
}

// NewRendererBackend returns the backend for rt. Only the headless backend
// ships with this module; GPU backends are provided by the host.
func NewRendererBackend(rt RendererType) (RendererBackend, error) {
	switch rt {
	case Headless:
		return headless.New(), nil
	}
	err := fmt.Errorf("%w: renderer backend %s is not available", core.ErrInvalidConfig, rt)
	core.LogError(err.Error())
	return nil, err
}
