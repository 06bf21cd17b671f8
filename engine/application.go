package engine

import (
	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
)

type ApplicationConfig struct {
	// The application name, used in logs.
	Name     string
	LogLevel core.LogLevel
	Renderer renderer.RendererType
}
