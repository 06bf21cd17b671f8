package engine

import (
	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/systems"
)

// Game is implemented by the host application. The engine fills in
// SystemManager and Events before calling FnInitialize.
type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	Events            *core.EventSystem
	State             interface{}
	FnInitialize      Initialize
	FnShutdown        Shutdown
}

type Initialize func() error
type Shutdown func() error
