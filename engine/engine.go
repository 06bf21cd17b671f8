package engine

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
	"github.com/spaghettifunk/crystalroom/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	mu            sync.Mutex
	currentStage  Stage
	gameInstance  *Game
	backend       renderer.RendererBackend
	systemManager *systems.SystemManager
	events        *core.EventSystem
	quit          chan struct{}
	quitOnce      sync.Once
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		err := fmt.Errorf("func engine.New - game and application config are required: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	backend, err := renderer.NewRendererBackend(g.ApplicationConfig.Renderer)
	if err != nil {
		return nil, err
	}

	sm, err := systems.NewSystemManager(backend)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		backend:       backend,
		systemManager: sm,
		events:        core.NewEventSystem(),
		quit:          make(chan struct{}),
	}, nil
}

func (e *Engine) Initialize() error {
	e.setStage(EngineStageInitializing)

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	e.gameInstance.SystemManager = e.systemManager
	e.gameInstance.Events = e.events
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError("game failed to initialize: %s", err)
			return err
		}
	}

	e.setStage(EngineStageInitialized)
	core.LogInfo("%s initialized", e.gameInstance.ApplicationConfig.Name)
	return nil
}

// Run blocks until EVENT_CODE_APPLICATION_QUIT is fired.
func (e *Engine) Run() error {
	e.setStage(EngineStageRunning)
	<-e.quit
	return nil
}

// Quit fires EVENT_CODE_APPLICATION_QUIT, which unblocks Run.
func (e *Engine) Quit() {
	e.events.Fire(e, core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}

func (e *Engine) Shutdown() error {
	e.setStage(EngineStageShuttingDown)
	e.closeQuit()

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if err := e.events.Shutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	return e.backend.Shutdown()
}

func (e *Engine) Stage() Stage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mu.Lock()
	e.currentStage = s
	e.mu.Unlock()
}

func (e *Engine) closeQuit() {
	e.quitOnce.Do(func() { close(e.quit) })
}

func (e *Engine) onEvent(sender, listener interface{}, context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.closeQuit()
		return true
	}
	return false
}
