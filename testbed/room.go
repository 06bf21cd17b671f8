package testbed

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/crystalroom/engine"
	"github.com/spaghettifunk/crystalroom/engine/assets"
	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
	"github.com/spaghettifunk/crystalroom/engine/renderer/headless"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
	"github.com/spaghettifunk/crystalroom/engine/room"
	"github.com/spaghettifunk/crystalroom/engine/scene"
)

type RoomDemo struct {
	*engine.Game
}

type roomState struct {
	// Guards everything below. The config watcher fires from its own goroutine.
	mu sync.Mutex

	config     *assets.Config
	configPath string
	watch      bool

	scene     *scene.Scene
	builder   room.BuilderConfig
	lastStats room.Stats
	metrics   *core.Metrics
	watcher   *assets.ConfigWatcher
}

// NewRoomDemo builds the demo from cfg. configPath is only used when watch
// is set, to reload the scene when the file changes.
func NewRoomDemo(cfg *assets.Config, configPath string, watch bool) (*RoomDemo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: room demo needs a config", core.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rt, err := renderer.ParseRendererType(cfg.Renderer)
	if err != nil {
		return nil, err
	}

	rd := &RoomDemo{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:     "Crystal Room",
				LogLevel: cfg.LogLevel(),
				Renderer: rt,
			},
			State: &roomState{
				config:     cfg,
				configPath: configPath,
				watch:      watch,
				scene:      scene.New(),
				builder:    cfg.Scene,
				metrics:    core.NewMetrics(),
			},
		},
	}

	rd.FnInitialize = rd.Initialize
	rd.FnShutdown = rd.Shutdown

	return rd, nil
}

func (g *RoomDemo) state() *roomState {
	return g.State.(*roomState)
}

func (g *RoomDemo) Initialize() error {
	core.LogInfo("initializing room demo...")
	st := g.state()

	g.Events.Register(core.EVENT_CODE_TOGGLE_STRUCTURE, g, g.onEvent)
	g.Events.Register(core.EVENT_CODE_RESIZE_ATOM, g, g.onEvent)
	g.Events.Register(core.EVENT_CODE_CONFIG_RELOADED, g, g.onEvent)

	if err := g.repopulate(nil); err != nil {
		return err
	}

	if st.config.Export.Dir != "" {
		if _, err := g.ExportTextures(st.config.Export.Dir); err != nil {
			return err
		}
	}

	if st.watch {
		w, err := assets.NewConfigWatcher(st.configPath, g.Events)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		st.watcher = w
	}
	return nil
}

func (g *RoomDemo) Shutdown() error {
	core.LogInfo("shutting down room demo...")
	st := g.state()

	g.Events.Unregister(core.EVENT_CODE_TOGGLE_STRUCTURE, g)
	g.Events.Unregister(core.EVENT_CODE_RESIZE_ATOM, g)
	g.Events.Unregister(core.EVENT_CODE_CONFIG_RELOADED, g)

	if st.watcher != nil {
		if err := st.watcher.Close(); err != nil {
			return err
		}
		st.watcher = nil
	}
	st.mu.Lock()
	st.scene.Clear()
	st.scene.ClearLights()
	st.mu.Unlock()
	return nil
}

func (g *RoomDemo) Scene() *scene.Scene {
	return g.state().scene
}

func (g *RoomDemo) Builder() room.BuilderConfig {
	st := g.state()
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.builder
}

func (g *RoomDemo) LastStats() room.Stats {
	st := g.state()
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lastStats
}

func (g *RoomDemo) Metrics() *core.Metrics {
	return g.state().metrics
}

// ExportTextures writes every builtin texture as a PNG into dir. Only the
// headless backend keeps pixels around to export.
func (g *RoomDemo) ExportTextures(dir string) ([]string, error) {
	backend, ok := g.SystemManager.Renderer().(*headless.Backend)
	if !ok {
		return nil, fmt.Errorf("%w: texture export needs the headless renderer", core.ErrInvalidConfig)
	}
	paths := make([]string, 0, len(metadata.BuiltinTextures))
	for _, tag := range metadata.BuiltinTextures {
		tex, err := g.SystemManager.Textures().Get(tag)
		if err != nil {
			return nil, err
		}
		path, err := backend.ExportPNG(tex, dir)
		if err != nil {
			core.LogError("failed to export texture %s: %s", tag, err)
			return nil, err
		}
		core.LogDebug("exported texture %s to %s", tag, path)
		paths = append(paths, path)
	}
	return paths, nil
}

// settings is the part of the demo state an event may change. Events edit a
// copy; it replaces the live one only once the scene was rebuilt from it.
type settings struct {
	config  *assets.Config
	builder room.BuilderConfig
}

// repopulate applies change to a copy of the settings, rebuilds the scene
// and fires EVENT_CODE_SCENE_POPULATED once the state lock is released. A
// rejected change leaves both the settings and the scene as they were.
func (g *RoomDemo) repopulate(change func(s *settings)) error {
	st := g.state()
	st.mu.Lock()
	next := settings{config: st.config, builder: st.builder}
	if change != nil {
		change(&next)
	}
	if err := next.config.Validate(); err != nil {
		st.mu.Unlock()
		core.LogError("rejected config change: %s", err)
		return err
	}
	if err := next.builder.Validate(); err != nil {
		st.mu.Unlock()
		core.LogError("rejected scene change: %s", err)
		return err
	}
	stats, err := room.Populate(st.scene, g.SystemManager.Fills(), next.builder)
	if err != nil {
		st.mu.Unlock()
		core.LogError("failed to populate scene: %s", err)
		return err
	}
	if next.config != st.config {
		core.SetLogLevel(next.config.LogLevel())
	}
	st.config, st.builder = next.config, next.builder
	st.lastStats = stats
	st.metrics.Update(stats.Elapsed)
	core.LogDebug("average populate time over %d runs: %s", st.metrics.Count(), st.metrics.Average())
	st.mu.Unlock()

	g.Events.Fire(g, core.EventContext{Type: core.EVENT_CODE_SCENE_POPULATED, Data: stats})
	return nil
}

func (g *RoomDemo) onEvent(sender, listener interface{}, context core.EventContext) bool {
	var change func(s *settings)
	switch context.Type {
	case core.EVENT_CODE_TOGGLE_STRUCTURE:
		change = func(s *settings) {
			s.builder.ToggleStructure()
			core.LogInfo("structure switched to %s", s.builder.Structure)
		}
	case core.EVENT_CODE_RESIZE_ATOM:
		delta, ok := context.Data.(float32)
		if !ok {
			core.LogWarn("EVENT_CODE_RESIZE_ATOM expects a float32 delta, got %T", context.Data)
			return false
		}
		change = func(s *settings) {
			s.builder.ResizeAtom(delta)
			core.LogInfo("atom scale set to %.2f", s.builder.Scale)
		}
	case core.EVENT_CODE_CONFIG_RELOADED:
		cfg, ok := context.Data.(*assets.Config)
		if !ok || cfg == nil {
			core.LogWarn("EVENT_CODE_CONFIG_RELOADED expects *assets.Config, got %T", context.Data)
			return false
		}
		change = func(s *settings) {
			s.config = cfg
			s.builder = cfg.Scene
		}
	default:
		return false
	}
	return g.repopulate(change) == nil
}
