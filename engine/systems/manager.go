package systems

import (
	"runtime"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/renderer"
)

// SystemManager owns the long-lived rendering resources: the builtin
// textures and the fills built on top of them.
type SystemManager struct {
	renderer      renderer.RendererBackend
	jobSystem     *JobSystem
	textureSystem *TextureSystem
	fills         *FillCollection
}

func NewSystemManager(r renderer.RendererBackend) (*SystemManager, error) {
	ts, err := NewTextureSystem(r)
	if err != nil {
		return nil, err
	}
	js, err := NewJobSystem(runtime.NumCPU(), 0)
	if err != nil {
		return nil, err
	}
	ts.UseJobs(js)
	if err := ts.Initialize(); err != nil {
		_ = js.Shutdown()
		return nil, err
	}
	fc, err := NewFillCollection(r, ts)
	if err != nil {
		if serr := ts.Shutdown(); serr != nil {
			core.LogWarn("texture system shutdown after failed setup: %s", serr)
		}
		_ = js.Shutdown()
		return nil, err
	}
	return &SystemManager{
		renderer:      r,
		jobSystem:     js,
		textureSystem: ts,
		fills:         fc,
	}, nil
}

func (sm *SystemManager) Renderer() renderer.RendererBackend {
	return sm.renderer
}

func (sm *SystemManager) Textures() *TextureSystem {
	return sm.textureSystem
}

func (sm *SystemManager) Fills() *FillCollection {
	return sm.fills
}

func (sm *SystemManager) Jobs() *JobSystem {
	return sm.jobSystem
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.textureSystem.Shutdown(); err != nil {
		return err
	}
	return sm.jobSystem.Shutdown()
}
