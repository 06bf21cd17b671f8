package testbed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/crystalroom/engine"
	"github.com/spaghettifunk/crystalroom/engine/assets"
	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/lattice"
	"github.com/spaghettifunk/crystalroom/engine/room"
)

func startDemo(t *testing.T, cfg *assets.Config, path string, watch bool) (*RoomDemo, *engine.Engine) {
	t.Helper()
	rd, err := NewRoomDemo(cfg, path, watch)
	require.NoError(t, err)
	e, err := engine.New(rd.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { assert.NoError(t, e.Shutdown()) })
	return rd, e
}

func TestRoomDemoInitializePopulates(t *testing.T) {
	rd, e := startDemo(t, assets.DefaultConfig(), "", false)

	assert.Equal(t, engine.EngineStageInitialized, e.Stage())
	stats := rd.LastStats()
	assert.Equal(t, lattice.Cube, stats.Structure)
	assert.Equal(t, 216, stats.Atoms)
	assert.Len(t, rd.Scene().Models(), stats.Models)
	assert.Len(t, rd.Scene().Lights(), len(room.Lights))
	assert.Equal(t, uint64(1), rd.Metrics().Count())
}

func TestRoomDemoEvents(t *testing.T) {
	rd, _ := startDemo(t, assets.DefaultConfig(), "", false)

	var populated []room.Stats
	rd.Events.Register(core.EVENT_CODE_SCENE_POPULATED, t, func(sender, listener interface{}, ctx core.EventContext) bool {
		populated = append(populated, ctx.Data.(room.Stats))
		return true
	})

	assert.True(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_TOGGLE_STRUCTURE}))
	assert.Equal(t, lattice.FCC, rd.Builder().Structure)

	assert.True(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_RESIZE_ATOM, Data: float32(0.5)}))
	assert.InDelta(t, 1.5, rd.Builder().Scale, 1e-6)

	// Wrong payload type is not handled.
	assert.False(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_RESIZE_ATOM, Data: 0.5}))

	cfg := assets.DefaultConfig()
	cfg.Scene.Structure = lattice.Diamond
	cfg.Scene.DrawRoom = false
	assert.True(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg}))

	require.Len(t, populated, 3)
	assert.Equal(t, lattice.FCC, populated[0].Structure)
	assert.Equal(t, lattice.Diamond, populated[2].Structure)
	assert.Equal(t, 0, populated[2].Slabs)
	assert.Equal(t, populated[2].Atoms, populated[2].Models)
	assert.Equal(t, uint64(4), rd.Metrics().Count())
}

func TestRoomDemoExportTextures(t *testing.T) {
	cfg := assets.DefaultConfig()
	cfg.Export.Dir = filepath.Join(t.TempDir(), "textures")
	rd, _ := startDemo(t, cfg, "", false)

	for _, name := range []string{"checker", "block", "panel"} {
		_, err := os.Stat(filepath.Join(cfg.Export.Dir, name+".png"))
		assert.NoError(t, err, name)
	}

	paths, err := rd.ExportTextures(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestRoomDemoWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	cfg := assets.DefaultConfig()
	require.NoError(t, assets.WriteConfig(path, cfg))

	rd, _ := startDemo(t, cfg, path, true)

	reloaded := make(chan room.Stats, 8)
	rd.Events.Register(core.EVENT_CODE_SCENE_POPULATED, t, func(sender, listener interface{}, ctx core.EventContext) bool {
		reloaded <- ctx.Data.(room.Stats)
		return true
	})

	cfg.Scene.Structure = lattice.BCC
	require.NoError(t, assets.WriteConfig(path, cfg))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case stats := <-reloaded:
			if stats.Structure == lattice.BCC {
				assert.Equal(t, lattice.BCC, rd.Builder().Structure)
				return
			}
		case <-deadline:
			t.Fatal("scene was not repopulated after config change")
		}
	}
}

func TestNewRoomDemoRejectsBadConfig(t *testing.T) {
	_, err := NewRoomDemo(nil, "", false)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	cfg := assets.DefaultConfig()
	cfg.Renderer = "metal"
	_, err = NewRoomDemo(cfg, "", false)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestEngineQuitUnblocksRun(t *testing.T) {
	_, e := startDemo(t, assets.DefaultConfig(), "", false)

	done := make(chan error, 1)
	go func() { done <- e.Run() }()
	e.Quit()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRoomDemoRejectedReloadKeepsState(t *testing.T) {
	rd, _ := startDemo(t, assets.DefaultConfig(), "", false)
	before := rd.Builder()
	models := len(rd.Scene().Models())

	bad := assets.DefaultConfig()
	bad.Scene.Scale = 0
	bad.Scene.Structure = lattice.Diamond
	assert.False(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: bad}))

	badLevel := assets.DefaultConfig()
	badLevel.Log.Level = "loud"
	assert.False(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: badLevel}))

	assert.Equal(t, before, rd.Builder())
	assert.Len(t, rd.Scene().Models(), models)
	assert.Equal(t, uint64(1), rd.Metrics().Count())

	// The demo still reacts normally afterwards.
	assert.True(t, rd.Events.Fire(t, core.EventContext{Type: core.EVENT_CODE_TOGGLE_STRUCTURE}))
	assert.Equal(t, lattice.FCC, rd.Builder().Structure)
	assert.InDelta(t, 1.0, rd.Builder().Scale, 1e-6)
}
