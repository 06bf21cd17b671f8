package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/lattice"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "room.toml", `
[log]
level = "debug"

[scene]
structure = "bcc"
scale = 1.5
draw_bonds = true

[export]
dir = "out"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, core.DebugLevel, cfg.LogLevel())
	assert.Equal(t, lattice.BCC, cfg.Scene.Structure)
	assert.Equal(t, float32(1.5), cfg.Scene.Scale)
	assert.True(t, cfg.Scene.DrawBonds)
	// Keys left out keep their defaults.
	assert.True(t, cfg.Scene.DrawAtoms)
	assert.True(t, cfg.Scene.DrawRoom)
	assert.Equal(t, "headless", cfg.Renderer)
	assert.Equal(t, "out", cfg.Export.Dir)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "room.yml", `
log:
  level: warn
scene:
  structure: diamond
  draw_room: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, core.WarnLevel, cfg.LogLevel())
	assert.Equal(t, lattice.Diamond, cfg.Scene.Structure)
	assert.False(t, cfg.Scene.DrawRoom)
	assert.Equal(t, float32(1.0), cfg.Scene.Scale)
}

func TestLoadConfigEmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name, file, content string
	}{
		{"unknown structure", "a.toml", "[scene]\nstructure = \"hcp\"\n"},
		{"unknown key", "b.toml", "[scene]\ncolour = 3\n"},
		{"unknown yaml key", "c.yaml", "scene:\n  colour: 3\n"},
		{"bad scale", "d.toml", "[scene]\nscale = -1.0\n"},
		{"bad level", "e.yaml", "log:\n  level: loud\n"},
		{"bad syntax", "f.toml", "[scene\n"},
		{"unsupported format", "g.json", "{}"},
	} {
		path := writeFile(t, dir, tc.file, tc.content)
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, core.ErrInvalidConfig, tc.name)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := DefaultConfig()
	want.Scene.Structure = lattice.FCC
	want.Scene.DrawBonds = true
	want.Export.Dir = "textures"

	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteConfig(path, want))
		got, err := LoadConfig(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}
