package room

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/lattice"
	"github.com/spaghettifunk/crystalroom/engine/math"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
	"github.com/spaghettifunk/crystalroom/engine/scene"
	"github.com/spaghettifunk/crystalroom/engine/systems"
)

const (
	MinAtomScale float32 = 0.1
	MaxAtomScale float32 = 3.0

	atomRadius float32 = 0.5
	bondRadius float32 = 0.05

	atomTexture = metadata.TexChecker
)

var (
	Ambient = math.NewVec4(0.65, 0.65, 0.65, 1)

	Lights = []scene.PointLight{
		{Position: math.NewVec3(-2, 4, -2), Colour: math.NewVec4(8, 8, 8, 1)},
		{Position: math.NewVec3(3, 4, -3), Colour: math.NewVec4(2, 1, 1, 1)},
		{Position: math.NewVec3(-4, 3, 25), Colour: math.NewVec4(3, 6, 3, 1)},
	}
)

// BuilderConfig selects what Populate puts in the scene.
type BuilderConfig struct {
	Structure lattice.CrystalStructure `toml:"structure" yaml:"structure"`
	Scale     float32                  `toml:"scale" yaml:"scale"`
	DrawAtoms bool                     `toml:"draw_atoms" yaml:"draw_atoms"`
	DrawBonds bool                     `toml:"draw_bonds" yaml:"draw_bonds"`
	DrawRoom  bool                     `toml:"draw_room" yaml:"draw_room"`
}

func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Structure: lattice.Cube,
		Scale:     1.0,
		DrawAtoms: true,
		DrawBonds: false,
		DrawRoom:  true,
	}
}

func (c BuilderConfig) Validate() error {
	if !c.Structure.IsValid() {
		return fmt.Errorf("%w: crystal structure %d", core.ErrInvalidConfig, int(c.Structure))
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: atom scale must be positive, got %g", core.ErrInvalidConfig, c.Scale)
	}
	return nil
}

// ToggleStructure advances to the next crystal structure.
func (c *BuilderConfig) ToggleStructure() {
	c.Structure = c.Structure.Next()
}

// ResizeAtom grows or shrinks the atoms by delta, within [MinAtomScale, MaxAtomScale].
func (c *BuilderConfig) ResizeAtom(delta float32) {
	c.Scale = math.Clamp(c.Scale+delta, MinAtomScale, MaxAtomScale)
}

// Stats counts what a Populate call put in the scene.
type Stats struct {
	Structure lattice.CrystalStructure
	Models    int
	Atoms     int
	Bonds     int
	Slabs     int
	Lights    int
	Elapsed   time.Duration
}

/**
 * @brief Replaces the content of sc with the room, the crystal lattice and
 * the fixed lighting. Calling it again with the same config yields the same
 * scene.
 *
 * @param sc The scene to fill. Its models and lights are replaced only
 * once the new content is fully built; on error it is left untouched.
 * @param fills The fills to draw with, built once by the caller.
 * @param cfg What to draw.
 * @return Counts of the added content, or an error if cfg is invalid.
 */
func Populate(sc *scene.Scene, fills *systems.FillCollection, cfg BuilderConfig) (Stats, error) {
	if sc == nil || fills == nil {
		return Stats{}, fmt.Errorf("%w: populate needs a scene and fills", core.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	clock := core.NewClock()
	clock.Start()

	// Everything that can fail runs before the scene is touched.
	atomFill, err := fills.ForTexture(atomTexture)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Structure: cfg.Structure}
	var models []*scene.Model

	if cfg.DrawRoom {
		for _, p := range RoomLayout {
			m, err := BuildSlabModel(p.Model, p.Position, fills)
			if err != nil {
				return Stats{}, err
			}
			models = append(models, m)
			stats.Slabs += len(p.Model.Slabs)
		}
	}

	l := lattice.Generate(cfg.Structure, cfg.Structure.CellBound(), lattice.Options{
		Atoms: cfg.DrawAtoms,
		Bonds: cfg.DrawBonds,
	})
	for _, pos := range l.Atoms {
		m := scene.NewModel("atom", atomFill)
		m.AddSphere(atomRadius * cfg.Scale)
		m.SetPosition(pos)
		models = append(models, m)
		stats.Atoms++
	}
	for _, b := range l.Bonds {
		m := scene.NewModel("bond", atomFill)
		m.AddCylinder(bondRadius, b.Length()*0.5)
		m.SetPosition(b.Midpoint())
		m.SetOrientation(math.QuatFromDirection(b.Direction()))
		models = append(models, m)
		stats.Bonds++
	}

	if err := sc.Replace(models, Ambient, Lights); err != nil {
		return Stats{}, err
	}
	stats.Models = len(models)
	stats.Lights = len(Lights)

	clock.Update()
	stats.Elapsed = clock.Elapsed()
	core.LogInfo("populated scene: structure=%s models=%d atoms=%d bonds=%d slabs=%d lights=%d in %s",
		stats.Structure, stats.Models, stats.Atoms, stats.Bonds, stats.Slabs, stats.Lights, stats.Elapsed)
	return stats, nil
}
