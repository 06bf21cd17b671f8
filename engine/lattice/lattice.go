// Package lattice enumerates atom positions and bonds for small crystal
// lattices. Coordinates ix, iy, iz run over [-cells, cells) on each axis.
package lattice

import (
	"github.com/spaghettifunk/crystalroom/engine/math"
)

// Bond joins two atom positions.
type Bond struct {
	From math.Vec3
	To   math.Vec3
}

func (b Bond) Length() float32 {
	return b.From.Distance(b.To)
}

func (b Bond) Midpoint() math.Vec3 {
	return b.From.Add(b.To).MulScalar(0.5)
}

func (b Bond) Direction() math.Vec3 {
	return b.To.Sub(b.From)
}

type Options struct {
	Atoms bool
	Bonds bool
}

type Lattice struct {
	Structure CrystalStructure
	Cells     int
	Atoms     []math.Vec3
	Bonds     []Bond
}

// Generate walks the coordinate range x-major, then y, then z, collecting
// the accepted atoms and the bonds to their predecessors.
func Generate(structure CrystalStructure, cells int, opts Options) Lattice {
	l := Lattice{Structure: structure, Cells: cells}
	if cells <= 0 || !structure.IsValid() {
		return l
	}
	for ix := -cells; ix < cells; ix++ {
		for iy := -cells; iy < cells; iy++ {
			for iz := -cells; iz < cells; iz++ {
				if opts.Atoms {
					if p, ok := structure.Position(ix, iy, iz, cells); ok {
						l.Atoms = append(l.Atoms, p)
					}
				}
				if opts.Bonds {
					l.Bonds = append(l.Bonds, structure.Bonds(ix, iy, iz, cells)...)
				}
			}
		}
	}
	return l
}

// shifted moves a coordinate into [0, 2*cells) so parity and modulo tests
// never see a negative operand.
func shifted(i, cells int) int {
	return i + cells
}

// Position maps a lattice coordinate to a position, reporting false when the
// structure has no atom there.
func (s CrystalStructure) Position(ix, iy, iz, cells int) (math.Vec3, bool) {
	switch s {
	case Cube:
		return math.NewVec3(float32(ix), float32(iy), float32(iz)), true
	case FCC:
		return fccPosition(ix, iy, iz, cells), true
	case BCC:
		return bccPosition(ix, iy, iz, cells), true
	case Diamond:
		return diamondPosition(ix, iy, iz, cells)
	}
	return math.Vec3{}, false
}

func fccPosition(ix, iy, iz, cells int) math.Vec3 {
	s := math.K_SQRT_ONE_OVER_TWO
	xmod := float32((shifted(ix, cells)+shifted(iy, cells)+shifted(iz, cells))%2) * s
	return math.NewVec3(float32(ix)*s+xmod, float32(iy)*s, float32(iz)*s)
}

func bccPosition(ix, iy, iz, cells int) math.Vec3 {
	ymod := float32(shifted(iy, cells)%2) * 0.5
	return math.NewVec3(float32(ix)+ymod, float32(iy)*math.K_SQRT_ONE_OVER_TWO, float32(iz)+ymod)
}

func diamondPosition(ix, iy, iz, cells int) (math.Vec3, bool) {
	sx, sy, sz := shifted(ix, cells), shifted(iy, cells), shifted(iz, cells)
	xmod, ymod, zmod := sx%2, sy%2, sz%2
	xyzmod := (sx + sy + sz) % 4
	if xmod != ymod || ymod != zmod || (xyzmod != 0 && xyzmod != 1) {
		return math.Vec3{}, false
	}
	fh := math.K_SQRT_ONE_OVER_THREE
	return math.NewVec3(float32(ix)*fh, float32(iy)*fh, float32(iz)*fh), true
}

// Bonds returns the bonds from the in-range predecessors of (ix, iy, iz).
// Diamond has none.
func (s CrystalStructure) Bonds(ix, iy, iz, cells int) []Bond {
	inRange := func(i int) bool { return -cells <= i && i < cells }
	var bonds []Bond
	to, _ := s.Position(ix, iy, iz, cells)
	from := func(jx, jy, jz int) {
		p, _ := s.Position(jx, jy, jz, cells)
		bonds = append(bonds, Bond{From: p, To: to})
	}

	switch s {
	case Cube:
		if inRange(ix - 1) {
			from(ix-1, iy, iz)
		}
		if inRange(iy - 1) {
			from(ix, iy-1, iz)
		}
		if inRange(iz - 1) {
			from(ix, iy, iz-1)
		}
	case FCC:
		if inRange(iy - 1) {
			from(ix, iy-1, iz)
		}
		if inRange(iz - 1) {
			from(ix, iy, iz-1)
		}
		if inRange(iz-1) && inRange(iy-1) {
			from(ix, iy-1, iz-1)
		}
		if inRange(iz-1) && inRange(iy+1) {
			from(ix, iy+1, iz-1)
		}
	case BCC:
		if !inRange(iy - 1) {
			break
		}
		from(ix, iy-1, iz)
		// Offset rows sit above the centre of four atoms; the others only
		// bond straight down.
		if shifted(iy, cells)%2 == 0 {
			break
		}
		if inRange(ix + 1) {
			from(ix+1, iy-1, iz)
		}
		if inRange(iz + 1) {
			from(ix, iy-1, iz+1)
		}
		if inRange(ix+1) && inRange(iz+1) {
			from(ix+1, iy-1, iz+1)
		}
	}
	return bonds
}
