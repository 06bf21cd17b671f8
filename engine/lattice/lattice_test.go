package lattice

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/math"
)

var all = Options{Atoms: true, Bonds: true}

func TestCubeAtoms(t *testing.T) {
	for n := 1; n <= 4; n++ {
		l := Generate(Cube, n, Options{Atoms: true})
		require.Len(t, l.Atoms, 8*n*n*n, "cells %d", n)
		assert.Empty(t, l.Bonds)

		seen := make(map[math.Vec3]bool, len(l.Atoms))
		for _, p := range l.Atoms {
			assert.Equal(t, math32.Round(p.X), p.X)
			assert.Equal(t, math32.Round(p.Y), p.Y)
			assert.Equal(t, math32.Round(p.Z), p.Z)
			assert.False(t, seen[p], "duplicate atom %v", p)
			seen[p] = true
		}
		f := float32(n)
		assert.Equal(t, math.NewVec3(-f, -f, -f), l.Atoms[0])
		assert.Equal(t, math.NewVec3(-f, -f, -f+1), l.Atoms[1])
		assert.Equal(t, math.NewVec3(f-1, f-1, f-1), l.Atoms[len(l.Atoms)-1])
	}
}

func TestCubeBonds(t *testing.T) {
	l := Generate(Cube, 3, Options{Bonds: true})
	assert.Empty(t, l.Atoms)
	// Per axis: 5 gaps along it times 6*6 lines.
	assert.Len(t, l.Bonds, 3*5*36)
	for _, b := range l.Bonds {
		assert.InDelta(t, 1.0, b.Length(), 1e-6)
	}
}

func TestDiamondAtoms(t *testing.T) {
	cells := Diamond.CellBound()
	require.Equal(t, 6, cells)

	l := Generate(Diamond, cells, all)
	assert.Len(t, l.Atoms, 216)
	assert.Empty(t, l.Bonds)

	fh := math.K_SQRT_ONE_OVER_THREE
	for _, p := range l.Atoms {
		ix := int(math32.Round(p.X / fh))
		iy := int(math32.Round(p.Y / fh))
		iz := int(math32.Round(p.Z / fh))
		sx, sy, sz := ix+cells, iy+cells, iz+cells
		assert.True(t, sx%2 == sy%2 && sy%2 == sz%2, "parities differ at %d,%d,%d", ix, iy, iz)
		q := (sx + sy + sz) % 4
		assert.Contains(t, []int{0, 1}, q, "sum mod 4 at %d,%d,%d", ix, iy, iz)
	}
}

func TestDiamondMatchesBruteForce(t *testing.T) {
	for cells := 1; cells <= 6; cells++ {
		want := 0
		for sx := 0; sx < 2*cells; sx++ {
			for sy := 0; sy < 2*cells; sy++ {
				for sz := 0; sz < 2*cells; sz++ {
					same := sx%2 == sy%2 && sy%2 == sz%2
					q := (sx + sy + sz) % 4
					if same && (q == 0 || q == 1) {
						want++
					}
				}
			}
		}
		l := Generate(Diamond, cells, Options{Atoms: true})
		assert.Len(t, l.Atoms, want, "cells %d", cells)
	}
}

func TestFCCOffsetsNeverNegative(t *testing.T) {
	cells := FCC.CellBound()
	s := math.K_SQRT_ONE_OVER_TWO
	for ix := -cells; ix < cells; ix++ {
		for iy := -cells; iy < cells; iy++ {
			for iz := -cells; iz < cells; iz++ {
				p, ok := FCC.Position(ix, iy, iz, cells)
				require.True(t, ok)
				offset := p.X - float32(ix)*s
				if math32.Abs(offset) > 1e-6 {
					assert.InDelta(t, s, offset, 1e-6, "coordinate %d,%d,%d", ix, iy, iz)
				}
			}
		}
	}
}

func TestBondLengths(t *testing.T) {
	for _, s := range []CrystalStructure{Cube, FCC, BCC} {
		l := Generate(s, s.CellBound(), all)
		require.NotEmpty(t, l.Bonds, s.String())
		for _, b := range l.Bonds {
			assert.InDelta(t, 1.0, b.Length(), 1e-5, "%s bond %v", s, b)
		}
	}
}

func TestBCCBonds(t *testing.T) {
	cells := 3
	// Bottom row has nothing below it.
	assert.Empty(t, BCC.Bonds(0, -cells, 0, cells))

	// Shifted row 1 is offset and bonds to four atoms below.
	assert.Len(t, BCC.Bonds(0, -cells+1, 0, cells), 4)
	// At the far edge only the straight bond stays in range.
	assert.Len(t, BCC.Bonds(cells-1, -cells+1, cells-1, cells), 1)
	// Unshifted rows bond once.
	assert.Len(t, BCC.Bonds(0, -cells+2, 0, cells), 1)
}

func TestFCCBonds(t *testing.T) {
	cells := 3
	assert.Empty(t, FCC.Bonds(0, -cells, -cells, cells))
	assert.Len(t, FCC.Bonds(0, 0, 0, cells), 4)
	// Top row loses the (iy+1, iz-1) neighbour.
	assert.Len(t, FCC.Bonds(0, cells-1, 0, cells), 3)
}

func TestGenerateDegenerate(t *testing.T) {
	assert.Empty(t, Generate(Cube, 0, all).Atoms)
	assert.Empty(t, Generate(FCC, -2, all).Atoms)
	assert.Empty(t, Generate(CrystalStructure(42), 3, all).Atoms)
}

func TestStructureText(t *testing.T) {
	for _, s := range []CrystalStructure{Cube, FCC, BCC, Diamond} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var got CrystalStructure
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	var s CrystalStructure
	require.NoError(t, s.UnmarshalText([]byte(" Diamond ")))
	assert.Equal(t, Diamond, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("hcp")), core.ErrInvalidConfig)

	_, err := CrystalStructure(9).MarshalText()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestStructureNext(t *testing.T) {
	assert.Equal(t, FCC, Cube.Next())
	assert.Equal(t, BCC, FCC.Next())
	assert.Equal(t, Diamond, BCC.Next())
	assert.Equal(t, Cube, Diamond.Next())
	assert.Equal(t, Cube, CrystalStructure(-1).Next())
	assert.Equal(t, 3, Cube.CellBound())
}

type pointKey [3]int32

func keyOf(v math.Vec3) pointKey {
	return pointKey{int32(math32.Round(v.X * 1000)), int32(math32.Round(v.Y * 1000)), int32(math32.Round(v.Z * 1000))}
}

func distinctBonds(bonds []Bond) int {
	seen := make(map[[2]pointKey]struct{}, len(bonds))
	for _, b := range bonds {
		seen[[2]pointKey{keyOf(b.From), keyOf(b.To)}] = struct{}{}
	}
	return len(seen)
}

// FCC keeps every atom and bond of the grid walk: neighbouring grid points
// whose x offsets meet land on the same spot, so atoms and bonds repeat.
func TestFCCKeepsCoincidentAtomsAndBonds(t *testing.T) {
	l := Generate(FCC, 3, all)
	require.Len(t, l.Atoms, 216)
	require.Len(t, l.Bonds, 660)

	positions := make(map[pointKey]struct{})
	for _, p := range l.Atoms {
		positions[keyOf(p)] = struct{}{}
	}
	assert.Len(t, positions, 126)
	assert.Equal(t, 535, distinctBonds(l.Bonds))
}

// BCC drops the repeated straight-down bond, so every bond is unique.
func TestBCCBondsAreUnique(t *testing.T) {
	l := Generate(BCC, 3, all)
	require.Len(t, l.Bonds, 435)
	assert.Equal(t, 435, distinctBonds(l.Bonds))
}
