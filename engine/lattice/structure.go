package lattice

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/crystalroom/engine/core"
)

// CrystalStructure selects how integer lattice coordinates map to atom positions.
type CrystalStructure int

const (
	Cube CrystalStructure = iota
	FCC
	BCC
	Diamond
	structureCount
)

func (s CrystalStructure) String() string {
	switch s {
	case Cube:
		return "cube"
	case FCC:
		return "fcc"
	case BCC:
		return "bcc"
	case Diamond:
		return "diamond"
	}
	return fmt.Sprintf("CrystalStructure(%d)", int(s))
}

func (s CrystalStructure) IsValid() bool {
	return s >= Cube && s < structureCount
}

// Next returns the structure after s, wrapping from Diamond back to Cube.
func (s CrystalStructure) Next() CrystalStructure {
	if !s.IsValid() {
		return Cube
	}
	return (s + 1) % structureCount
}

// CellBound is the half-width of the enumerated coordinate range. Diamond
// accepts roughly one coordinate in eight, so it scans a wider range.
func (s CrystalStructure) CellBound() int {
	if s == Diamond {
		return 6
	}
	return 3
}

func (s CrystalStructure) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: crystal structure %d", core.ErrInvalidConfig, int(s))
	}
	return []byte(s.String()), nil
}

func (s *CrystalStructure) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for c := Cube; c < structureCount; c++ {
		if c.String() == name {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("%w: unknown crystal structure %q", core.ErrInvalidConfig, string(text))
}
