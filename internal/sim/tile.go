package sim

import "fmt"

// TileSize is the edge length of one tile in display units.
const TileSize = 20

// Tile is the terrain kind of a single grid cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

// Tile display colors (0xRRGGBB).
const (
	ColorWall  = 0x033499
	ColorFloor = 0x191919
)

// Color returns the fixed display color of the tile.
func (t Tile) Color() int {
	switch t {
	case TileFloor:
		return ColorFloor
	default:
		return ColorWall
	}
}

// Walkable reports whether entities may move onto the tile.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// String returns the interchange name of the tile.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the tile as "Wall" or "Floor".
func (t Tile) MarshalText() ([]byte, error) {
	switch t {
	case TileWall, TileFloor:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("sim: unknown tile %d", uint8(t))
	}
}

// UnmarshalText decodes "Wall" or "Floor".
func (t *Tile) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Wall":
		*t = TileWall
	case "Floor":
		*t = TileFloor
	default:
		return fmt.Errorf("sim: unknown tile %q", string(text))
	}
	return nil
}
