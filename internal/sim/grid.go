package sim

// Grid is the static wall/floor map.
//
// Tiles are stored x-major: the tile at (x, y) lives at offset x*Height + y, so
// a literal tile list reads column by column. On square grids this matches the
// historical x*Width + y layout exactly.
type Grid struct {
	Tiles  []Tile `json:"tiles" yaml:"tiles"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// NewGrid creates a grid from a flat x-major tile list.
// len(tiles) is expected to be width*height; lookups outside the slice report
// no tile.
func NewGrid(width, height int, tiles []Tile) Grid {
	return Grid{
		Tiles:  tiles,
		Width:  width,
		Height: height,
	}
}

// InBounds returns true if the position lies inside the grid dimensions.
func (g Grid) InBounds(p Vector2) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// index converts a position to a flat offset. Callers check InBounds first.
func (g Grid) index(p Vector2) int {
	return p.X*g.Height + p.Y
}

// Tile returns the tile at the given position.
// The second result is false when the position is outside the grid or the
// tile list is too short to hold it.
func (g Grid) Tile(p Vector2) (Tile, bool) {
	if !g.InBounds(p) {
		return TileWall, false
	}
	i := g.index(p)
	if i >= len(g.Tiles) {
		return TileWall, false
	}
	return g.Tiles[i], true
}

// Draw expands every tile into a draw call, x outer and y inner.
func (g Grid) Draw() []int {
	out := make([]int, 0, 5*g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			t, ok := g.Tile(NewVector2(x, y))
			if !ok {
				continue
			}
			out = append(out, t.Color(), x*TileSize, y*TileSize, TileSize, TileSize)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return Grid{
		Tiles:  tiles,
		Width:  g.Width,
		Height: g.Height,
	}
}
