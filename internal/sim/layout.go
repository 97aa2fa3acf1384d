package sim

import "fmt"

// Layout glyphs.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

// GridFromRows builds a grid from text rows, one row per y and one glyph per x.
// The rows are transposed into the grid's x-major tile order.
func GridFromRows(rows []string) (Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	tiles := make([]Tile, width*height)
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("sim: row %d has %d tiles, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			var t Tile
			switch row[x] {
			case GlyphWall:
				t = TileWall
			case GlyphFloor:
				t = TileFloor
			default:
				return Grid{}, fmt.Errorf("sim: unknown glyph %q at (%d,%d)", row[x], x, y)
			}
			tiles[x*height+y] = t
		}
	}
	return NewGrid(width, height, tiles), nil
}

// Rows renders the grid back into text rows (the inverse of GridFromRows).
// Missing tiles render as walls.
func (g Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]byte, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = GlyphWall
			if t, ok := g.Tile(NewVector2(x, y)); ok && t == TileFloor {
				row[x] = GlyphFloor
			}
		}
		rows[y] = string(row)
	}
	return rows
}

// mustGrid builds a grid from a literal layout.
func mustGrid(rows []string) Grid {
	g, err := GridFromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// RoomRows is the 5x5 room: a 3x3 open interior bordered by walls.
var RoomRows = []string{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

// ArenaRows is the 10x10 arena with internal corridors.
var ArenaRows = []string{
	"##########",
	"#........#",
	"#...##.#.#",
	"#...#..#.#",
	"#.##.#.#.#",
	"#....#...#",
	"#.##.###.#",
	"#.#......#",
	"#...##...#",
	"##########",
}
