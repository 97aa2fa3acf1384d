package render

import (
	"strings"

	"github.com/vovakirdan/gridsim/internal/sim"
)

// Glyphs used by the plain-text renderer.
const (
	GlyphEmpty  = ' '
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphPlayer = '@'
	GlyphEnemy  = 'E'
	GlyphPickup = '$'
	GlyphCorpse = 'x'
	GlyphOther  = '?'
)

// GlyphFor picks a rune for a cell by its color.
// Tinted entity colors fall back to the nearest archetype by dominant channel;
// fully faded entities render as corpses.
func GlyphFor(cell Cell) rune {
	if !cell.Painted {
		return GlyphEmpty
	}
	switch cell.Color {
	case sim.ColorWall:
		return GlyphWall
	case sim.ColorFloor:
		return GlyphFloor
	case sim.ColorPlayer:
		return GlyphPlayer
	case sim.ColorEnemy:
		return GlyphEnemy
	case sim.ColorPickup:
		return GlyphPickup
	}

	r := (cell.Color >> 16) & 0xff
	g := (cell.Color >> 8) & 0xff
	b := cell.Color & 0xff
	switch {
	case r > 0xc0 && g > 0xc0 && b > 0xc0:
		return GlyphCorpse
	case r > 0xc0 && g > 0xc0:
		return GlyphPickup
	case g > r:
		return GlyphPlayer
	case r > g:
		return GlyphEnemy
	}
	return GlyphOther
}

// ASCII renders the canvas as plain text, one rune per cell.
func ASCII(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height() + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.Width(); x++ {
			sb.WriteRune(GlyphFor(c.Get(x, y)))
		}
	}
	return sb.String()
}
