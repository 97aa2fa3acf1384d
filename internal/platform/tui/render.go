package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsim/internal/render"
)

// cellWidth is the number of terminal columns per grid cell.
// Terminal cells are roughly twice as tall as wide.
const cellWidth = 2

// hexColor formats a 0xRRGGBB value as a lipgloss true color.
func hexColor(c int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", c&0xffffff))
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *render.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*cellWidth*2 + c.Height())

	blank := strings.Repeat(" ", cellWidth)

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.Get(x, y)

			n := 0
			for x < c.Width() && c.Get(x, y) == start {
				n++
				x++
			}

			run := strings.Repeat(blank, n)
			if !start.Painted {
				sb.WriteString(run)
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Background(hexColor(start.Color)).Render(run))
		}
	}
	return sb.String()
}
