package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsim/internal/storage"
)

// RunsTable builds a table of recorded runs, best first.
func RunsTable(runs []storage.RunEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Enemies", Width: 9},
		{Title: "Frames", Width: 8},
		{Title: "HP", Width: 4},
		{Title: "Result", Width: 9},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "died"
		if r.Survived {
			result = "survived"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d/%d", r.EnemiesDefeated, r.EnemiesTotal),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%d", r.PlayerHealth),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()

	// Header takes two lines with its bottom border.
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(s),
		table.WithHeight(len(rows)+2),
	)

	return t
}

// RenderRuns renders a titled run history for printing.
func RenderRuns(title string, runs []storage.RunEntry) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("BEST RUNS - %s", title)))
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.")))
		return b.String()
	}

	t := RunsTable(runs)
	b.WriteString(boxStyle.Render(t.View()))
	return b.String()
}
