package report

import (
	"fmt"
	"strings"

	"github.com/bnema/framecast/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func renderView(report application.Report, s styles) string {
	seq := report.Sequence
	name := seq.Name
	if name == "" {
		name = string(seq.ID)
	}

	checked := report.FramesChecked()
	lines := []string{
		s.title.Render(fmt.Sprintf("Sequence %s (%s)", name, seq.ID)),
		s.header.Render(fmt.Sprintf("dir: %s  fps: %d  frames: %d", seq.Dir, seq.FPS, checked)),
		renderHealthBar(report.Present, checked, s),
		s.detail.Render(fmt.Sprintf("present: %d  missing: %d  empty paths: %d", report.Present, report.Missing, report.EmptyPaths)),
	}

	switch {
	case report.Missing > 0:
		lines = append(lines, s.warning.Render(fmt.Sprintf("a session would abort at frame %d", report.FirstMissing)))
	case report.EmptyPaths > 0:
		lines = append(lines, s.warning.Render("some assets carry no path block; clients will see blank frames"))
	default:
		lines = append(lines, s.ok.Render("all frames streamable"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHealthBar(present, total int, s styles) string {
	const width = 24

	filled := 0
	if total > 0 {
		filled = present * width / total
	}
	if filled > width {
		filled = width
	}

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled)) +
		s.barBracket.Render("]")
}
