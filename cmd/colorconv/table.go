package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/swatch"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Width(6)

// formatTable renders the display table. Styled output is headed by a
// block of the color itself with its hex in contrasting ink.
func formatTable(snap colorpick.Snapshot, styled bool) string {
	var b strings.Builder
	if styled {
		ink := swatch.Ink(snap)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(snap.Hex)).
			Foreground(lipgloss.Color(ink.Hex())).
			Padding(1, 4).
			Render(snap.Hex)
		b.WriteString(block)
		b.WriteString("\n")
	}

	rows := snap.Formats()
	if snap.Name != "" {
		rows = append(rows, colorpick.Format{Label: "NAME", Value: snap.Name})
	}
	for _, f := range rows {
		if styled {
			b.WriteString(labelStyle.Render(f.Label))
		} else {
			fmt.Fprintf(&b, "%-6s", f.Label)
		}
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return b.String()
}
