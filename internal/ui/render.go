// Package ui renders CLI output: lipgloss tables and styles, and glamour
// markdown.
package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// DefaultWrap is the markdown word-wrap width when the terminal width is unknown.
const DefaultWrap = 100

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func Title(s string) string {
	return titleStyle.Render(s)
}

// Error renders a failed tool call: the message, and the hint on its own line
// when there is one.
func Error(msg, hint string) string {
	out := errorStyle.Render("Error: " + msg)
	if hint != "" {
		out += "\n" + hintStyle.Render(hint)
	}
	return out
}

// Table renders rows under headers with a rounded border. Rows shorter than
// headers are padded with empty cells.
func Table(headers []string, rows [][]string) string {
	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(headers) {
			row = append(row, make([]string, len(headers)-len(row))...)
		}
		padded = append(padded, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(padded...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// Markdown renders content for the terminal. Styles follow the terminal
// background; without a terminal the output is plain text.
func Markdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
