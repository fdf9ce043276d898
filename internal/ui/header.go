package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders a bordered banner with a title and sorted key/value
// parameters.
func RenderHeader(title string, params map[string]string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{TitleStyle.Render(strings.ToUpper(title))}
	for _, k := range keys {
		lines = append(lines, KeyStyle.Render(k+":")+" "+ValueStyle.Render(params[k]))
	}

	return BoxStyle(width, FocusColor).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
