package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm shows a warning and asks a yes/no question on in. Anything but
// "y" or "yes" is a no.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string) bool {
	lines := []string{WarningTitleStyle.Render("⚠  " + title)}
	for _, w := range warnings {
		lines = append(lines, ValueStyle.Render("   • "+w))
	}
	_, _ = fmt.Fprintln(out, BoxStyle(GetTerminalWidth(), WarningColor).Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprint(out, "Continue? [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
