package ui

import (
	"fmt"
	"strings"
)

// RenderSuccessBox renders a success box with optional detail lines
func RenderSuccessBox(title string, details []string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	lines := []string{TitleStyle.Foreground(FocusColor).Render(fmt.Sprintf("%s  %s", SuccessMarker, title))}
	for _, d := range details {
		lines = append(lines, ValueStyle.Render("   "+d))
	}
	return BoxStyle(width, FocusColor).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error box with the error and troubleshooting tips
func RenderErrorBox(title string, err error, tips []string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	lines := []string{ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, title))}
	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render("   Error: "+err.Error()))
	}
	if len(tips) > 0 {
		lines = append(lines, "")
		for _, tip := range tips {
			lines = append(lines, CouponStyle.Render("   • "+tip))
		}
	}
	return BoxStyle(width, ErrorColor).Render(strings.Join(lines, "\n"))
}
