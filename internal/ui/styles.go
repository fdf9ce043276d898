package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/paddyterm/internal/surface"
)

// Color palette
var (
	BarColor     = lipgloss.Color("#1E8449") // Green - header and footer bars
	FocusColor   = lipgloss.Color("#43BF6D") // Light green - focused borders
	BorderColor  = lipgloss.Color("#FFFFFF") // White - idle borders
	ScreenColor  = lipgloss.Color("#000000") // Black - background
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum width for printed output
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for printed output
var (
	// TitleStyle is for box titles (e.g., "HOMEPAGE")
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// KeyStyle is for detail keys
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ValueStyle is for detail values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// TabStyle is for tab titles in a page dump
	TabStyle = lipgloss.NewStyle().
			Foreground(FocusColor).
			Bold(true)

	// CardStyle is for card titles in a page dump
	CardStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// CouponStyle is for coupon lines in a page dump
	CouponStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for warning prompts
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	DefaultMarker = "*"
)

// Palette returns the terminal styles for the browser's cell styles: green
// bars, white borders that turn green with focus, on a black screen.
func Palette() surface.Palette {
	base := lipgloss.NewStyle().Background(ScreenColor)
	return surface.Palette{
		surface.StyleNormal:  base.Foreground(TextColor),
		surface.StyleBorder:  base.Foreground(BorderColor),
		surface.StyleFocused: base.Foreground(FocusColor),
		surface.StyleBar:     lipgloss.NewStyle().Foreground(TextColor).Background(BarColor),
		surface.StyleBarBold: lipgloss.NewStyle().Foreground(TextColor).Background(BarColor).Bold(true),
	}
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// BoxStyle returns the rounded border used around printed sections
func BoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width - 2). // Account for border characters
		Padding(0, 1)
}
