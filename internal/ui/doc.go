// Package ui provides the terminal styling for paddyterm.
//
// Palette maps the browser's cell styles to lipgloss styles; the interactive
// program renders every flushed frame through it.
//
// The rest of the package serves the run-once commands (pages, dump and
// config init). Printer writes lipgloss-styled boxes and listings to a
// writer and exits; nothing here reads keys except Confirm, which asks a
// single yes/no question.
package ui
