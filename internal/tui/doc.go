// Package tui runs the terminal browser as a Bubble Tea program.
//
// The Bubble Tea runtime supplies the event loop: one message at a time,
// keystrokes and resizes interleaved, each fully handled before the next.
// Model translates those messages into pane keys, focus changes and resizes
// on a render.Scheduler and returns the flushed frame from View.
//
// Panes are built on the first WindowSizeMsg, since their geometry depends
// on the terminal size. A terminal too small for the initial layout ends
// the program with the layout error available from Model.Err.
package tui
