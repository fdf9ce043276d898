// Package pane implements the screen regions: the header and footer bars,
// the sports menu, the tab strip and the content list.
//
// Each pane draws into its own Surface and blits the visible window onto the
// shared Screen. Panes never reference each other; the menu and the tab
// strip reach the content list only by dispatching commands on a
// command.Dispatcher.
package pane
