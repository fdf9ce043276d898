// Package surface provides the cell canvases the panes draw into and the
// physical screen they are blitted onto.
//
// A Surface is a virtual canvas that may be larger than the region of the
// terminal it is shown in. Panes size a surface to fit their content, write
// text into it at cell coordinates, and scroll it so that the row of interest
// is visible. Nothing reaches the terminal until the surface is blitted onto
// the Screen and the Screen is flushed.
//
// # Two-phase drawing
//
// Writes mark a surface dirty. Blit copies the visible window of a dirty
// surface onto the Screen's staging buffer and clears the flag; a clean surface
// is skipped. Flush then renders the staging buffer into a single frame string
// with lipgloss styles applied. Only one frame is produced per flush, however
// many surfaces were blitted, so intermediate states are never visible.
//
// # Scrolling
//
// ScrollToRow uses a minimal-scroll policy: the first visible row moves only as
// far as needed to bring the target row into the window. The first visible row
// always stays within [0, max(0, rows-viewportRows)].
package surface
