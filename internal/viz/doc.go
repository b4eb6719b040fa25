// Package viz renders simulation results in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, used by [Scene] to draw the arc
//     and flight paths
//   - [SpeedChart], [HeightChart]: asciigraph profiles
//   - [Report]: lipgloss summary of a run
//   - [Viewer]: read-only Bubble Tea browser over one computed result
//
// # Key Bindings
//
//	Tab/→  - Next tab
//	⇧Tab/← - Previous tab
//	1-4    - Jump to tab
//	T      - Cycle color themes
//	Q      - Quit
package viz
