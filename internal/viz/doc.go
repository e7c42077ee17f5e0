// Package viz provides the terminal frontend for the work demonstration.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: sliders for force, angle and distance, results and status
//   - [Canvas]: Braille-based pixel canvas the scene is drawn on
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	j/k, tab - Select a slider
//	h/l      - Adjust by one step (H/L for ten)
//	Space    - Start/Pause the animation
//	R        - Reset the animation
//	I        - Toggle the explanation panel
//	P        - Cycle presets
//	T        - Cycle color themes
//
// Each tea.Tick drives the animator's scheduler once, which redraws the
// canvas and, while running, advances the animation.
package viz
