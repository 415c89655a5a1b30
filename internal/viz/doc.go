// Package viz is the terminal front end of the teardown viewer.
//
// It draws the scene as braille wireframes with a perspective camera and
// wraps it in a Bubble Tea program:
//
//   - [Model]: the interactive viewer with a detail side panel
//   - [Canvas]: braille pixel canvas with per-cell ink
//   - [RenderScene] and [Pick]: projection of a scene snapshot, and the
//     inverse mapping from a terminal cell back to a part
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	E/Space   - Explode / collapse
//	Tab       - Hover next part
//	Enter     - Select hovered part
//	1-6       - Select part by number
//	S / C     - Fold specifications / connections
//	Arrows    - Orbit (hjkl also work)
//	+/-       - Zoom
//	R         - Reset view
//	T         - Cycle color themes
//	?         - Show help overlay
//
// Mouse motion hovers the part under the pointer and a left click selects it.
package viz
