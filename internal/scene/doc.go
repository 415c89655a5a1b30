// Package scene is the interactive state machine behind the teardown viewer.
//
// It is split the same way the frame loop uses it:
//
//   - [Controller]: owns [State] (exploded flag, hovered part, selected part)
//     and applies discrete input transitions
//   - [Animator]: per-tick pass that eases every part toward its assembled or
//     exploded position and snaps the hover highlight
//   - [Camera]: camera distance eased with the same convergence factor
//   - [Scene]: bundles the three and exposes a read-only [Snapshot] per frame
//
// # Model
//
// Everything runs on one logical thread. Input transitions run to completion
// between ticks, and the next [Scene.Tick] always sees the latest [State].
// The easing law depends only on the current value and target, so reversing
// the explode toggle mid-flight just changes what the next tick converges to.
//
// # Example
//
//	sc := scene.New(scene.DefaultPacing())
//	sc.Controller().ToggleExplode()
//	for i := 0; i < 120; i++ {
//		sc.Tick()
//	}
//	z := sc.Animator().Position(parts.Screen).Z() // ~0.04
package scene
