// Package parts holds the static layout of the device: the closed set of
// sub-assemblies, their assembled positions, and how far each one travels
// when the view is exploded.
//
// The registry is read-only and shared by the animation pass and the
// renderer. Explode offsets are data on each [Part]; nothing branches on a
// part's name.
package parts
