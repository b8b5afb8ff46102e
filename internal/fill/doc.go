// Package fill implements a paint-bucket flood fill over a flat RGBA pixel
// buffer.
//
// The buffer layout is row-major with 4 bytes per pixel in R, G, B, A order,
// so the pixel at (x, y) starts at offset (y*width+x)*4. The engine mutates
// the buffer in place and returns it.
//
// # Algorithm
//
// The fill is 4-connected region growing driven by an explicit work stack:
//
//  1. The seed pixel's color is sampled once as the reference color.
//  2. If the reference color already equals the fill color the buffer is
//     returned untouched.
//  3. Coordinates are popped from the stack. Pixels already equal to the fill
//     color are skipped; pixels whose every channel differs from the
//     reference by strictly less than the tolerance are painted (alpha 255)
//     and their four neighbors pushed.
//
// No visited set is kept. A painted pixel equals the fill color and is
// rejected on every later pop, which bounds the work to O(width*height).
//
// # Tolerance
//
// Tolerance is an exclusive per-channel bound: a difference of exactly
// tolerance does not match, and a tolerance of 0 matches nothing. Use
// ColorsEqual for exact comparisons.
//
// # Errors
//
// Validation happens before the first write, so a failed call never leaves a
// partially filled buffer:
//   - ErrInvalidSurface: the surface is nil or could not report its size
//   - ErrOutOfBounds: the seed lies outside the surface
//   - ErrDimensionMismatch: len(buf) != width*height*4
//
// # Thread Safety
//
// A fill runs synchronously to completion. The buffer must not be read or
// written by anyone else for the duration of the call; concurrent fills need
// independent buffers.
package fill
