// Package imaging connects decoded images to the fill engine.
//
// It owns everything about where a pixel buffer comes from and where it goes:
// loading and caching images from disk, cloning them into a Canvas whose flat
// NRGBA buffer the fill package paints on, sampling colors, parsing fill
// colors, and encoding or saving results.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. A Canvas always has its
// origin at (0,0), whatever the bounds of the image it was cloned from.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images are treated as
// immutable; a Canvas is a private copy and must not be shared between
// goroutines while a fill is running on it.
//
// # Formats
//
// Decoding supports PNG, JPEG, GIF, BMP and WebP. SaveImage writes PNG, JPEG
// and BMP, chosen by file extension.
package imaging
