// Package sonar provides the acoustic frame representation shared by the
// segmentation pipeline.
//
// A sonar frame is a dense grid of unsigned 16-bit intensity samples in
// image-plane coordinates: rows are range bins (row 0 at the top of the
// image, farthest from the sensor), columns span the fan width. The
// sensor sits just below the bottom edge of the grid, so acoustic beams
// are rays traced upward from the bottom-center.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - Row: vertical position (0 = topmost sample row)
//   - Col: horizontal position (0 = leftmost sample column)
//
// Reads outside the grid return intensity 0 rather than panicking, which
// keeps beam traversal total for wide fan geometries.
//
// # Thread Safety
//
// Frame is immutable after construction and safe for concurrent reads.
// Cache is safe for concurrent use.
package sonar
