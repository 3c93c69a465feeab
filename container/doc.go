// Package container provides the dense 2D image buffer and the scalar
// model shared by the heatfield algorithms.
//
// What:
//
//   - Image[T] wraps a packed row-major buffer with known width, height
//     and stride, addressable by (x, y) or by linear index.
//   - Size carries image dimensions; Unravel maps a linear index back
//     to coordinates for packed layouts.
//   - Scalar constrains the numeric types usable as cost values;
//     Inf returns the per-type "infinity" sentinel (+Inf for floats,
//     the maximum value for integers).
//
// Why:
//
//   - Touch sensor frames are small dense grids read at interactive
//     rates; a flat caller-owned buffer with linear indexing keeps the
//     hot loops free of per-pixel bounds arithmetic and allocation.
//   - The distance transform writes Inf[T]() into every pixel it cannot
//     reach, so the sentinel lives next to the buffer it fills.
//
// Complexity:
//
//   - All accessors are O(1); Fill is O(stride×height).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrBadStride: stride smaller than width.
package container
