// Package cmath provides the 2D computational-geometry kernel behind an
// interactive vector design canvas.
//
// # Overview
//
// Every gesture on the canvas (drag, resize, rotate, snap, fit to selection,
// auto-layout, brush painting) resolves to calls into this module. The
// root package holds the shared value types and the algebra on them:
//
//   - Scalars: Quantize, Clamp, Nearest, PrincipalAngle
//   - Vector2, Range, AxisAlignedPoint
//   - Transform: 2x3 affine matrices, ToCanvasSpace / ToSurfaceSpace
//   - Rectangle: set operations, Subtract, AlignRects, DistributeEvenly,
//     UniformGap, Measure, cardinal and nine-point queries
//   - CubicBezier: exact bounding boxes, ArcToCubics
//   - TransformToFit: margin-aware viewport fit
//
// Sub-packages build on these types:
//
//   - snap: tie-aware alignment, 1D/2D snapping, uniform-gap distribution
//   - pack: free-space rectangle placement
//   - raster: integer-grid primitives and brush falloff on a Bitmap
//   - layout: flex direction, spacing and alignment inference
//   - spatial: R-tree index for hit-testing and neighbourhood queries
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians unless a function says degrees
//
// # Errors
//
// Invalid arguments (empty required collections, negative thresholds,
// steps or padding) return an error wrapping [ErrInvalidArgument].
// Degenerate geometry is not an error: lookups report false, snapping
// reports an infinite distance, and a singular transform reports
// [ErrNonInvertibleTransform] only when it has to be inverted.
//
// # Concurrency
//
// All functions are synchronous and free of shared state. The only
// operations that mutate their input are the raster functions taking a
// *raster.Bitmap.
package cmath
