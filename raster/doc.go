// Package raster provides integer-grid primitives for brush and paint
// tools: Bresenham lines, circle and ellipse enumeration, 4-connected flood
// fill, soft-edge falloff functions and brush stamping onto a Bitmap.
//
// Enumeration functions are pure and return pixel coordinates. FloodFill,
// Stamp and Bitmap.Set mutate the *Bitmap they are given in place; callers
// painting concurrently must give each goroutine its own Bitmap.
package raster
