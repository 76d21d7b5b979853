// Package snap implements the alignment and snapping engine used by drag,
// resize and nudge gestures.
//
// The building blocks are tie-aware: when several targets sit at exactly
// the same minimum distance every one of them is reported, so a caller can
// draw a guide line for each.
//
//   - Scalar / Vector: nearest-target alignment of a single value or point
//   - Snap1D: the smallest uniform delta that brings any agent onto any anchor
//   - Snap2DAxisAligned: Snap1D per axis with axis-specific thresholds
//   - Distribution / SnapSpacing: uniform-gap ("evenly spaced") targets
//   - Translate: the full drag gesture over rectangles
//
// A snap that did not happen is reported with an infinite Distance and
// empty index sets, never with an error.
package snap
