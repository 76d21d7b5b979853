package snap

import "math"

// Thresholds used by the editor gestures.
const (
	// NudgeThreshold is used for discrete keyboard nudges.
	NudgeThreshold = 0.5

	// GapTolerance absorbs pixel-quantization noise when comparing gaps.
	GapTolerance = 1.01
)

// DragThreshold returns the live-drag snap threshold for a zoom level,
// ceil(5 / zoom). A non-positive zoom is treated as 1.
func DragThreshold(zoom float64) float64 {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		zoom = 1
	}
	return math.Ceil(5 / zoom)
}

// Option configures Translate.
type Option func(*options)

type options struct {
	tolerance    float64
	gapTolerance float64
	spacing      bool
	centers      bool
}

func defaultOptions() options {
	return options{
		tolerance:    0,
		gapTolerance: GapTolerance,
		spacing:      true,
		centers:      true,
	}
}

// WithTolerance sets how far an agent/anchor pair may deviate from the
// winning delta and still be reported as a hit.
func WithTolerance(t float64) Option {
	return func(o *options) {
		o.tolerance = t
	}
}

// WithSpacingTolerance sets how far apart two anchor gaps may be and still
// count as the same spacing. Defaults to GapTolerance.
func WithSpacingTolerance(t float64) Option {
	return func(o *options) {
		o.gapTolerance = t
	}
}

// WithoutSpacing disables snapping to evenly spaced positions.
func WithoutSpacing() Option {
	return func(o *options) {
		o.spacing = false
	}
}

// WithoutCenters restricts point snapping to the four corners of each
// rectangle instead of its nine reference points.
func WithoutCenters() Option {
	return func(o *options) {
		o.centers = false
	}
}

// DistributionOption configures Distribution.
type DistributionOption func(*distributionOptions)

type distributionOptions struct {
	agentLength float64
	hasAgent    bool
	tolerance   float64
}

// WithAgentLength supplies the length of the moving range. When it is
// shorter than a loop's gap, centered positions inside the gap are
// projected as well.
func WithAgentLength(l float64) DistributionOption {
	return func(o *distributionOptions) {
		o.agentLength = l
		o.hasAgent = true
	}
}

// WithGapTolerance treats gaps within t of each other as the same spacing
// when forwarding them between loops.
func WithGapTolerance(t float64) DistributionOption {
	return func(o *distributionOptions) {
		o.tolerance = t
	}
}
