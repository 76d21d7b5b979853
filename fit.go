package cmath

import "fmt"

// TransformToFit returns the transform that scales target uniformly to fit
// inside viewport shrunk by margin, with the target's center mapped to the
// center of that effective viewport. The result can be used directly as a
// rendering matrix.
//
// A zero-sized target or a margin that collapses the viewport yields an
// identity scale translated to the viewport origin.
func TransformToFit(viewport, target Rectangle, margin Padding) (Transform, error) {
	if err := margin.validate(); err != nil {
		return Identity(), err
	}

	ew := viewport.Width - margin.Left - margin.Right
	eh := viewport.Height - margin.Top - margin.Bottom
	if ew <= 0 || eh <= 0 || target.Width <= 0 || target.Height <= 0 {
		Logger().Debug("cmath: degenerate viewport fit",
			"viewport", viewport, "target", target, "margin", margin)
		return TranslateTransform(viewport.X, viewport.Y), nil
	}

	scale := min(ew/target.Width, eh/target.Height)
	if !isFinite(scale) {
		return TranslateTransform(viewport.X, viewport.Y), nil
	}

	center := target.Center()
	ecx := viewport.X + margin.Left + ew/2
	ecy := viewport.Y + margin.Top + eh/2

	return Transform{
		A: scale, B: 0, TX: ecx - center.X*scale,
		C: 0, D: scale, TY: ecy - center.Y*scale,
	}, nil
}

// FitMargin is a convenience wrapper for a uniform margin.
func FitMargin(viewport, target Rectangle, margin float64) (Transform, error) {
	if margin < 0 {
		return Identity(), fmt.Errorf("%w: margin must be non-negative, got %v", ErrInvalidArgument, margin)
	}
	return TransformToFit(viewport, target, UniformPadding(margin))
}
