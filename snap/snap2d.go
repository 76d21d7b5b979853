package snap

import "github.com/gogpu/cmath"

// Result2D holds an independent Result1D per axis.
type Result2D struct {
	X, Y Result1D
}

// Delta returns the snapping delta, zero on axes that did not snap.
func (r Result2D) Delta() cmath.Vector2 {
	return cmath.Vector2{X: r.X.Delta(), Y: r.Y.Delta()}
}

// Snap2DAxisAligned snaps agents on x and y independently.
//
// An axis of threshold that is not set disables snapping on that axis.
// Anchors whose component on an axis is not set do not take part on that
// axis. Anchor indices in the result refer to the anchors slice.
func Snap2DAxisAligned(agents []cmath.Vector2, anchors []cmath.AxisAlignedPoint, threshold cmath.AxisAlignedPoint, tolerance float64) (Result2D, error) {
	res := Result2D{X: noSnap1D(), Y: noSnap1D()}
	for _, axis := range []cmath.Axis{cmath.AxisX, cmath.AxisY} {
		t, enabled := threshold.Component(axis)
		if !enabled {
			continue
		}
		r, err := snapAxis(agents, anchors, axis, t, tolerance)
		if err != nil {
			return Result2D{}, err
		}
		if axis == cmath.AxisX {
			res.X = r
		} else {
			res.Y = r
		}
	}
	return res, nil
}

func snapAxis(agents []cmath.Vector2, anchors []cmath.AxisAlignedPoint, axis cmath.Axis, threshold, tolerance float64) (Result1D, error) {
	values := make([]float64, len(agents))
	for i, a := range agents {
		values[i] = a.Component(axis)
	}

	targets := make([]float64, 0, len(anchors))
	origin := make([]int, 0, len(anchors))
	for i, a := range anchors {
		if v, ok := a.Component(axis); ok {
			targets = append(targets, v)
			origin = append(origin, i)
		}
	}

	r, err := Snap1D(values, targets, threshold, tolerance)
	if err != nil || !r.OK() {
		return r, err
	}
	for i, idx := range r.AnchorIndices {
		r.AnchorIndices[i] = origin[idx]
	}
	return r, nil
}
