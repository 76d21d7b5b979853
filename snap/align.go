package snap

import (
	"fmt"
	"math"

	"github.com/gogpu/cmath"
)

// ScalarResult is the outcome of aligning a scalar to a set of targets.
type ScalarResult struct {
	// Value is the snapped value, or the input point when nothing snapped.
	Value float64
	// Distance is point - Value, or +Inf when nothing was within threshold.
	Distance float64
	// Indices lists every target exactly at the minimum distance.
	Indices []int
}

// OK reports whether a target was within threshold.
func (r ScalarResult) OK() bool { return !math.IsInf(r.Distance, 1) }

// Scalar aligns point to the nearest target within threshold.
func Scalar(point float64, targets []float64, threshold float64) (ScalarResult, error) {
	if err := checkThreshold(threshold); err != nil {
		return ScalarResult{}, err
	}
	none := ScalarResult{Value: point, Distance: math.Inf(1)}

	minDist := math.Inf(1)
	var indices []int
	for i, t := range targets {
		d := math.Abs(t - point)
		switch {
		case d < minDist:
			minDist = d
			indices = append(indices[:0], i)
		case d == minDist:
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 || minDist > threshold {
		return none, nil
	}
	value := targets[indices[0]]
	return ScalarResult{Value: value, Distance: point - value, Indices: indices}, nil
}

// VectorResult is the outcome of aligning a point to a set of targets.
type VectorResult struct {
	Value cmath.Vector2
	// Distance is the Euclidean distance to Value, or +Inf.
	Distance float64
	Indices  []int
}

// OK reports whether a target was within threshold.
func (r VectorResult) OK() bool { return !math.IsInf(r.Distance, 1) }

// Vector aligns point to the nearest target by Euclidean distance.
func Vector(point cmath.Vector2, targets []cmath.Vector2, threshold float64) (VectorResult, error) {
	if err := checkThreshold(threshold); err != nil {
		return VectorResult{}, err
	}
	none := VectorResult{Value: point, Distance: math.Inf(1)}

	minDist := math.Inf(1)
	var indices []int
	for i, t := range targets {
		d := point.Distance(t)
		switch {
		case d < minDist:
			minDist = d
			indices = append(indices[:0], i)
		case d == minDist:
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 || minDist > threshold {
		return none, nil
	}
	return VectorResult{Value: targets[indices[0]], Distance: minDist, Indices: indices}, nil
}

func checkThreshold(threshold float64) error {
	if !(threshold >= 0) {
		return fmt.Errorf("%w: threshold must be non-negative, got %v", cmath.ErrInvalidArgument, threshold)
	}
	return nil
}
