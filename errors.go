package cmath

import "errors"

var (
	// ErrInvalidArgument reports a programmer error at the call boundary:
	// an empty required collection, a negative threshold, step or padding.
	ErrInvalidArgument = errors.New("cmath: invalid argument")

	// ErrNonInvertibleTransform is returned when a transform with a zero
	// determinant has to be inverted.
	ErrNonInvertibleTransform = errors.New("cmath: non-invertible transform")
)
