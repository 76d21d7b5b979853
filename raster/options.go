package raster

import "image"

// Option configures pixel enumeration.
type Option func(*options)

type options struct {
	clip    image.Rectangle
	hasClip bool
}

// WithClip restricts enumerated pixels to r. As with image.Rectangle, Min
// is inclusive and Max exclusive.
func WithClip(r image.Rectangle) Option {
	return func(o *options) {
		o.clip = r.Canon()
		o.hasClip = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
