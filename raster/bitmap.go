package raster

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/cmath"
)

// Bitmap is a rectangular buffer of non-premultiplied RGBA pixels, 4 bytes
// per pixel in row-major order.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBitmap creates a transparent bitmap. Negative dimensions are treated
// as zero.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// NewBitmapFromPix wraps an existing buffer without copying it.
// The buffer length must be width*height*4.
func NewBitmapFromPix(width, height int, pix []uint8) (*Bitmap, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: buffer of %d bytes does not hold %dx%d RGBA pixels",
			cmath.ErrInvalidArgument, len(pix), width, height)
	}
	return &Bitmap{Width: width, Height: height, Pix: pix}, nil
}

// Bounds returns the pixel rectangle of the bitmap.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// InBounds reports whether (x, y) addresses a pixel of b.
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b *Bitmap) offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// At returns the pixel at (x, y), or transparent black out of bounds.
func (b *Bitmap) At(x, y int) color.NRGBA {
	if !b.InBounds(x, y) {
		return color.NRGBA{}
	}
	i := b.offset(x, y)
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set writes the pixel at (x, y). Out of bounds writes are ignored.
func (b *Bitmap) Set(x, y int, c color.NRGBA) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	b.Pix[i+0] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{Width: b.Width, Height: b.Height, Pix: pix}
}

// Image returns a copy of the bitmap as an *image.NRGBA.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	copy(img.Pix, b.Pix)
	return img
}

// BitmapFromImage converts any image into a Bitmap whose origin is the
// image's Bounds().Min.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return &Bitmap{Width: bounds.Dx(), Height: bounds.Dy(), Pix: dst.Pix}
}
