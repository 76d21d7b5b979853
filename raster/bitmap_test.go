package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/cmath"
)

func TestBitmapSetAt(t *testing.T) {
	b := NewBitmap(4, 3)
	if len(b.Pix) != 4*3*4 {
		t.Fatalf("len(Pix) = %d, want 48", len(b.Pix))
	}
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	b.Set(3, 2, c)
	if got := b.At(3, 2); got != c {
		t.Errorf("At(3, 2) = %v, want %v", got, c)
	}
	b.Set(4, 0, c)
	b.Set(-1, 0, c)
	if got := b.At(4, 0); got != (color.NRGBA{}) {
		t.Errorf("out-of-bounds At = %v, want transparent", got)
	}
	if got := NewBitmap(-2, 5); got.Width != 0 || len(got.Pix) != 0 {
		t.Errorf("NewBitmap(-2, 5) = %dx%d with %d bytes", got.Width, got.Height, len(got.Pix))
	}
}

func TestNewBitmapFromPix(t *testing.T) {
	pix := make([]uint8, 2*2*4)
	b, err := NewBitmapFromPix(2, 2, pix)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 1, red)
	if pix[12] != 255 || pix[15] != 255 {
		t.Error("NewBitmapFromPix copied the buffer")
	}
	if _, err := NewBitmapFromPix(2, 2, pix[:15]); !errors.Is(err, cmath.ErrInvalidArgument) {
		t.Errorf("short buffer error = %v, want ErrInvalidArgument", err)
	}
}

func TestBitmapClone(t *testing.T) {
	b := NewBitmap(2, 2)
	c := b.Clone()
	c.Set(0, 0, red)
	if b.At(0, 0) == red {
		t.Error("Clone shares pixels with the original")
	}
}

func TestBitmapImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, red)
	src.SetNRGBA(7, 6, color.NRGBA{G: 128, B: 255, A: 255})

	b := BitmapFromImage(src)
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width, b.Height)
	}
	if got := b.At(0, 0); got != red {
		t.Errorf("At(0, 0) = %v, want %v", got, red)
	}
	if got := b.At(2, 1); got != (color.NRGBA{G: 128, B: 255, A: 255}) {
		t.Errorf("At(2, 1) = %v", got)
	}

	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 3, 2) || img.NRGBAAt(0, 0) != red {
		t.Errorf("Image() = %v with %v at origin", img.Bounds(), img.NRGBAAt(0, 0))
	}
}
