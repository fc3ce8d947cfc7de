package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/swatch/internal/colour"
)

func TestToPixelBuffer(t *testing.T) {
	img := solidImage(3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := ToPixelBuffer(img)

	if buf.Width != 3 || buf.Height != 2 || buf.Len() != 6 {
		t.Fatalf("buffer = %dx%d (%d px), want 3x2", buf.Width, buf.Height, buf.Len())
	}
	if buf.Pix[0] != 10 || buf.Pix[1] != 20 || buf.Pix[2] != 30 || buf.Pix[3] != 255 {
		t.Errorf("first pixel = %v", buf.Pix[:4])
	}
}

func TestToPixelBufferOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 7))
	img.Set(5, 5, color.RGBA{R: 255, A: 255})
	buf := ToPixelBuffer(img)

	if buf.Len() != 4 || buf.Pix[0] != 255 {
		t.Errorf("ToPixelBuffer() = %+v, want top-left red", buf)
	}
}

func TestQuantizeDecodedImage(t *testing.T) {
	p := colour.Quantize(ToPixelBuffer(solidImage(100, 100, color.RGBA{R: 255, G: 255, B: 255, A: 255})), 5)
	if p.Len() != 1 || p.Colours[0].Name != colour.NameWhite {
		t.Errorf("Quantize() = %v, want a single white swatch", p)
	}
}

func TestFit(t *testing.T) {
	img := solidImage(400, 200, color.White)

	got := Fit(img, 100, 100).Bounds()
	if got.Dx() != 100 || got.Dy() != 50 {
		t.Errorf("Fit() = %dx%d, want 100x50", got.Dx(), got.Dy())
	}
	if Fit(img, 800, 800) != image.Image(img) {
		t.Error("Fit() should return small images unchanged")
	}
}
