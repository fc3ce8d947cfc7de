package image

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ToPixelBuffer flattens img into non-premultiplied RGBA bytes, the layout
// the palette engine samples from.
func ToPixelBuffer(img image.Image) colour.PixelBuffer {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	return colour.PixelBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    dst.Pix,
	}
}

// Fit resizes img to fit within maxWidth x maxHeight, keeping its aspect
// ratio. Images that already fit are returned unchanged.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(math.Max(1, float64(width)*ratio))
	newHeight := uint(math.Max(1, float64(height)*ratio))

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
