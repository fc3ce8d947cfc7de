package export

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

const (
	swatchSize      = 100
	labelHeight     = 40
	labelFontSize   = 14
	thumbnailHeight = 200
)

// ErrEmptyPalette is returned by encoders that cannot render zero colours.
var ErrEmptyPalette = errors.New("palette has no colours")

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// PNG renders the palette as a strip of square swatches, each with its hex
// code on a white label below. When opts.Source is set the source image is
// drawn, scaled to fit, in a band above the swatches.
func PNG(p colour.Palette, opts Options) ([]byte, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPalette
	}

	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	width := p.Len() * swatchSize
	top := 0
	if opts.Source != nil {
		top = thumbnailHeight
	}

	dc := gg.NewContext(width, top+swatchSize+labelHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if opts.Source != nil {
		thumb := image.Fit(opts.Source, width, thumbnailHeight)
		b := thumb.Bounds()
		dc.DrawImage(thumb, (width-b.Dx())/2, (thumbnailHeight-b.Dy())/2)
	}

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: labelFontSize}))
	for i, s := range p.All() {
		x := float64(i * swatchSize)

		dc.SetRGB255(int(s.RGB.R), int(s.RGB.G), int(s.RGB.B))
		dc.DrawRectangle(x, float64(top), swatchSize, swatchSize)
		dc.Fill()

		dc.SetRGB255(0x33, 0x33, 0x33)
		dc.DrawStringAnchored(s.Hex, x+swatchSize/2, float64(top+swatchSize+labelHeight/2), 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
