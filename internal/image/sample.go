package image

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"sort"

	"github.com/fogleman/gg"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	sampleWidth   = 400
	sampleHeight  = 300
	sampleCircles = 50
)

type gradientStop struct {
	offset float64
	hex    string
}

var sampleGradients = map[string][]gradientStop{
	"sunset": {{0, "#FF6B6B"}, {0.3, "#FFE66D"}, {0.7, "#4ECDC4"}, {1, "#95E77E"}},
	"ocean":  {{0, "#0077BE"}, {0.5, "#4ECDC4"}, {1, "#A8DADC"}},
	"forest": {{0, "#2D5016"}, {0.3, "#73AB84"}, {0.7, "#99D19C"}, {1, "#ADE25D"}},
	"city":   {{0, "#2C3E50"}, {0.3, "#34495E"}, {0.7, "#7F8C8D"}, {1, "#BDC3C7"}},
}

// SampleNames returns the names accepted by Sample, sorted.
func SampleNames() []string {
	names := make([]string, 0, len(sampleGradients))
	for name := range sampleGradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample renders a 400x300 demo image: a diagonal gradient overlaid with
// faint white circles. The same seed always produces the same image.
func Sample(name string, seed uint64) (image.Image, error) {
	stops, ok := sampleGradients[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (valid: %v)", name, SampleNames())
	}

	dc := gg.NewContext(sampleWidth, sampleHeight)

	grad := gg.NewLinearGradient(0, 0, sampleWidth, sampleHeight)
	for _, stop := range stops {
		rgb, err := colour.ParseHex(stop.hex)
		if err != nil {
			return nil, err
		}
		grad.AddColorStop(stop.offset, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, sampleWidth, sampleHeight)
	dc.Fill()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for range sampleCircles {
		dc.SetRGBA(1, 1, 1, rng.Float64()*0.1)
		dc.DrawCircle(rng.Float64()*sampleWidth, rng.Float64()*sampleHeight, rng.Float64()*50)
		dc.Fill()
	}

	return dc.Image(), nil
}
