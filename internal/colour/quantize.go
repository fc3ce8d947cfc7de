package colour

import (
	"cmp"
	"math"
	"slices"
)

const (
	// sampleBudget bounds the work done on large buffers. The stride is
	// derived from the buffer's byte length, so roughly a quarter of this
	// many pixels are visited.
	sampleBudget = 40000

	// bucketStep is the quantization grid spacing per channel.
	bucketStep = 32
)

// PixelBuffer is a decoded image as non-premultiplied RGBA bytes, four per
// pixel, row-major.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// Len returns the number of complete pixels in the buffer.
func (b PixelBuffer) Len() int {
	return len(b.Pix) / 4
}

// Stride returns the pixel sampling step used by Quantize.
func (b PixelBuffer) Stride() int {
	return max(1, len(b.Pix)/sampleBudget)
}

// bucket is a quantized colour key.
type bucket struct {
	rgb   RGB
	count int
}

// quantizeChannel snaps a channel to the nearest multiple of bucketStep.
// 255 rounds to 256 and is clamped back to 255.
func quantizeChannel(v uint8) uint8 {
	q := roundHalfUp(float64(v)/bucketStep) * bucketStep
	return clampChannel(q)
}

// Quantize extracts up to maxColors dominant colours from buf.
//
// Every Stride()th pixel is snapped to a 32-step grid and counted. Buckets
// are ranked by descending count; equal counts are ordered by red, then
// green, then blue ascending. A buffer without a complete pixel or a
// non-positive maxColors yields an empty palette.
func Quantize(buf PixelBuffer, maxColors int) Palette {
	if maxColors <= 0 || buf.Len() == 0 {
		return Palette{}
	}

	step := buf.Stride() * 4
	counts := make(map[RGB]int)
	sampled := 0
	for i := 0; i+4 <= len(buf.Pix); i += step {
		key := RGB{
			R: quantizeChannel(buf.Pix[i]),
			G: quantizeChannel(buf.Pix[i+1]),
			B: quantizeChannel(buf.Pix[i+2]),
		}
		counts[key]++
		sampled++
	}

	buckets := make([]bucket, 0, len(counts))
	for rgb, n := range counts {
		buckets = append(buckets, bucket{rgb: rgb, count: n})
	}
	slices.SortFunc(buckets, func(a, b bucket) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(packRGB(a.rgb), packRGB(b.rgb))
	})

	if len(buckets) > maxColors {
		buckets = buckets[:maxColors]
	}

	swatches := make([]Swatch, len(buckets))
	for i, bk := range buckets {
		swatches[i] = NewSwatch(bk.rgb, percentOf(bk.count, sampled))
	}

	return NewPalette(swatches)
}

func packRGB(c RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// percentOf returns n/total as a percentage rounded to one decimal place.
func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}
