package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in rounded HSL form: hue in [0,360), saturation and
// lightness in [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(210, 50%, 40%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// RGB converts the colour back to RGB.
func (h HSL) RGB() RGB {
	return HSLToRGB(h)
}

// HSLf is the unrounded form of HSL: hue in degrees [0,360), saturation and
// lightness in [0,1].
type HSLf struct {
	H float64
	S float64
	L float64
}

// roundHalfUp rounds x to the nearest integer with halves rounded towards
// positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RGBToHSLf converts RGB to unrounded HSL.
func RGBToHSLf(rgb RGB) HSLf {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	if maxVal == minVal {
		// Achromatic.
		return HSLf{H: 0, S: 0, L: l}
	}

	d := maxVal - minVal
	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSLf{H: h * 60, S: s, L: l}
}

// RGBToHSL converts RGB to HSL rounded to whole degrees and percent.
func RGBToHSL(rgb RGB) HSL {
	f := RGBToHSLf(rgb)
	return HSL{
		H: int(roundHalfUp(f.H)) % 360,
		S: int(roundHalfUp(f.S * 100)),
		L: int(roundHalfUp(f.L * 100)),
	}
}

// HSLToRGB converts rounded HSL to RGB.
func HSLToRGB(hsl HSL) RGB {
	return HSLfToRGB(HSLf{
		H: float64(hsl.H),
		S: float64(hsl.S) / 100.0,
		L: float64(hsl.L) / 100.0,
	})
}

// HSLfToRGB converts unrounded HSL to RGB. Channels are rounded to the
// nearest integer and clamped to 0..255.
func HSLfToRGB(hsl HSLf) RGB {
	if hsl.S == 0 {
		v := clampChannel(roundHalfUp(hsl.L * 255))
		return RGB{R: v, G: v, B: v}
	}

	h := hsl.H / 360.0
	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	return RGB{
		R: clampChannel(roundHalfUp(hueToRGB(p, q, h+1.0/3.0) * 255)),
		G: clampChannel(roundHalfUp(hueToRGB(p, q, h) * 255)),
		B: clampChannel(roundHalfUp(hueToRGB(p, q, h-1.0/3.0) * 255)),
	}
}

// hueToRGB evaluates one channel; t is a hue fraction in turns.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
func Luminance(rgb RGB) float64 {
	return 0.2126*gammaCorrect(float64(rgb.R)/255.0) +
		0.7152*gammaCorrect(float64(rgb.G)/255.0) +
		0.0722*gammaCorrect(float64(rgb.B)/255.0)
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastText returns black or white, whichever reads better on bg.
func ContrastText(bg RGB) RGB {
	if Luminance(bg) > 0.179 {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}
