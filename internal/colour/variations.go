package colour

import "math"

// Variation is one brightness step of a base colour.
type Variation struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
	Hex    string  `json:"hex"`
}

var variationSteps = []struct {
	label  string
	factor float64
}{
	{"-90%", 0.1},
	{"-70%", 0.3},
	{"-50%", 0.5},
	{"-30%", 0.7},
	{"Base", 1.0},
	{"+30%", 1.3},
	{"+50%", 1.5},
	{"+70%", 1.7},
	{"+90%", 1.9},
}

// AdjustBrightness scales every channel by factor, flooring and capping at 255.
func AdjustBrightness(rgb RGB, factor float64) RGB {
	scale := func(v uint8) uint8 {
		return clampChannel(math.Min(255, math.Floor(float64(v)*factor)))
	}
	return RGB{R: scale(rgb.R), G: scale(rgb.G), B: scale(rgb.B)}
}

// Variations returns the nine brightness steps of rgb, darkest first.
func Variations(rgb RGB) []Variation {
	out := make([]Variation, len(variationSteps))
	for i, step := range variationSteps {
		out[i] = Variation{
			Label:  step.label,
			Factor: step.factor,
			Hex:    AdjustBrightness(rgb, step.factor).Hex(),
		}
	}
	return out
}
