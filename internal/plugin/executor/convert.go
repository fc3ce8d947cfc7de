package executor

import (
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/pkg/plugin"
)

// NewPaletteData converts an engine analysis into the plugin transfer type.
// selected is the palette index the variations were derived from.
func NewPaletteData(a colour.Analysis, selected int) plugin.PaletteData {
	data := plugin.PaletteData{
		Colours:  make([]plugin.Colour, 0, a.Palette.Len()),
		Selected: selected,
	}

	for _, s := range a.Palette.All() {
		data.Colours = append(data.Colours, plugin.Colour{
			RGB:        plugin.RGBColour{R: s.RGB.R, G: s.RGB.G, B: s.RGB.B},
			Hex:        s.Hex,
			HSL:        plugin.HSLColour{H: s.HSL.H, S: s.HSL.S, L: s.HSL.L},
			Percentage: float64(s.Percentage),
			Name:       string(s.Name),
		})
	}

	for _, v := range a.Variations {
		data.Variations = append(data.Variations, plugin.Variation{
			Label:  v.Label,
			Factor: v.Factor,
			Hex:    v.Hex,
		})
	}

	if len(a.Harmonies) > 0 {
		data.Harmonies = make(map[string][]string, len(a.Harmonies))
		for kind, hexes := range a.Harmonies {
			data.Harmonies[string(kind)] = hexes
		}
	}

	return data
}
