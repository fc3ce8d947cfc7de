package colour

import "fmt"

// Analysis is the result of one pass through the engine: the palette, the
// swatch chosen for variations, and the harmonies of the dominant colour.
type Analysis struct {
	Palette    Palette     `json:"-"`
	Selected   Swatch      `json:"selected"`
	Variations []Variation `json:"variations"`
	Harmonies  HarmonySet  `json:"harmonies"`
}

// Analyse derives variations for the swatch at index selected and harmonies
// for the top-ranked swatch. An empty palette yields an empty Analysis.
func Analyse(p Palette, selected int) (Analysis, error) {
	if p.Len() == 0 {
		return Analysis{Palette: p}, nil
	}

	sel, err := p.Get(selected)
	if err != nil {
		return Analysis{}, fmt.Errorf("invalid selection: %w", err)
	}

	return Analysis{
		Palette:    p,
		Selected:   sel,
		Variations: Variations(sel.RGB),
		Harmonies:  Harmonies(p.Colours[0].HSL),
	}, nil
}
