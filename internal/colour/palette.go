package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Percentage is a share of sampled pixels, kept to one decimal place.
type Percentage float64

// String formats the percentage with exactly one decimal, e.g. "42.0".
func (p Percentage) String() string {
	return strconv.FormatFloat(float64(p), 'f', 1, 64)
}

// MarshalJSON emits the value as a number with one decimal place.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// Swatch is one extracted colour in every representation the engine offers.
type Swatch struct {
	RGB        RGB        `json:"rgb"`
	Hex        string     `json:"hex"`
	HSL        HSL        `json:"hsl"`
	Percentage Percentage `json:"percentage"`
	Name       ColourName `json:"name"`
}

// NewSwatch derives every representation of rgb.
func NewSwatch(rgb RGB, percentage float64) Swatch {
	hsl := RGBToHSL(rgb)
	return Swatch{
		RGB:        rgb,
		Hex:        rgb.Hex(),
		HSL:        hsl,
		Percentage: Percentage(percentage),
		Name:       NameHSL(hsl),
	}
}

// Palette is an ordered set of swatches, most dominant first.
type Palette struct {
	Colours []Swatch
}

// NewPalette creates a new Palette with the given swatches.
func NewPalette(swatches []Swatch) Palette {
	return Palette{Colours: swatches}
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p.Colours)
}

// Get returns the swatch at the specified index.
func (p Palette) Get(index int) (Swatch, error) {
	if index < 0 || index >= len(p.Colours) {
		return Swatch{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all swatches in the palette.
func (p Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Colours {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Hex returns the hex codes of every swatch in order.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colours))
	for i, s := range p.Colours {
		out[i] = s.Hex
	}
	return out
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Colours))
	for i, s := range p.Colours {
		fmt.Fprintf(&sb, "  %2d: %s %-8s %5s%%  %s\n", i+1, s.Hex, s.Name, s.Percentage, s.HSL)
	}
	return sb.String()
}
