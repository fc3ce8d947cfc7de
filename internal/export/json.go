package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Document is the JSON export shape.
type Document struct {
	Colors     []colour.Swatch    `json:"colors"`
	Extracted  time.Time          `json:"extracted"`
	Selected   *colour.Swatch     `json:"selected,omitempty"`
	Variations []colour.Variation `json:"variations,omitempty"`
	Harmonies  colour.HarmonySet  `json:"harmonies,omitempty"`
}

// NewDocument assembles the export document for p.
func NewDocument(p colour.Palette, opts Options) Document {
	colors := p.Colours
	if colors == nil {
		colors = []colour.Swatch{}
	}

	extracted := opts.Extracted
	if extracted.IsZero() {
		extracted = time.Now()
	}

	doc := Document{
		Colors:    colors,
		Extracted: extracted.UTC(),
	}
	if a := opts.Analysis; a != nil && a.Variations != nil {
		sel := a.Selected
		doc.Selected = &sel
		doc.Variations = a.Variations
		doc.Harmonies = a.Harmonies
	}
	return doc
}

// JSON renders the palette as an indented JSON document.
func JSON(p colour.Palette, opts Options) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(p, opts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
