// Package export encodes palettes into the formats swatch can write.
package export

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Format identifies an export encoding.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJSON Format = "json"
	FormatASE  Format = "ase"
	FormatPNG  Format = "png"
)

// Formats returns every format Encode accepts.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatCSS, FormatSCSS, FormatJSON, FormatASE, FormatPNG}
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatHex, FormatRGB:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// IsBinary reports whether the format should not be written to a terminal.
func (f Format) IsBinary() bool {
	return f == FormatASE || f == FormatPNG
}

// Options carries the context some encoders need beyond the palette.
type Options struct {
	// Extracted is the timestamp recorded in JSON exports and bundle entries.
	Extracted time.Time

	// Analysis adds the selected swatch, variations and harmonies to JSON.
	Analysis *colour.Analysis

	// Source, when set, is drawn as a thumbnail band above PNG swatches.
	Source image.Image
}

// Encode renders p in format f.
func Encode(f Format, p colour.Palette, opts Options) ([]byte, error) {
	switch f {
	case FormatHex:
		return Hex(p), nil
	case FormatRGB:
		return RGBList(p), nil
	case FormatCSS:
		return CSS(p), nil
	case FormatSCSS:
		return SCSS(p), nil
	case FormatJSON:
		return JSON(p, opts)
	case FormatASE:
		return ASE(p)
	case FormatPNG:
		return PNG(p, opts)
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %v)", f, Formats())
	}
}

// Hex lists one hex code per line.
func Hex(p colour.Palette) []byte {
	return lines(p, func(_ int, s colour.Swatch) string { return s.Hex })
}

// RGBList lists one rgb() value per line.
func RGBList(p colour.Palette) []byte {
	return lines(p, func(_ int, s colour.Swatch) string { return s.RGB.String() })
}

// CSS writes numbered CSS custom properties, e.g. "--color-1: #ff0000;".
func CSS(p colour.Palette) []byte {
	return lines(p, func(i int, s colour.Swatch) string {
		return fmt.Sprintf("--color-%d: %s;", i+1, s.Hex)
	})
}

// SCSS writes numbered SCSS variables, e.g. "$color-1: #ff0000;".
func SCSS(p colour.Palette) []byte {
	return lines(p, func(i int, s colour.Swatch) string {
		return fmt.Sprintf("$color-%d: %s;", i+1, s.Hex)
	})
}

func lines(p colour.Palette, line func(int, colour.Swatch) string) []byte {
	var sb strings.Builder
	for i, s := range p.All() {
		sb.WriteString(line(i, s))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
