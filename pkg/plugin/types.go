package plugin

import "time"

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
}

// PaletteData is the palette data sent to exporter plugins.
type PaletteData struct {
	Colours    []Colour            `json:"colours"`
	Selected   int                 `json:"selected"`
	Variations []Variation         `json:"variations,omitempty"`
	Harmonies  map[string][]string `json:"harmonies,omitempty"`
	Extracted  time.Time           `json:"extracted"`
	Source     string              `json:"source,omitempty"`
	PluginArgs map[string]string   `json:"plugin_args,omitempty"`
}

// Colour is one ranked palette colour for RPC transfer.
type Colour struct {
	RGB        RGBColour `json:"rgb"`
	Hex        string    `json:"hex"`
	HSL        HSLColour `json:"hsl"`
	Percentage float64   `json:"percentage"`
	Name       string    `json:"name"`
}

// RGBColour represents an RGB color.
type RGBColour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColour holds integer hue (degrees), saturation and lightness (percent).
type HSLColour struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Variation is one brightness step of the selected colour.
type Variation struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
	Hex    string  `json:"hex"`
}
