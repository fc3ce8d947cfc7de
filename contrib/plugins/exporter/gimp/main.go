// gimp - swatch exporter plugin for GIMP palettes
//
// Writes the extracted palette as a GIMP .gpl file over the go-plugin
// protocol.
//
// Build:
//   go build -o swatch-gimp .
//
// Usage:
//   swatch extract --plugin ./swatch-gimp --plugin-arg name=Brand -o palettes/ photo.jpg
//
// Plugin arguments:
//   name     palette name (default: "swatch")
//   columns  columns GIMP shows in its palette view (default: number of colours)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmylchreest/swatch/pkg/plugin"
)

// GIMPPlugin exports palettes as GIMP .gpl files.
type GIMPPlugin struct{}

// Export renders the palette as <name>.gpl.
func (p *GIMPPlugin) Export(_ context.Context, palette plugin.PaletteData) (map[string][]byte, error) {
	opts, err := parseOptions(palette.PluginArgs, len(palette.Colours))
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		opts.name + ".gpl": encodeGPL(palette, opts),
	}, nil
}

// GetMetadata returns plugin metadata.
func (p *GIMPPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "gimp",
		Version:         "0.1.0",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Export palettes as GIMP .gpl files",
		PluginProtocol:  string(plugin.PluginTypeGoPlugin),
	}
}

func main() {
	// swatch queries --plugin-info to discover the protocol before serving.
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode((&GIMPPlugin{}).GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(&GIMPPlugin{})
}
