package plugin

import (
	"context"
)

// ExporterPlugin is the interface exporter plugins implement for go-plugin RPC.
type ExporterPlugin interface {
	// Export renders the palette into one or more named files.
	Export(ctx context.Context, palette PaletteData) (map[string][]byte, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
