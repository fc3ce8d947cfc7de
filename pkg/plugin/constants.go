// Package plugin provides the public API for swatch exporter plugins.
// External plugins should import this package instead of internal packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this swatch version can work with.
	MinCompatibleVersion = "0.1.0"

	// ExporterPluginName is the key exporters are dispensed under.
	ExporterPluginName = "exporter"
)

// Handshake is the handshake configuration for go-plugin protocol.
//
// go-plugin's ProtocolVersion is a single uint that must match exactly, so it
// carries the major version only. The full MAJOR.MINOR.PATCH check happens
// separately via the --plugin-info query and IsCompatible.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  uint(CurrentVersion().Major),
	MagicCookieKey:   "SWATCH_PLUGIN",
	MagicCookieValue: "swatch_palette",
}

// PluginType defines the type of plugin communication protocol.
type PluginType string

const (
	// PluginTypeGoPlugin indicates the plugin uses HashiCorp go-plugin RPC protocol.
	PluginTypeGoPlugin PluginType = "go-plugin"

	// PluginTypeJSON indicates the plugin uses simple JSON over stdin/stdout.
	PluginTypeJSON PluginType = "json-stdio"
)

// PluginMap returns the plugin set a host or plugin registers for impl.
func PluginMap(impl ExporterPlugin) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		ExporterPluginName: &ExporterPluginRPC{Impl: impl},
	}
}

// Serve runs impl as a go-plugin exporter. It blocks until the host
// disconnects and is meant to be called from a plugin's main.
func Serve(impl ExporterPlugin) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
