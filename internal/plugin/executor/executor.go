// Package executor runs external exporter plugins regardless of their
// underlying protocol (go-plugin RPC or JSON-stdio).
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/swatch/pkg/plugin"
)

const (
	detectTimeout = 5 * time.Second

	infoFlag   = "--plugin-info"
	exportFlag = "--export"

	// fallbackOutputName names the file built from raw JSON-stdio output.
	fallbackOutputName = "output.txt"
)

// Executor runs a single exporter plugin.
type Executor struct {
	path         string
	info         plugin.PluginInfo
	protocolType plugin.PluginType
	runner       ProcessRunner
	logger       hclog.Logger

	client    *goplugin.Client
	rpcClient *plugin.ExporterPluginRPCClient
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger routes executor and go-plugin logging to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithRunner replaces the process runner used for JSON-stdio plugins and
// protocol detection.
func WithRunner(runner ProcessRunner) Option {
	return func(e *Executor) {
		e.runner = runner
	}
}

// New queries the plugin at path for its metadata and prepares an executor
// for the protocol it reports.
func New(ctx context.Context, path string, opts ...Option) (*Executor, error) {
	e := &Executor{
		path:   path,
		runner: NewRealProcessRunner(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	info, err := e.detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to detect plugin protocol: %w", err)
	}

	switch info.PluginProtocol {
	case string(plugin.PluginTypeGoPlugin):
		e.protocolType = plugin.PluginTypeGoPlugin
	case string(plugin.PluginTypeJSON), "":
		// Empty defaults to json-stdio so simple scripts need not declare it.
		e.protocolType = plugin.PluginTypeJSON
	default:
		return nil, fmt.Errorf("unknown plugin_protocol: %s", info.PluginProtocol)
	}

	if info.ProtocolVersion != "" {
		if ok, err := plugin.IsCompatible(info.ProtocolVersion); !ok {
			return nil, fmt.Errorf("plugin %s: %w", info.Name, err)
		}
	}

	e.info = info
	e.logger.Debug("plugin detected",
		"name", info.Name,
		"version", info.Version,
		"protocol", e.protocolType)

	return e, nil
}

// Info returns the metadata the plugin reported.
func (e *Executor) Info() plugin.PluginInfo {
	return e.info
}

// Protocol returns the protocol the plugin speaks.
func (e *Executor) Protocol() plugin.PluginType {
	return e.protocolType
}

// Export runs the plugin against palette and returns the files it produced.
func (e *Executor) Export(ctx context.Context, palette plugin.PaletteData) (map[string][]byte, error) {
	switch e.protocolType {
	case plugin.PluginTypeGoPlugin:
		return e.exportGoPlugin(ctx, palette)
	case plugin.PluginTypeJSON:
		return e.exportJSON(ctx, palette)
	default:
		return nil, fmt.Errorf("unsupported protocol type: %s", e.protocolType)
	}
}

// Close cleans up any resources held by the executor.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpcClient = nil
	}
}

func (e *Executor) detect(ctx context.Context) (plugin.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{infoFlag}, nil)
	if err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to query plugin: %w%s", err, formatStderr(stderr))
	}

	var info plugin.PluginInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to parse plugin info: %w", err)
	}
	return info, nil
}

// --- Go-Plugin RPC implementation ---

func (e *Executor) getRPCClient() (*plugin.ExporterPluginRPCClient, error) {
	if e.rpcClient != nil {
		return e.rpcClient, nil
	}

	e.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  plugin.Handshake,
		Plugins:          plugin.PluginMap(nil),
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           e.logger.Named("plugin"),
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.ExporterPluginName)
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	client, ok := raw.(*plugin.ExporterPluginRPCClient)
	if !ok {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("unexpected plugin client type %T", raw)
	}
	e.rpcClient = client

	return client, nil
}

func (e *Executor) exportGoPlugin(ctx context.Context, palette plugin.PaletteData) (map[string][]byte, error) {
	client, err := e.getRPCClient()
	if err != nil {
		return nil, err
	}
	return client.Export(ctx, palette)
}

// --- JSON-stdio implementation ---

// jsonExportResult is what a JSON-stdio plugin may print to stdout. Anything
// else is kept verbatim as a single output file.
type jsonExportResult struct {
	Files map[string]string `json:"files"`
}

func (e *Executor) exportJSON(ctx context.Context, palette plugin.PaletteData) (map[string][]byte, error) {
	paletteJSON, err := json.Marshal(palette)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}

	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{exportFlag}, bytes.NewReader(paletteJSON))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("plugin execution failed: %w", ctx.Err())
		}
		return nil, fmt.Errorf("plugin execution failed: %w%s", err, formatStderr(stderr))
	}

	var result jsonExportResult
	if err := json.Unmarshal(stdout, &result); err == nil && result.Files != nil {
		files := make(map[string][]byte, len(result.Files))
		for name, content := range result.Files {
			files[name] = []byte(content)
		}
		return files, nil
	}

	files := make(map[string][]byte)
	if len(stdout) > 0 {
		files[fallbackOutputName] = stdout
	}
	return files, nil
}

func formatStderr(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return ""
	}
	return "\nStderr: " + msg
}
