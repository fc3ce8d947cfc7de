// Package logging builds the hclog loggers used across swatch.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	Name    string
	Output  io.Writer
	Verbose bool
	Quiet   bool
}

// Level maps the verbose and quiet flags to an hclog level. Quiet wins.
func Level(verbose, quiet bool) hclog.Level {
	switch {
	case quiet:
		return hclog.Error
	case verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New returns a logger writing to opts.Output. A nil output discards.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	name := opts.Name
	if name == "" {
		name = "swatch"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Output:          out,
		Level:           Level(opts.Verbose, opts.Quiet),
		DisableTime:     true,
		IncludeLocation: false,
	})
}
