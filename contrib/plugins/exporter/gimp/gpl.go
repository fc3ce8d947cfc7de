package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jmylchreest/swatch/pkg/plugin"
)

const defaultPaletteName = "swatch"

type gplOptions struct {
	name    string
	columns int
}

func parseOptions(args map[string]string, colours int) (gplOptions, error) {
	opts := gplOptions{name: defaultPaletteName, columns: colours}

	if name, ok := args["name"]; ok {
		if name == "" || filepath.Base(name) != name {
			return gplOptions{}, fmt.Errorf("invalid palette name %q", name)
		}
		opts.name = name
	}

	if v, ok := args["columns"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 256 {
			return gplOptions{}, fmt.Errorf("invalid columns %q: must be 0-256", v)
		}
		opts.columns = n
	}

	return opts, nil
}

// encodeGPL writes the GIMP palette text format.
func encodeGPL(palette plugin.PaletteData, opts gplOptions) []byte {
	var buf bytes.Buffer
	buf.WriteString("GIMP Palette\n")
	fmt.Fprintf(&buf, "Name: %s\n", opts.name)
	fmt.Fprintf(&buf, "Columns: %d\n", opts.columns)
	buf.WriteString("#\n")

	for _, c := range palette.Colours {
		fmt.Fprintf(&buf, "%3d %3d %3d\t%s %s (%.1f%%)\n",
			c.RGB.R, c.RGB.G, c.RGB.B, c.Name, c.Hex, c.Percentage)
	}
	return buf.Bytes()
}
