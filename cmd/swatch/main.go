// Swatch - extract colour palettes from images
//
// Swatch finds the dominant colours of an image, names them, derives
// brightness variations and colour harmonies, and exports the result in
// common palette formats.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
