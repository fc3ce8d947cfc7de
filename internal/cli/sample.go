package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/image"
)

func newSampleCmd(global *globalOptions) *cobra.Command {
	var (
		output string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "sample <" + strings.Join(image.SampleNames(), "|") + ">",
		Short: "Render a sample gradient image",
		Long: `Render one of the built-in 400x300 sample images as PNG. Each is a
diagonal gradient sprinkled with faint white circles; the same seed always
produces the same image.

Examples:
  swatch sample sunset -o sunset.png
  swatch sample ocean --seed 7 -o ocean.png && swatch extract ocean.png`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: image.SampleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := image.Sample(args[0], seed)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("failed to encode PNG: %w", err)
			}
			if err := writeOutput(cmd, output, buf.Bytes(), true); err != nil {
				return err
			}

			if output != "" {
				global.logger(cmd).Info("sample written", "name", args[0], "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG file (default: stdout)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the circle overlay")
	return cmd
}
