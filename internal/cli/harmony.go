package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

func newHarmonyCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "harmony <#hex>",
		Short: "Show the colour harmonies of a colour",
		Long: `Show the complementary, triadic, analogous and split complementary
colours of a colour. Hues are rotated while saturation and lightness are kept.

Examples:
  swatch harmony '#3366cc'
  swatch harmony --json ff8800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}

			set := colour.Harmonies(colour.RGBToHSL(rgb))
			global.logger(cmd).Debug("harmonies derived", "colour", rgb.Hex(), "hsl", rgb.HSL().String())

			if asJSON {
				return writeJSON(cmd, set)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), harmoniesSection(rgb, set, previewEnabled(cmd)))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().Bool("preview", false, "show colour previews (default: when writing to a terminal)")
	return cmd
}

func newVariationsCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variations <#hex>",
		Short: "Show brightness variations of a colour",
		Long: `Show nine brightness variations of a colour, from 10% to 190% of each
channel. Channels are capped at 255.

Examples:
  swatch variations '#646464'
  swatch variations --json 3366cc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}

			variations := colour.Variations(rgb)
			global.logger(cmd).Debug("variations derived", "colour", rgb.Hex(), "count", len(variations))

			if asJSON {
				return writeJSON(cmd, variations)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), variationsSection(rgb, variations, previewEnabled(cmd)))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().Bool("preview", false, "show colour previews (default: when writing to a terminal)")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
