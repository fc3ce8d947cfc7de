package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
)

const previewWidth = 8

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// previewEnabled resolves the --preview flag, defaulting to whether stdout
// is a terminal.
func previewEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("preview") {
		preview, _ := cmd.Flags().GetBool("preview")
		return preview
	}
	return isTerminal(cmd.OutOrStdout())
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty. Binary data is never written to a terminal.
func writeOutput(cmd *cobra.Command, path string, data []byte, binary bool) error {
	if path == "" {
		if binary && isTerminal(cmd.OutOrStdout()) {
			return fmt.Errorf("refusing to write binary output to a terminal, use --output")
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- palettes are not secret
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// paletteTable renders the palette as an aligned table.
func paletteTable(p colour.Palette, preview bool) string {
	if p.Len() == 0 {
		return p.String() + "\n"
	}

	headers := []string{"#", "Hex", "RGB", "HSL", "Name", "Share"}
	if preview {
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	table.AlignRight(0)
	table.AlignRight(5)
	for i, s := range p.All() {
		row := []string{
			strconv.Itoa(i + 1),
			s.Hex,
			s.RGB.String(),
			s.HSL.String(),
			string(s.Name),
			s.Percentage.String() + "%",
		}
		if preview {
			row = append(row, colour.ColourPreview(s.RGB, previewWidth))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// hexList renders one colour per line, optionally with a preview block.
func hexList(p colour.Palette, preview bool) string {
	var sb strings.Builder
	for _, s := range p.All() {
		if preview {
			sb.WriteString(colour.FormatColourWithPreview(s.RGB, previewWidth))
		} else {
			sb.WriteString(s.Hex)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rgbList renders one rgb() value per line, optionally with a preview block.
func rgbList(p colour.Palette, preview bool) string {
	var sb strings.Builder
	for _, s := range p.All() {
		if preview {
			sb.WriteString(colour.ColourPreview(s.RGB, previewWidth) + "  ")
		}
		sb.WriteString(s.RGB.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// variationsSection renders brightness variations of base.
func variationsSection(base colour.RGB, variations []colour.Variation, preview bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Variations of %s:\n", base.Hex())
	for _, v := range variations {
		if preview {
			rgb, err := colour.ParseHex(v.Hex)
			if err == nil {
				fmt.Fprintf(&sb, "  %s\n", colour.FormatColourWithLabel(rgb, v.Label, previewWidth))
				continue
			}
		}
		fmt.Fprintf(&sb, "  %-6s %s\n", v.Label, v.Hex)
	}
	return sb.String()
}

// harmoniesSection renders the four harmony groups of ref.
func harmoniesSection(ref colour.RGB, set colour.HarmonySet, preview bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Harmonies of %s:\n", ref.Hex())
	for _, kind := range colour.HarmonyKinds() {
		fmt.Fprintf(&sb, "  %-20s", string(kind)+":")
		for _, hex := range set[kind] {
			if preview {
				if rgb, err := colour.ParseHex(hex); err == nil {
					sb.WriteString(" " + colour.ColourPreviewWithText(rgb, hex, 9))
					continue
				}
			}
			sb.WriteString(" " + hex)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
