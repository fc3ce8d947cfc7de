package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/plugin/executor"
	httputil "github.com/jmylchreest/swatch/internal/util/http"
	"github.com/jmylchreest/swatch/pkg/plugin"
)

// extractOptions holds the extract command flags that are not part of Config.
type extractOptions struct {
	*globalOptions

	output     string
	selected   int
	variations bool
	harmonies  bool
	bundle     string
	pluginPath string
	pluginArgs map[string]string
	thumbnail  bool
}

func newExtractCmd(global *globalOptions) *cobra.Command {
	opts := &extractOptions{globalOptions: global}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "extract <image|url>",
		Short: "Extract a colour palette from an image",
		Long: `Extract the dominant colours of an image.

Pixels are sampled evenly across the image, snapped to a coarse colour grid
and ranked by how often they occur. Each colour is reported with its hex,
RGB and HSL values, a name, and its share of the sampled pixels.

Supported image formats: JPEG, PNG, GIF, WebP. Images can be local files or
http(s) URLs.

Examples:
  # Show the 8 most common colours as a table
  swatch extract photo.jpg

  # Export 5 colours as CSS custom properties
  swatch extract -c 5 -f css -o palette.css photo.jpg

  # JSON including variations of the second colour and harmonies
  swatch extract -f json --select 1 --variations --harmonies photo.jpg

  # Render a PNG swatch strip with a thumbnail of the source
  swatch extract -f png --thumbnail -o palette.png photo.jpg

  # Write every export format into one archive
  swatch extract --bundle palette.tar.xz https://example.com/photo.jpg

  # Hand the palette to an external exporter plugin
  swatch extract --plugin ./swatch-gimp --plugin-arg name=Brand -o out/ photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntP("colours", "c", defaults.Colours, fmt.Sprintf("number of colours to extract (1-%d)", config.MaxColours))
	cmd.Flags().StringP("format", "f", defaults.Format, "output format ("+strings.Join(config.Formats(), ", ")+")")
	cmd.Flags().Duration("timeout", defaults.Timeout, "timeout for fetching remote images")
	cmd.Flags().Bool("allow-private-hosts", false, "allow fetching images from local or private network addresses")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory for plugin files (default: stdout)")
	cmd.Flags().IntVar(&opts.selected, "select", 0, "index of the colour to derive variations from")
	cmd.Flags().BoolVar(&opts.variations, "variations", false, "include brightness variations of the selected colour")
	cmd.Flags().BoolVar(&opts.harmonies, "harmonies", false, "include harmonies of the dominant colour")
	cmd.Flags().Bool("preview", false, "show colour previews (default: when writing to a terminal)")
	cmd.Flags().StringVar(&opts.bundle, "bundle", "", "also write every export format into this .tar.xz archive")
	cmd.Flags().StringVar(&opts.pluginPath, "plugin", "", "path to an external exporter plugin")
	cmd.Flags().StringToStringVar(&opts.pluginArgs, "plugin-arg", nil, "key=value argument passed to the plugin (repeatable)")
	cmd.Flags().BoolVar(&opts.thumbnail, "thumbnail", false, "draw the source image above PNG swatches")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, opts *extractOptions, source string) error {
	logger := opts.logger(cmd)
	ctx := cmd.Context()

	cfg, err := config.Resolve(config.Default(), cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := image.ValidateImagePath(source); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "source", source)
	loader := image.NewSmartLoader(
		image.WithFetchOptions(httputil.FetchOptions{
			Timeout:  cfg.Timeout,
			MaxBytes: cfg.MaxFetchBytes,
		}),
		image.WithPrivateHosts(cfg.AllowPrivate),
	)
	img, err := loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	buf := image.ToPixelBuffer(img)
	logger.Debug("image loaded", "width", buf.Width, "height", buf.Height, "stride", buf.Stride())

	palette := colour.Quantize(buf, cfg.Colours)
	if palette.Len() == 0 {
		logger.Warn("no colours found", "source", source)
	} else {
		logger.Debug("palette extracted", "colours", palette.Len(), "requested", cfg.Colours)
	}

	analysis, err := colour.Analyse(palette, opts.selected)
	if err != nil {
		return err
	}

	exportOpts := export.Options{Extracted: time.Now()}
	if opts.variations || opts.harmonies {
		exportOpts.Analysis = &analysis
	}
	if opts.thumbnail {
		exportOpts.Source = img
	}

	if opts.bundle != "" {
		if err := writeBundle(opts.bundle, palette, exportOpts); err != nil {
			return err
		}
		logger.Info("bundle written", "path", opts.bundle)
	}

	if opts.pluginPath != "" {
		data := executor.NewPaletteData(analysis, opts.selected)
		data.Extracted = exportOpts.Extracted
		data.Source = source
		data.PluginArgs = opts.pluginArgs
		return runPlugin(ctx, logger, opts.pluginPath, opts.output, data)
	}

	return writePalette(cmd, opts, cfg.Format, analysis, exportOpts)
}

// writePalette renders the palette in format and writes it to the output.
func writePalette(cmd *cobra.Command, opts *extractOptions, format string, analysis colour.Analysis, exportOpts export.Options) error {
	palette := analysis.Palette
	preview := opts.output == "" && previewEnabled(cmd)

	var text string
	switch format {
	case "table":
		text = paletteTable(palette, preview)
	case "hex":
		text = hexList(palette, preview)
	case "rgb":
		text = rgbList(palette, preview)
	default:
		f := export.Format(format)
		data, err := export.Encode(f, palette, exportOpts)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		if (opts.variations || opts.harmonies) && f != export.FormatJSON {
			opts.logger(cmd).Warn("variations and harmonies are only included in json, table, hex and rgb output", "format", format)
		}
		return writeOutput(cmd, opts.output, data, f.IsBinary())
	}

	if analysis.Variations != nil {
		if opts.variations {
			text += "\n" + variationsSection(analysis.Selected.RGB, analysis.Variations, preview)
		}
		if opts.harmonies {
			text += "\n" + harmoniesSection(palette.Colours[0].RGB, analysis.Harmonies, preview)
		}
	}

	return writeOutput(cmd, opts.output, []byte(text), false)
}

func writeBundle(path string, palette colour.Palette, opts export.Options) error {
	f, err := os.Create(path) // #nosec G304 -- bundle path is user-chosen
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	writeErr := export.WriteBundle(f, palette, opts)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write bundle: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close bundle: %w", closeErr)
	}
	return nil
}

func runPlugin(ctx context.Context, logger hclog.Logger, pluginPath, outDir string, data plugin.PaletteData) error {
	e, err := executor.New(ctx, pluginPath, executor.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to load plugin %s: %w", filepath.Base(pluginPath), err)
	}
	defer e.Close()

	files, err := e.Export(ctx, data)
	if err != nil {
		return fmt.Errorf("plugin %s failed: %w", e.Info().Name, err)
	}
	if len(files) == 0 {
		logger.Warn("plugin produced no files", "plugin", e.Info().Name)
		return nil
	}

	if outDir == "" {
		outDir = "."
	}
	written, err := executor.WriteFiles(outDir, files)
	for _, path := range written {
		logger.Info("file written", "plugin", e.Info().Name, "path", path)
	}
	return err
}
