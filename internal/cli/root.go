// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/logging"
	"github.com/jmylchreest/swatch/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
	envFile string
}

// logger returns an hclog logger writing to the command's stderr.
func (o *globalOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logging.New(logging.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: o.verbose,
		Quiet:   o.quiet,
	})
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Extract colour palettes from images",
		Long: `Swatch extracts the dominant colours of an image and describes them.

Each colour is reported as hex, RGB and HSL with a coarse name and its share
of the image. Swatch can also derive brightness variations and colour
harmonies, and export palettes as CSS, SCSS, JSON, Adobe Swatch Exchange,
a PNG swatch strip, or a tar.xz bundle of all of them.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.LoadEnvFile(opts.envFile)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load settings from this .env file (default: ./.env if present)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newHarmonyCmd(opts))
	rootCmd.AddCommand(newVariationsCmd(opts))
	rootCmd.AddCommand(newSampleCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
