package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quantor/config"
	"quantor/logger"
)

// Version is reported in traces.
var Version = "dev"

// RootOptions holds global flags and the configuration they resolve to.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"
	Config     *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the Quantor CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "quantor",
		Short:        "Quantor - EOQ calculator",
		Long:         "Computes economic order quantities, classifies ordering behavior and serves the calculator page.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg
			return logger.Init(logger.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Tracing: cfg.Log.Tracing,
				Version: Version,
			}, os.Stderr, os.Stderr)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewThemeCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
