package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"handsfree/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration directory and report suspicious values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config directory: %s\n", ctx.configDir())
			if len(ctx.applied) > 0 {
				fmt.Fprintf(out, "Overrides: %s\n", strings.Join(ctx.applied, ", "))
			}
			for _, warning := range cfg.Lint() {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc := cfg.Document()
			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "json":
				return writeJSON(out, doc)
			case "toml":
				// TOML integers are signed 64-bit.
				if uint64(doc.Base.PoolSize) > math.MaxInt64 {
					return fmt.Errorf("pool_size %d cannot be written as TOML; use --format json or yaml", doc.Base.PoolSize)
				}
				return toml.NewEncoder(out).Encode(doc)
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported format %q (want json, toml or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, toml or yaml")
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var dir string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write sample calibration and base configuration files",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(dir)
			if target == "" {
				target = "."
			}
			written, err := config.WriteSamples(target, overwrite)
			if err != nil {
				return fmt.Errorf("write sample configuration: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintf(out, "Wrote %s\n", path)
			}
			fmt.Fprintln(out, "Replace the sample calibrations with measured values before running handsfree.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Destination directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files if present")
	return cmd
}
