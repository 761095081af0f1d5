package main

import (
	"github.com/spf13/cobra"
)

const (
	flagConfigDir        = "config-dir"
	flagHPE              = "hpe"
	flagHeadDetection    = "head-detection"
	flagGestureDetection = "gesture-detection"
	flagPicam            = "picam"
	flagPoolSize         = "pool-size"
	flagLogLevel         = "log-level"
	flagLogFormat        = "log-format"
	flagLogFile          = "log-file"
	flagNoColor          = "no-color"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithEngine(idleEngine{})
}

func newRootCommandWithEngine(eng engine) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "handsfree",
		Short:         "Gesture driven device control",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	ctx := newCommandContext(rootCmd.PersistentFlags(), eng)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if shouldSkipConfig(cmd) {
			return nil
		}
		_, err := ctx.ensureConfig()
		return err
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(flagConfigDir, "c", ".", "Directory holding the calibration and base configuration files")
	flags.String(flagHPE, "", "Replace hpe_addr from config.json")
	flags.String(flagHeadDetection, "", "Replace head_detection_addr from config.json")
	flags.String(flagGestureDetection, "", "Replace gesture_detection_addr from config.json")
	flags.String(flagPicam, "", "Replace picam_addr from config.json")
	flags.Uint(flagPoolSize, 0, "Replace pool_size from config.json")
	flags.String(flagLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.String(flagLogFormat, "console", "Log format (console, json)")
	flags.StringSlice(flagLogFile, nil, "Also write logs to this file (repeatable)")
	flags.Bool(flagNoColor, false, "Disable coloured console logs")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDevicesCommand(ctx))
	rootCmd.AddCommand(newLocateCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}

// shouldSkipConfig reports whether cmd runs without a loaded configuration:
// the bare root and cobra's help and completion commands only print text.
func shouldSkipConfig(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
