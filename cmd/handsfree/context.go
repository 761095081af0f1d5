package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"handsfree/internal/config"
	"handsfree/internal/logging"
)

type commandContext struct {
	flags  *pflag.FlagSet
	engine engine

	configOnce sync.Once
	config     *config.Config
	applied    []string
	configErr  error
}

func newCommandContext(flags *pflag.FlagSet, eng engine) *commandContext {
	return &commandContext{flags: flags, engine: eng}
}

// ensureConfig loads the configuration directory once and applies any
// override flags the user set.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		overrides, err := overridesFromFlags(c.flags)
		if err != nil {
			c.configErr = err
			return
		}
		cfg, err := config.Open(c.configDir())
		if err != nil {
			c.configErr = err
			return
		}
		c.applied = cfg.ApplyOverrides(overrides)
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configDir() string {
	dir, err := c.flags.GetString(flagConfigDir)
	if err != nil {
		return "."
	}
	return strings.TrimSpace(dir)
}

// newLogger builds a logger that writes to w, plus any --log-file paths,
// using the log flags.
func (c *commandContext) newLogger(w io.Writer) (*slog.Logger, error) {
	level, _ := c.flags.GetString(flagLogLevel)
	format, _ := c.flags.GetString(flagLogFormat)
	files, _ := c.flags.GetStringSlice(flagLogFile)
	noColor, _ := c.flags.GetBool(flagNoColor)
	logger, err := logging.New(logging.Options{
		Level:       level,
		Format:      format,
		Writer:      w,
		OutputPaths: files,
		NoColor:     noColor,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// overridesFromFlags turns the override flags the user actually passed into
// config overrides. Flags left at their zero default are not overrides.
func overridesFromFlags(flags *pflag.FlagSet) (config.Overrides, error) {
	var o config.Overrides
	var err error
	if o.HPEAddr, err = changedString(flags, flagHPE); err != nil {
		return o, err
	}
	if o.HeadDetectionAddr, err = changedString(flags, flagHeadDetection); err != nil {
		return o, err
	}
	if o.GestureDetectionAddr, err = changedString(flags, flagGestureDetection); err != nil {
		return o, err
	}
	if o.PicamAddr, err = changedString(flags, flagPicam); err != nil {
		return o, err
	}
	if flags.Changed(flagPoolSize) {
		n, err := flags.GetUint(flagPoolSize)
		if err != nil {
			return o, fmt.Errorf("--%s: %w", flagPoolSize, err)
		}
		o.PoolSize = &n
	}
	return o, nil
}

func changedString(flags *pflag.FlagSet, name string) (*string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &value, nil
}
