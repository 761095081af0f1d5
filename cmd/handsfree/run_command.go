package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"handsfree/internal/config"
	"handsfree/internal/logging"
	"handsfree/internal/preflight"
)

func defaultLockPath() string {
	return filepath.Join(os.TempDir(), "handsfree.lock")
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var lockPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load the configuration and start the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another handsfree instance is already running (lock %s)", lockPath)
			}
			defer func() { _ = lock.Unlock() }()

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			runCtx := logging.WithRunID(signalCtx, uuid.NewString())
			logger = logging.WithContext(runCtx, logger)

			startupLogger := logging.NewComponentLogger(logger, "startup")
			logStartup(startupLogger, ctx.configDir(), cfg, ctx.applied)
			for _, r := range preflight.Failed(preflight.RunAll(runCtx, ctx.configDir(), cfg)) {
				startupLogger.Warn("service not reachable",
					logging.String("check", r.Name),
					logging.String("detail", r.Detail),
				)
			}

			if err := ctx.engine.Run(runCtx, cfg, logging.NewComponentLogger(logger, "engine")); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("engine stopped", logging.Error(err))
				return fmt.Errorf("engine: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&lockPath, "lock-file", defaultLockPath(), "Single-instance lock file")
	return cmd
}

func logStartup(logger *slog.Logger, dir string, cfg *config.Config, applied []string) {
	attrs := []logging.Attr{
		logging.String(logging.FieldConfigDir, dir),
		logging.Int("devices", len(cfg.Base.Devices)),
		logging.String("hpe_addr", cfg.Base.HPEAddr),
		logging.String("head_detection_addr", cfg.Base.HeadDetectionAddr),
		logging.String("gesture_detection_addr", cfg.Base.GestureDetectionAddr),
		logging.String("picam_addr", cfg.Base.PicamAddr),
		logging.Uint64("pool_size", uint64(cfg.Base.PoolSize)),
	}
	if len(applied) > 0 {
		attrs = append(attrs, logging.String("overrides", strings.Join(applied, ",")))
	}
	logger.Info("configuration loaded", logging.Args(attrs...)...)

	for n := 1; n <= 2; n++ {
		cal, _ := cfg.Camera(n)
		fx, fy := cal.FocalLengths()
		logger.Debug("camera calibration",
			logging.Int(logging.FieldCamera, n),
			logging.Vector("position", cal.Pos),
			logging.String("image", fmt.Sprintf("%dx%d", cal.ImgWidth, cal.ImgHeight)),
			logging.Float64("fx", fx),
			logging.Float64("fy", fy),
		)
	}

	for _, warning := range cfg.Lint() {
		logger.Warn("configuration warning", logging.String("detail", warning))
	}
}
