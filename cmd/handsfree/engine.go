package main

import (
	"context"
	"log/slog"

	"handsfree/internal/config"
	"handsfree/internal/logging"
)

// engine consumes the finished configuration. The detection and control
// pipelines live behind it.
type engine interface {
	Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error
}

// idleEngine builds the device index and waits for shutdown.
type idleEngine struct{}

func (idleEngine) Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	idx := cfg.Index()
	for _, d := range idx.Items() {
		logger.Debug("device indexed",
			logging.String(logging.FieldDevice, d.Name),
			logging.Vector("min", d.Min),
			logging.Vector("max", d.Max),
		)
	}
	logger.Info("device index ready",
		logging.Int("devices", idx.Len()),
		logging.Int("leaves", idx.Leaves()),
		logging.Int("depth", idx.Depth()),
	)
	logger.Info("waiting for shutdown signal")
	<-ctx.Done()
	return nil
}
