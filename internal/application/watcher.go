package application

import (
	"context"
	"log/slog"
	"time"
)

// Watcher runs periodic sweeps until its context is cancelled. Sweep
// failures are logged and the loop keeps going; a directory that is
// missing now may reappear before the next tick.
type Watcher struct {
	service  *SweepService
	interval time.Duration
	logger   *slog.Logger
	onReport func(Report)
}

func NewWatcher(service *SweepService, interval time.Duration, logger *slog.Logger, onReport func(Report)) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if onReport == nil {
		onReport = func(Report) {}
	}

	return &Watcher{
		service:  service,
		interval: interval,
		logger:   logger,
		onReport: onReport,
	}
}

// Run performs an immediate sweep, then one per interval. It returns nil
// when the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("starting periodic sweep", "interval", w.interval)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping periodic sweep")
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	report, err := w.service.Sweep(ctx, false)
	if err != nil {
		w.logger.Error("sweep failed", "error", err)
		return
	}

	w.onReport(report)
}
