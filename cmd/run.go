package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvbarbosa/session-sweep/internal/application"
	"github.com/mvbarbosa/session-sweep/internal/ports"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		dir             string
		intervalMinutes int
		once            bool
		dryRun          bool
		asJSON          bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Deduplicate session files, once or on a polling interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetDir := resolveTargetDir(dir, app.cfg.SessionsDir)

			store, err := app.newStore(targetDir, app.cfg.Exclude)
			if err != nil {
				return err
			}

			logger, closeLog := app.newLogger(cmd.ErrOrStderr())
			defer func() { _ = closeLog() }()

			service := application.NewSweepService(store, ports.SystemClock{}, logger)

			if once {
				var sweepReport application.Report
				err := runSweepSpinner(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context) error {
					var sweepErr error
					sweepReport, sweepErr = service.Sweep(ctx, dryRun)
					return sweepErr
				})
				if err != nil {
					return err
				}

				return writeReportOutput(cmd, app, sweepReport, asJSON)
			}

			interval := intervalMinutes
			if interval <= 0 {
				interval = app.cfg.IntervalMinutes
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watcher := application.NewWatcher(service, time.Duration(interval)*time.Minute, logger, func(sweepReport application.Report) {
				_ = writeReportOutput(cmd, app, sweepReport, asJSON)
			})

			return watcher.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory containing session files (default: config, then current directory)")
	cmd.Flags().IntVar(&intervalMinutes, "interval", 0, "Minutes between sweeps in loop mode (default: config, then 5)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single sweep and exit")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be removed without deleting anything")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the sweep report as JSON")

	return cmd
}

func resolveTargetDir(flagDir, configDir string) string {
	if flagDir != "" {
		return flagDir
	}
	if configDir != "" {
		return configDir
	}

	return "."
}

func writeReportOutput(cmd *cobra.Command, app *app, sweepReport application.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sweepReport)
	}

	rendered, err := app.reportRenderer(sweepReport)
	if err != nil {
		return fmt.Errorf("render sweep report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
