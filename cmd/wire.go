package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mvbarbosa/session-sweep/internal/adapters/config"
	"github.com/mvbarbosa/session-sweep/internal/adapters/fsstore"
	"github.com/mvbarbosa/session-sweep/internal/adapters/logging"
	reportadapter "github.com/mvbarbosa/session-sweep/internal/adapters/render/report"
	"github.com/mvbarbosa/session-sweep/internal/application"
	"github.com/mvbarbosa/session-sweep/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	newStore       func(dir string, extraExclusions []string) (ports.SessionStore, error)
	newLogger      func(console io.Writer) (*slog.Logger, func() error)
	reportRenderer func(application.Report) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	return &app{
		cfg: cfg,
		newStore: func(dir string, extraExclusions []string) (ports.SessionStore, error) {
			return fsstore.NewStore(dir, extraExclusions)
		},
		newLogger: func(console io.Writer) (*slog.Logger, func() error) {
			return logging.New(cfg.LogsDir, console, time.Now())
		},
		reportRenderer: reportadapter.Render,
	}, nil
}
