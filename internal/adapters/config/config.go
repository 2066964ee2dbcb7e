package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	configDirName  = ".ssweep"
	configFileName = "config.toml"

	sessionsDirKey     = "sessions.dir"
	intervalMinutesKey = "sweep.interval_minutes"
	excludeKey         = "sweep.exclude"
	logsDirKey         = "logs.dir"

	configFileMode = 0o600
	configDirMode  = 0o700

	tempFilePattern = ".config-*.toml.tmp"

	defaultIntervalMinutes = 5
)

// Config carries the resolved settings for the sweeper. CLI flags
// override these values; the file only supplies defaults.
type Config struct {
	SessionsDir     string
	IntervalMinutes int
	Exclude         []string
	LogsDir         string
}

// Load reads ~/.ssweep/config.toml through viper, falling back to
// defaults when the file does not exist.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(sessionsDirKey, "")
	cfg.SetDefault(intervalMinutesKey, defaultIntervalMinutes)
	cfg.SetDefault(excludeKey, []string{})
	cfg.SetDefault(logsDirKey, filepath.Join(homeDir, configDirName, "logs"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		SessionsDir:     cfg.GetString(sessionsDirKey),
		IntervalMinutes: cfg.GetInt(intervalMinutesKey),
		Exclude:         cfg.GetStringSlice(excludeKey),
		LogsDir:         cfg.GetString(logsDirKey),
	}
	if loaded.IntervalMinutes <= 0 {
		loaded.IntervalMinutes = defaultIntervalMinutes
	}

	return loaded, nil
}

// DefaultPath is where `config init` writes the file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName, configFileName), nil
}

// Write persists cfg to path atomically via a temp file and rename.
func Write(path string, cfg Config) error {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}

type fileSchema struct {
	Sessions sessionsSchema `toml:"sessions"`
	Sweep    sweepSchema    `toml:"sweep"`
	Logs     logsSchema     `toml:"logs"`
}

type sessionsSchema struct {
	Dir string `toml:"dir"`
}

type sweepSchema struct {
	IntervalMinutes int      `toml:"interval_minutes"`
	Exclude         []string `toml:"exclude"`
}

type logsSchema struct {
	Dir string `toml:"dir"`
}

func toSchema(cfg Config) fileSchema {
	exclude := cfg.Exclude
	if exclude == nil {
		exclude = []string{}
	}

	return fileSchema{
		Sessions: sessionsSchema{Dir: cfg.SessionsDir},
		Sweep: sweepSchema{
			IntervalMinutes: cfg.IntervalMinutes,
			Exclude:         exclude,
		},
		Logs: logsSchema{Dir: cfg.LogsDir},
	}
}
