// Package commands implements CLI command handlers for gardener.
package commands

import (
	"go.uber.org/zap"

	"github.com/Sumatoshi-tech/gardener/internal/config"
	"github.com/Sumatoshi-tech/gardener/internal/logging"
)

// Options carries root-level settings shared by every command.
type Options struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	LogDir     string
}

// Load reads the effective configuration.
func (o *Options) Load() (*config.Config, error) {
	return config.LoadConfig(o.ConfigPath)
}

// Logger builds the logger the command should use. Quiet suppresses all
// console output; a configured log directory still receives the JSON log.
func (o *Options) Logger() (*zap.Logger, error) {
	if o.Quiet && o.LogDir == "" {
		return zap.NewNop(), nil
	}

	if o.Quiet {
		return logging.New(false, o.LogDir)
	}

	return logging.New(o.Verbose, o.LogDir)
}

// progressSink adapts fire-and-forget progress strings onto the logger.
func progressSink(logger *zap.Logger) func(msg string) {
	return func(msg string) {
		logger.Info(msg)
	}
}
