// Package logging builds the zap logger used across commands: readable
// console output, plus an optional dated JSON log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logFileMode is the permission mode for created log files.
const logFileMode = 0o644

// logDirMode is the permission mode for the created log directory.
const logDirMode = 0o755

// New returns a logger writing human-readable output to stderr. Verbose
// lowers the console level to debug. When logDir is non-empty, a JSON core
// additionally appends to a YYYY-MM-DD.log file inside it.
func New(verbose bool, logDir string) (*zap.Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleLevel := zapcore.InfoLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			consoleLevel,
		),
	}

	if logDir != "" {
		fileCore, err := newFileCore(logDir, encoderConfig)
		if err != nil {
			return nil, err
		}

		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func newFileCore(logDir string, encoderConfig zapcore.EncoderConfig) (zapcore.Core, error) {
	if err := os.MkdirAll(logDir, logDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := time.Now().Format(time.DateOnly) + ".log"
	path := filepath.Join(logDir, name)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	return core, nil
}
