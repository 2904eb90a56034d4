// Package logutil builds the zap loggers used by the radixsort tools.
package logutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	sorterrors "github.com/tamirms/radixsort/errors"
)

// LogConfig selects level, encoding and destination. With an empty Filename
// logs go to stderr; otherwise they go to a lumberjack-rotated file.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"maxSize"`
	MaxDays    int    `toml:"maxDays"`
	MaxBackups int    `toml:"maxBackups"`
}

// Validate checks Level and Format.
func (cfg *LogConfig) Validate() error {
	if _, err := parseLevel(cfg.Level); err != nil {
		return err
	}
	switch cfg.Format {
	case "", "console", "json":
		return nil
	}
	return fmt.Errorf("%w: %q", sorterrors.ErrInvalidLogFormat, cfg.Format)
}

func parseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	l, err := parseLevel(cfg.Level)
	if err != nil {
		l = zapcore.InfoLevel
	}
	return zap.NewAtomicLevelAt(l)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// New returns a logger for cfg, together with the atomic level so callers
// can change verbosity after construction.
func New(cfg LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	level := cfg.getLevel()
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), level)
	return zap.New(core, cfg.getOptions()...), level, nil
}
