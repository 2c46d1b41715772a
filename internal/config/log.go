package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Writer io.Writer
	Level  string
}

// NewLogConfig creates a LogConfig that writes warnings and above to stderr.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Writer: os.Stderr,
		Level:  zerolog.LevelWarnValue,
	}
}

// Validate checks that the level name is known.
func (l *LogConfig) Validate() error {
	if l.Writer == nil {
		return fmt.Errorf("no log writer: %w", errors.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// Logger builds the logger described by the configuration. An unknown level
// falls back to warn.
func (l *LogConfig) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.WarnLevel
	}
	w := l.Writer
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
