package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMoves sets the moves replayed before interactive play.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append(b.cfg.Moves, moves...)
	return b
}

// WithPerft requests a perft divide at the given depth.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	if workers > 0 {
		b.cfg.Workers = workers
	}
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithUnicode enables figurine piece symbols.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithLastMoves sets how many rounds the situation panel lists.
func (b *ConfigBuilder) WithLastMoves(n int) *ConfigBuilder {
	b.cfg.Output.LastMoves = n
	return b
}

// WithSVG sets the SVG snapshot file.
func (b *ConfigBuilder) WithSVG(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithLog sets the log writer and level.
func (b *ConfigBuilder) WithLog(w io.Writer, level string) *ConfigBuilder {
	b.cfg.Log.Writer = w
	b.cfg.Log.Level = level
	return b
}
