package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Output formats of the standard writer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewConfig returns the default logging config: info level, text output on
// os.Stderr and no log file.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    false,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		StdFormat:    FormatText,
		StdWriter:    os.Stderr,
		Path:         "",
		MaxSize:      30,
		MaxAge:       0,
		MaxBackups:   0,
		Compress:     false,
	}
}

// Config configures the handlers built for a Logger.
type Config struct {
	// Level is the minimum level to emit, LevelInfo by default.
	Level slog.Level
	// AddSource adds the file and line of the log call.
	AddSource bool
	// AttrReplacer rewrites attributes before they are written.
	AttrReplacer AttrReplacer

	// StdFormat is the format of StdWriter, oneof ["text", "json"].
	StdFormat string
	// StdWriter receives console output, os.Stderr by default.
	StdWriter io.Writer

	// Path is the log file path. No file is written when empty.
	// The file is always written as JSON lines.
	Path string
	// MaxSize is the size in megabytes at which the log file is rotated.
	MaxSize int
	// MaxAge is the number of days to keep rotated files, 0 keeps all.
	MaxAge int
	// MaxBackups is the number of rotated files to keep, 0 keeps all.
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

// BuildHandler creates a new slog.Handler with config.
func (c *Config) BuildHandler() slog.Handler {
	opts := c.buildHandlerOptions()
	stdWriter := c.StdWriter
	if stdWriter == nil {
		stdWriter = io.Discard
	}

	if c.StdFormat == FormatJSON {
		writer := stdWriter
		if fw := c.buildFileWriter(); fw != nil {
			writer = io.MultiWriter(stdWriter, fw)
		}
		return NewLeveledHandlerCreator(JSONHandlerCreator)(writer, opts)
	}

	handlers := []slog.Handler{
		NewLeveledHandlerCreator(TextHandlerCreator)(stdWriter, opts),
	}
	if fw := c.buildFileWriter(); fw != nil {
		handlers = append(handlers, NewLeveledHandlerCreator(JSONHandlerCreator)(fw, opts))
	}
	return MultiHandler(handlers...)
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

func (c *Config) buildHandlerOptions() *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     c.Level,
	}
	if c.AttrReplacer != nil {
		opts.ReplaceAttr = c.AttrReplacer
	}
	return opts
}
