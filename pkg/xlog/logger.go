package xlog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// skip [runtime.Callers, Logger.emit, the exported logging method]
const defaultCallerSkip = 3

// New creates a new Logger with handlers built from c.
func New(c Config) *Logger {
	h := c.BuildHandler()
	if h == nil {
		panic("nil Handler")
	}
	return &Logger{handler: h, callerSkip: defaultCallerSkip}
}

// Logger is a slog front end with printf style methods, a dynamic level
// and a configurable caller skip for the source attribute.
type Logger struct {
	handler    slog.Handler
	callerSkip int
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// Handler returns l's Handler.
func (l *Logger) Handler() slog.Handler { return l.handler }

// SetLevel changes the level of every leveled handler of l.
func (l *Logger) SetLevel(lvl slog.Level) {
	SetHandlerLevel(l.handler, lvl)
}

// AddCallerSkip returns a Logger that skips skip more frames when
// reporting the source of a record.
func (l *Logger) AddCallerSkip(skip int) *Logger {
	c := l.clone()
	c.callerSkip += skip
	return c
}

// With returns a Logger that includes the given attributes in each output.
// Arguments are converted to attributes as if by slog.Logger.Log.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	c := l.clone()
	c.handler = l.handler.WithAttrs(argsToAttrSlice(args))
	return c
}

// WithGroup returns a Logger that qualifies all later attributes with
// name. An empty name returns the receiver.
func (l *Logger) WithGroup(name string) *Logger {
	if name == "" {
		return l
	}
	c := l.clone()
	c.handler = l.handler.WithGroup(name)
	return c
}

// Enabled reports whether l emits records at level.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, level)
}

// Log emits a record at level with args converted as by slog.Logger.Log.
func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	l.emit(ctx, level, msg, func(r *slog.Record) { r.Add(args...) })
}

// LogAttrs is a more efficient version of Log that accepts only Attrs.
func (l *Logger) LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l.emit(ctx, level, msg, func(r *slog.Record) { r.AddAttrs(attrs...) })
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.emit(context.Background(), LevelDebug, msg, func(r *slog.Record) { r.Add(args...) })
}

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	l.emit(context.Background(), LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) {
	l.emit(context.Background(), LevelInfo, msg, func(r *slog.Record) { r.Add(args...) })
}

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(context.Background(), LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) {
	l.emit(context.Background(), LevelWarn, msg, func(r *slog.Record) { r.Add(args...) })
}

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(context.Background(), LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) {
	l.emit(context.Background(), LevelError, msg, func(r *slog.Record) { r.Add(args...) })
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(context.Background(), LevelError, fmt.Sprintf(format, args...), nil)
}

// emit must be called directly by an exported logging method since the
// source frame is found at a fixed depth.
func (l *Logger) emit(ctx context.Context, level slog.Level, msg string, fill func(*slog.Record)) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(l.callerSkip, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if fill != nil {
		fill(&r)
	}
	_ = l.handler.Handle(ctx, r) //nolint:errcheck
}
