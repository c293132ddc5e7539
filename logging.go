package decor

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Op identifies a component operation a decorator can intercept.
type Op string

const (
	OpRender  Op = "render"
	OpDispose Op = "dispose"
)

// Logger wraps Render and Dispose with start and completion log emission.
//
// Logs are written at a configurable level, only for the configured
// operations (both by default). A delegated call that fails gets its start
// log and propagates the error unchanged - no completion log is emitted.
type Logger struct {
	*Base
	log   *zap.Logger
	level zapcore.Level
	name  string
	ops   map[Op]bool
}

// WithLogging wraps a component with log emission around Render and Dispose.
// A nil logger disables output without changing delegation behavior.
func WithLogging(inner Component, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{
		Base:  NewBase(inner),
		log:   log,
		level: zapcore.InfoLevel,
		name:  fmt.Sprintf("%T", inner),
		ops:   map[Op]bool{OpRender: true, OpDispose: true},
	}
}

// Level sets the severity used for start and completion logs.
func (l *Logger) Level(lvl zapcore.Level) *Logger {
	l.level = lvl
	return l
}

// Named overrides the component name attached to every log entry.
// Defaults to the inner component's Go type.
func (l *Logger) Named(name string) *Logger {
	l.name = name
	return l
}

// Ops restricts logging to the given operations.
func (l *Logger) Ops(ops ...Op) *Logger {
	l.ops = make(map[Op]bool, len(ops))
	for _, op := range ops {
		l.ops[op] = true
	}
	return l
}

// Render logs around the delegated render when OpRender is configured.
func (l *Logger) Render(ctx context.Context, w io.Writer) error {
	if !l.ops[OpRender] {
		return l.Base.Render(ctx, w)
	}

	l.log.Log(l.level, "render starting", zap.String("component", l.name))
	start := time.Now()
	if err := l.Base.Render(ctx, w); err != nil {
		return err
	}
	l.log.Log(l.level, "render complete",
		zap.String("component", l.name),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Dispose logs around the delegated disposal when OpDispose is configured.
func (l *Logger) Dispose(ctx context.Context) error {
	if !l.ops[OpDispose] {
		return l.Base.Dispose(ctx)
	}

	l.log.Log(l.level, "dispose starting", zap.String("component", l.name))
	if err := l.Base.Dispose(ctx); err != nil {
		return err
	}
	l.log.Log(l.level, "dispose complete", zap.String("component", l.name))
	return nil
}
