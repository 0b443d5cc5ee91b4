package clog

import (
	"fmt"
	"io"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
)

// Logging contexts. Each component logs through its own context so its level can be
// changed independently of the rest of the process.
const (
	GlobalLoggerCtx = "global"
	ClientCtx       = "aelapi"
	ScannerCtx      = "romscan"
	StubCtx         = "aelstub"
)

type ContextLogger struct {
	GlobalLogger   *log.Logger
	ContextLoggers sync.Map
}

func NewContextLogger(handler log.Handler) *ContextLogger {
	return &ContextLogger{
		GlobalLogger: &log.Logger{
			Handler: handler,
			Level:   log.InfoLevel,
		},
	}
}

// HandlerForFormat returns the handler for one of the supported output formats: "text"
// (the default), "json" or "cli".
func HandlerForFormat(format string, w io.Writer) (log.Handler, error) {
	switch format {
	case "", "text":
		return NewHandler(w), nil
	case "json":
		return json.New(w), nil
	case "cli":
		return cli.New(w), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// AddLoggingContext gives ctx its own logger writing through handler. Contexts without
// one share the global logger.
func (l *ContextLogger) AddLoggingContext(ctx string, handler log.Handler) {
	logger := &log.Logger{
		Handler: handler,
		Level:   l.GlobalLogger.Level,
	}
	l.ContextLoggers.Store(ctx, logger)
}

func (l *ContextLogger) SetLevel(ctx string, level log.Level) {
	if ctx == GlobalLoggerCtx {
		l.GlobalLogger.Level = level
		return
	}

	if clogger := l.getContextLogger(ctx); clogger != nil {
		clogger.Level = level
	}
}

func (l *ContextLogger) SetLevelFromString(ctx, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.SetLevel(ctx, level)

	return nil
}

// SetHandler replaces the handler of the global logger and of every context logger.
func (l *ContextLogger) SetHandler(handler log.Handler) {
	l.GlobalLogger.Handler = handler
	l.ContextLoggers.Range(func(_, value any) bool {
		if clogger, ok := value.(*log.Logger); ok {
			clogger.Handler = handler
		}
		return true
	})
}

func (l *ContextLogger) UsingCtx(ctx string) *log.Entry {
	logger := l.getContextLogger(ctx)
	if logger == nil {
		return l.GlobalLogger.WithField("ctx", ctx)
	}
	return logger.WithField("ctx", ctx)
}

func (l *ContextLogger) Global() *log.Entry {
	return l.UsingCtx(GlobalLoggerCtx)
}

func (l *ContextLogger) getContextLogger(ctx string) *log.Logger {
	logger, ok := l.ContextLoggers.Load(ctx)
	if !ok {
		return nil
	}

	clogger, ok := logger.(*log.Logger)
	if !ok {
		return nil
	}

	return clogger
}
