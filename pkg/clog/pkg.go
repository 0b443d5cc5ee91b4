package clog

import (
	"io"
	"os"

	"github.com/apex/log"
)

// The process-wide logging sink. It is created once and never torn down.
var clogger = NewContextLogger(NewHandler(os.Stderr))

// Configure sets the output format and level of every logger in the process.
func Configure(format, level string, w io.Writer) error {
	handler, err := HandlerForFormat(format, w)
	if err != nil {
		return err
	}

	if level != "" {
		if err := clogger.SetLevelFromString(GlobalLoggerCtx, level); err != nil {
			return err
		}
	}

	clogger.SetHandler(handler)
	return nil
}

func AddLoggingContext(ctx string, handler log.Handler) {
	clogger.AddLoggingContext(ctx, handler)
}

func SetLevel(ctx string, level log.Level) {
	clogger.SetLevel(ctx, level)
}

func SetLevelFromString(ctx, s string) error {
	return clogger.SetLevelFromString(ctx, s)
}

func UsingCtx(ctx string) *log.Entry {
	return clogger.UsingCtx(ctx)
}

func Global() *log.Entry {
	return clogger.Global()
}
