package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module provides the service logger and routes fx lifecycle events through it at debug level.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(newEventLogger),
)

func newEventLogger(log *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: log.With(slog.String("component", "fx"))}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
