package logging

import (
	"context"
	"log/slog"

	"github.com/ctfree/gogsl/pkg/gsl"
)

// Logger defines the subset of slog functionality used by the GSL binding.
// The interface is intentionally small so applications can provide their own
// implementation for testing or integration with existing logging systems.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Status returns a group attribute carrying the GSL status code of err and
// its gsl_strerror text. Errors that do not carry a code, including
// gsl.ErrNotBuilt, map to Failure.
func Status(err error) slog.Attr {
	c := gsl.CodeOf(err)
	return slog.Group("gsl",
		slog.Int("code", int(c)),
		slog.String("status", c.String()),
	)
}
