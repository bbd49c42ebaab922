// Package logging provides a minimal logging facade for the GSL binding.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or
// integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/ctfree/gogsl/pkg/gsl/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Status Codes
//
// The Status helper attaches the GSL status code carried by an error to a
// log record:
//
//	_, _, err := integration.QAGS(f, 0, 1, 1e-10, 1e-10, ws)
//	if err != nil {
//	    logger.Warn(ctx, "integration failed", logging.Status(err))
//	    // Logs: gsl.code=18 gsl.status="roundoff error"
//	}
//
// Errors that carry no GSL code, including gsl.ErrNotBuilt, report Failure.
package logging
