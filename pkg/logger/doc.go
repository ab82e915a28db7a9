// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration and helper attribute constructors.
//
// New builds a *slog.Logger from Option values:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select text or JSON output.
//   - WithLevel sets the minimum level; ParseLevel turns "debug" or "warn" into a slog.Level.
//   - WithOutput redirects output (stderr by default).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes pulled from
//     the context of each logging call.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it in a
// ContextHandler, which runs the registered ContextExtractor callbacks
// before delegating each record.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "scored", logger.Duration(time.Since(start)))
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
