// Package logger builds configured slog.Logger instances for the binding
// layer and its host applications.
//
// New applies functional options over production-safe defaults (JSON
// format, info level, stdout) and wraps the handler with a decorator that
// injects request-scoped attributes extracted from context at log time.
//
//	log := logger.New(
//	    logger.WithDevelopment("forms"),
//	    logger.WithAttr(slog.String("version", version)),
//	)
//
//	log.Debug("validation failed", logger.Field("email"), logger.Error(err))
//
// The attribute helpers (Error, Field, Rule, Duration, Component) keep
// log keys consistent across the codebase.
package logger
