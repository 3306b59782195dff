// Package logger builds context-aware *slog.Logger instances from functional
// options.
//
// New chooses a text or JSON slog handler, applies static attributes and
// wraps the result in LogHandlerDecorator, which runs every registered
// ContextExtractor on each record. Extractors are how request-scoped values
// such as the request id reach log lines without being passed around.
//
// ParseLevel and ParseFormat turn configuration strings into options:
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	format, err := logger.ParseFormat(cfg.LogFormat)
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithFormat(format),
//	    logger.WithAttr(logger.Component("shell")),
//	)
//
// The attribute helpers in attr.go (Error, Numeral, Value, RequestID, ...)
// keep key names consistent across packages.
package logger
