// Package logger builds configured log/slog loggers for applications
// embedding the SDK.
//
// Every SDK component accepts an injected *slog.Logger and defaults to
// slog.Default(); this package is the convenience factory hosts use to
// build one with a consistent format, level, and component tag:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("giftchain"),
//	)
package logger
