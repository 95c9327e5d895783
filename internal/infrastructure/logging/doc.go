// Package logging provides structured logging for Lexi Control.
//
// It wraps log/slog with configuration-driven level, format, and output
// selection, and stamps every record with the service name and version.
// Component loggers are derived with With:
//
//	eegLogger := logger.With("component", "eeg")
//	eegLogger.Warn("directory refresh failed", "error", err)
package logging
