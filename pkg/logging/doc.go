// Package logging provides structured logging utilities for the progress bar service.
//
// # Overview
//
// This package wraps the standard library slog package with service defaults
// so the CLI, the HTTP server and the request pipeline all emit the same
// JSON records to stderr, tagged with the module name and build version.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("pbar", "v1.0.0")
//	    slog.Info("serving", "addr", "127.0.0.1:5005")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pbar", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is supplied:
//
//	LOG_LEVEL=debug pbar --template-file bar.svg
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "request served",
//	    "module": "pbar",
//	    "version": "v1.0.0",
//	    "addr": "10.0.0.7",
//	    "query": "/?progress=50",
//	    "outcome": "ok"
//	}
package logging
