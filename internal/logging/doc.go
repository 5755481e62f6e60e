// Package logging provides structured logging for multibox.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the program: level helpers plus a few
// domain-specific functions for tab switches, control lifecycle, style
// changes and directory listings.
//
// # Log Levels
//
//   - Debug: Control creation/destruction, font allocation, style changes
//   - Info: Tab switches, directory listings, startup and shutdown
//   - Warn: Invalid folder paths, clipboard failures
//   - Error: Fatal issues (program startup failures)
//
// # Configuration
//
// Logging is silent unless a level is requested with --log-level or the
// MULTIBOX_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level, "/tmp/multibox.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Output
//
// The UI owns the terminal, so log entries are written to a file in console
// format:
//
//	2026-10-16T10:30:45.123+0200  INFO  Tab activated  {"from": "Hello World", "to": "Clock"}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
