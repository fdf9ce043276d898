// Package logging provides structured logging for paddyterm.
//
// This package wraps a zap logger with package-level convenience functions,
// plus helpers for the events the interface produces: keystrokes, focus
// changes, bus commands, resizes and frame flushes.
//
// # Log Levels
//
//   - Debug: keystrokes, focus changes, frame flushes, fixture loads
//   - Info: commands dispatched, resizes applied
//   - Warn: commands that failed, resizes that were rejected
//   - Error: unrecoverable failures
//
// # Configuration
//
// Logging is silent unless a level is set, either through Initialize or the
// PADDYTERM_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize("debug", "/tmp/paddyterm.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interface owns the terminal while it runs, so log output should go to a
// file (PADDYTERM_LOG_FILE or the path argument) rather than stderr.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
