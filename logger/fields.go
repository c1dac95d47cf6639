package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across wrapgen.
// Use these constants instead of raw strings.
const (
	// Generation inputs
	FieldModule   = "module"
	FieldFunction = "function"
	FieldParam    = "param"
	FieldReason   = "reason"

	// Files and paths
	FieldDir  = "dir"
	FieldFile = "file"
	FieldPath = "path"
	FieldLine = "line"

	// Counts
	FieldCount     = "count"
	FieldModules   = "modules"
	FieldFunctions = "functions"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors and status
	FieldError  = "error"
	FieldStatus = "status"

	// Commands
	FieldCommand = "command"
	FieldEvent   = "event"
	FieldRun     = "run"
)

// ComponentLogger returns a named logger for a specific component.
//
//	w := &Watcher{logger: logger.ComponentLogger("watch")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	modLogger := logger.ChildLogger(base, logger.FieldModule, "token_api")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
