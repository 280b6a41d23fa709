package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across schemagen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent   = "component"
	FieldTransformer = "transformer"
	FieldWriter      = "writer"

	// Definitions
	FieldNamespace = "namespace"
	FieldRecord    = "record"
	FieldEnum      = "enum"
	FieldField     = "field"
	FieldType      = "type"

	// Output
	FieldUnit   = "unit"
	FieldPath   = "path"
	FieldImport = "import"

	// Input
	FieldFile    = "file"
	FieldFormat  = "format"
	FieldVersion = "version"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("generate.watch"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	if Logger == nil {
		return zap.NewNop().Sugar().Named(name)
	}
	return Logger.Named(name)
}
