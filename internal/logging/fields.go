// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig  = "config"
	FieldSource  = "source"
	FieldDir     = "dir"
	FieldTimeout = "timeout"

	// Generation fields.
	FieldTarget  = "target"
	FieldOutputs = "outputs"
	FieldBytes   = "bytes"
	FieldGroups  = "groups"
	FieldRules   = "rules"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Listing fields.
	FieldCategory    = "category"
	FieldID          = "id"
	FieldDescription = "description"
	FieldFile        = "file"
	FieldColumn      = "column"
	FieldComment     = "comment"
)
