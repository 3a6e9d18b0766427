package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"
	FieldIndex = "index"

	// Configuration fields.
	FieldJobs         = "jobs"
	FieldKeepComments = "keep_comments"
	FieldConfig       = "config"

	// Corpus fields.
	FieldTokens    = "tokens"
	FieldLines     = "lines"
	FieldFunctions = "functions"
	FieldIncludes  = "includes"
	FieldSections  = "sections"

	// Run fields.
	FieldElapsed  = "elapsed"
	FieldExitCode = "exit_code"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
