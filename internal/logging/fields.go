package logging

// Field names for structured log entries.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldEnv      = "env"
	FieldDir      = "dir"
	FieldWorkers  = "workers"
	FieldFiles    = "files"
	FieldDuration = "duration"
	FieldStyle    = "style"
	FieldVariable = "variable"
	FieldVersion  = "version"
)
