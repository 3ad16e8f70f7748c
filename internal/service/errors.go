package service

// Error taxonomy shared by the user and post services. Handlers classify
// failures with errors.As against these types; nothing matches on message
// text. Absence of the entity a call targets is not an error at all: reads
// return a nil result and deletes return false.

// ValidationError reports a field-level constraint violation (length,
// format, required field).
type ValidationError struct {
	Field   string // Offending field name as it appears on the wire
	Message string // Human-readable description of the violation
}

// Error returns the validation message
func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation on username or email.
type ConflictError struct {
	Field string // Field whose value is already taken
}

// Error returns the conflict message
func (e *ConflictError) Error() string { return e.Field + " already exists" }

// NotFoundError reports a missing referenced entity on a write path,
// i.e. a post pointing at a user that does not exist.
type NotFoundError struct {
	Message string // Which reference was missing
}

// Error returns the not-found message
func (e *NotFoundError) Error() string { return e.Message }
