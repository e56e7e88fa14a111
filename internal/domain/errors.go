package domain

import "errors"

// Error kinds kept distinct internally even where the wire protocol collapses
// them onto the same status code (401 covers both referential-integrity
// violations and rejected operations; 204 covers deletes that found nothing).
var (
	// ErrInvalidInput indicates malformed or missing request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotPermitted indicates a rejected operation: missing target account,
	// insufficient balance, or an account referencing a nonexistent user.
	ErrNotPermitted = errors.New("operation not permitted")
	// ErrNoEffect indicates a write statement that matched no rows.
	ErrNoEffect = errors.New("no rows affected")
)
