package attendance

import "errors"

// Domain errors surfaced to the transport layer. The boundary maps these to
// status codes with errors.Is; anything else is an internal failure.
var (
	ErrInvalidInput    = errors.New("missing required fields")
	ErrDuplicateRollNo = errors.New("user with this roll number already exists")
	ErrUserNotFound    = errors.New("user not found")
)
