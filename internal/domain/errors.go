package domain

import "errors"

// Error kinds surfaced by the session store. Handlers map these onto HTTP
// status codes; any cause that is none of them is treated as a backend
// failure.
var (
	// ErrInvalidArgument marks a missing or malformed required field.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a lookup where no record matches the (id, userId)
	// pair. A record owned by someone else reports the same error.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable marks a failed call to the durable backend.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
