package boutique

import "errors"

// Error kinds recovered at the store and resolver boundary. Operations wrap
// them with context, callers test with errors.Is.
var (
	// ErrNotFound reports an unknown identifier or natural key.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous reports a natural key matching more than one row.
	ErrAmbiguous = errors.New("ambiguous match")

	// ErrInvalid reports rejected input: a missing required field, a
	// malformed date, a negative price, a duplicate natural key.
	ErrInvalid = errors.New("invalid input")

	// ErrBadFormat reports an unreadable backing file. The store recovers
	// by substituting an empty, correctly shaped table.
	ErrBadFormat = errors.New("unreadable table file")

	// ErrBadSchema reports a backing file whose columns do not match the
	// expected schema. Recovery is the same as for ErrBadFormat.
	ErrBadSchema = errors.New("unexpected table columns")
)
