package cycle

import "errors"

// Domain-specific errors for the cycle package.
var (
	ErrAnchorNotFound = errors.New("cycle anchor not found for user")
)
