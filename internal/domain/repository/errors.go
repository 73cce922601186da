package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row, as opposed to
// the store being unreachable or the query failing.
var ErrNotFound = errors.New("not found")
