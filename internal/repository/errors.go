package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete matches no document.
var ErrNotFound = errors.New("document not found")
