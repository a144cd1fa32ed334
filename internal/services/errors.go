package services

import "errors"

// ErrNotFound is returned by lookup and update paths when no row matches
// the given id.
var ErrNotFound = errors.New("not found")
