package store

import "errors"

// ErrNotFound is returned when a delete or lookup targets a missing row.
var ErrNotFound = errors.New("record not found")
