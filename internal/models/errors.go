package models

import "errors"

// ErrNotFound is wrapped by services when a record id or code does not exist.
var ErrNotFound = errors.New("not found")
