package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// unique constraint violated
	ErrConflict = errors.New("conflict")

	// row changed between read and conditional update
	ErrStaleVersion = errors.New("stale version")
)
