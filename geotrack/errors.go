package geotrack

import "errors"

var (
	// ErrInvalidReductionTarget is returned for reduction targets that are
	// negative or not a number.
	ErrInvalidReductionTarget = errors.New("invalid reduction target")

	ErrIndexOutOfRange = errors.New("point index out of range")
)
