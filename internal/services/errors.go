package services

import "errors"

var (
	// ErrUnknownCrop marks a crop identifier absent from the reference
	// catalog. It is the only hard failure of the advisory core; callers
	// surface it as "prediction unavailable".
	ErrUnknownCrop = errors.New("unknown crop")

	// ErrInvalidInput marks request validation failures rejected before any
	// computation starts.
	ErrInvalidInput = errors.New("invalid input")
)
