package profile

import "errors"

var (
	// ErrInvalidInput indicates a rating outside the allowed domain.
	ErrInvalidInput = errors.New("invalid rating input")
	// ErrAssessmentComplete indicates a rating was submitted after every
	// catalog entry was already rated.
	ErrAssessmentComplete = errors.New("assessment already complete")
)
