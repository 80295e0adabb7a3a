package challenge

import "errors"

var (
	// ErrProfileIncomplete indicates generation was requested before the
	// assessment finished.
	ErrProfileIncomplete = errors.New("resistance profile incomplete")
	// ErrChallengeNotFound indicates a completion toggle referenced an
	// unknown challenge id.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrInvalidInput indicates invalid generation parameters.
	ErrInvalidInput = errors.New("invalid challenge input")
)
