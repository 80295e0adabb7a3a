package mcp

import (
	"errors"
	"fmt"

	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
	"github.com/rpalmer/grit/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, profile.ErrInvalidInput), errors.Is(err, challenge.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check parameter domains"}
	case errors.Is(err, profile.ErrAssessmentComplete):
		return &APIError{Code: "ASSESSMENT_COMPLETE", Message: "every catalog activity is already rated", RecoveryHint: "Call get_resistance_profile"}
	case errors.Is(err, challenge.ErrProfileIncomplete):
		return &APIError{Code: "PROFILE_INCOMPLETE", Message: "finish the resistance assessment first", RecoveryHint: "Call submit_rating until complete"}
	case errors.Is(err, challenge.ErrChallengeNotFound):
		return &APIError{Code: "CHALLENGE_NOT_FOUND", Message: "no such challenge in today's list", RecoveryHint: "Call get_challenge_history for valid ids"}
	case errors.Is(err, repository.ErrStorageUnavailable):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "state could not be saved", RecoveryHint: "Retry; recent change is unsaved"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
