package mcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
	"github.com/rpalmer/grit/internal/mcp"
	"github.com/rpalmer/grit/internal/repository"
)

func TestMapError_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{profile.ErrInvalidInput, "INVALID_INPUT"},
		{challenge.ErrInvalidInput, "INVALID_INPUT"},
		{profile.ErrAssessmentComplete, "ASSESSMENT_COMPLETE"},
		{challenge.ErrProfileIncomplete, "PROFILE_INCOMPLETE"},
		{challenge.ErrChallengeNotFound, "CHALLENGE_NOT_FOUND"},
		{repository.ErrStorageUnavailable, "STORAGE_UNAVAILABLE"},
	}

	for _, tc := range cases {
		apiErr := mcp.MapError(tc.err)
		require.NotNil(t, apiErr, tc.err.Error())
		require.Equal(t, tc.code, apiErr.Code)
	}
}

func TestMapError_WrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("saving history: %w",
		fmt.Errorf("%w: disk full", repository.ErrStorageUnavailable))
	apiErr := mcp.MapError(wrapped)
	require.NotNil(t, apiErr)
	require.Equal(t, "STORAGE_UNAVAILABLE", apiErr.Code)
}

func TestMapError_Passthrough(t *testing.T) {
	require.Nil(t, mcp.MapError(nil))
	require.Nil(t, mcp.MapError(errors.New("unmapped")))
}
