package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() GenerationRequest {
	return GenerationRequest{
		Credential: "gsk_test_credential_value",
		Model:      "llama3-8b-8192",
		Params: GenerationParams{
			Temperature: 1,
			MaxTokens:   1024,
			TopP:        1,
		},
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*GenerationRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*GenerationRequest) {}},
		{
			name:    "empty credential",
			mutate:  func(r *GenerationRequest) { r.Credential = "" },
			wantErr: ErrMissingCredential,
		},
		{
			name:    "whitespace credential",
			mutate:  func(r *GenerationRequest) { r.Credential = "   " },
			wantErr: ErrMissingCredential,
		},
		{
			name:    "missing model",
			mutate:  func(r *GenerationRequest) { r.Model = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "temperature out of range",
			mutate:  func(r *GenerationRequest) { r.Params.Temperature = 3 },
			wantErr: ErrValidation,
		},
		{
			name:    "zero max tokens",
			mutate:  func(r *GenerationRequest) { r.Params.MaxTokens = 0 },
			wantErr: ErrValidation,
		},
		{
			name:    "zero top p",
			mutate:  func(r *GenerationRequest) { r.Params.TopP = 0 },
			wantErr: ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestGenerationRequestNeverPrintsCredential(t *testing.T) {
	t.Parallel()

	req := validRequest()

	assert.NotContains(t, req.String(), req.Credential)
	assert.NotContains(t, fmt.Sprintf("%v", req), req.Credential)
	assert.NotContains(t, req.LogValue().String(), req.Credential)
	assert.Contains(t, req.String(), redactedCredential)
}

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("credential", "is required", ErrMissingCredential)
	assert.Equal(t, "credential is required", err.Error())
	assert.ErrorIs(t, err, ErrMissingCredential)

	bare := &ValidationError{Field: "model", Message: "is required"}
	assert.ErrorIs(t, bare, ErrValidation)
}
