package api

import "github.com/phrazzld/tweetgen/internal/generation"

// GenerateRequest defines the payload for POST /api/generate.
type GenerateRequest struct {
	// APIKey is the user's credential for the model service. It may be empty
	// when the server is configured with a default credential.
	APIKey string `json:"api_key"`

	// Examples are the example posts that steer the generated ones.
	Examples []string `json:"examples" validate:"required,min=1,max=100"`

	// Model optionally overrides the configured model.
	Model string `json:"model,omitempty" validate:"omitempty,max=100"`
}

// GenerateResponse defines the successful response for POST /api/generate.
type GenerateResponse struct {
	RequestID string   `json:"request_id"`
	Model     string   `json:"model"`
	Tweets    []string `json:"tweets"`

	// Message is set when no posts could be extracted from the answer.
	Message string `json:"message,omitempty"`
}

func resultToResponse(result *generation.Result) GenerateResponse {
	resp := GenerateResponse{
		RequestID: result.RequestID.String(),
		Model:     result.Model,
		Tweets:    result.Items,
	}
	if resp.Tweets == nil {
		resp.Tweets = []string{}
	}
	if result.Empty() {
		resp.Message = generation.EmptyResultMessage
	}
	return resp
}
