package llm

import (
	"context"
	"encoding/json"

	apperrors "thematic-analysis-backend/internal/errors"
)

//go:generate mockgen -source=client.go -destination=../mocks/llm_mocks.go -package=mocks

// ServiceType selects the prompt and the expected output shape of a generation call
type ServiceType string

const (
	ServiceThemeGeneration  ServiceType = "theme_generation"
	ServiceReportGeneration ServiceType = "report_generation"
)

// Client invokes the external generation service.
// Implementations are rate limited internally and return the structured JSON object the model produced.
type Client interface {
	Invoke(ctx context.Context, service ServiceType, input map[string]interface{}) (json.RawMessage, error)
}

// Unavailable returns a Client that fails every call with a GenerationError wrapping cause.
// It stands in for the HTTP client when no credentials are configured outside production.
func Unavailable(cause error) Client {
	return unavailableClient{cause: cause}
}

type unavailableClient struct {
	cause error
}

func (c unavailableClient) Invoke(_ context.Context, service ServiceType, _ map[string]interface{}) (json.RawMessage, error) {
	return nil, apperrors.NewGenerationError(string(service), "generation service is not configured", c.cause)
}
