// Package gateway performs one round trip to an external vision/text model.
package gateway

import (
	"context"
	"fitlens-backend/domain"
	"fmt"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Sampling presets. Extraction tasks want determinism, generative tasks some
// variety.
const (
	ExtractionTemperature float32 = 0.3
	GenerativeTemperature float32 = 0.7

	FoodMaxTokens           = 2000
	BodyMaxTokens           = 2000
	RecommendationMaxTokens = 2000
	RecipeMaxTokens         = 1200
	ChatMaxTokens           = 500
)

type (
	Gateway interface {
		Complete(ctx context.Context, req Request) (string, error)
		Name() string
		Close() error
	}

	Message struct {
		Role    string
		Content string
	}

	Request struct {
		System  string
		History []Message
		Prompt  string
		// ImageURL is a base64 data URI attached next to Prompt.
		ImageURL    string
		Temperature float32
		MaxTokens   int
		// JSONMode asks the provider to emit a JSON object only.
		JSONMode bool
	}
)

// ProviderError reports that the upstream call itself failed.
type ProviderError struct {
	Provider  string
	Transient bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == domain.ErrProviderFailure }

func emptyResponse(provider string) error {
	return fmt.Errorf("%s: %w", provider, domain.ErrEmptyResponse)
}
