package config

import (
	"context"
	"fitlens-backend/internal/utils"
	"fitlens-backend/pkg/gateway"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRetryDelay = 500 * time.Millisecond

// ConnectGateway builds the model provider selected by AI_PROVIDER ("openai"
// when unset) and applies the retry policy from AI_MAX_ATTEMPTS.
func ConnectGateway(ctx context.Context, logger *zap.Logger) (gateway.Gateway, error) {
	var (
		gw  gateway.Gateway
		err error
	)

	switch provider := strings.ToLower(utils.GetConfigOr("AI_PROVIDER", "openai")); provider {
	case "openai":
		apiKey := utils.GetConfig("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		gw = gateway.NewOpenAIGateway(apiKey, utils.GetConfig("OPENAI_BASE_URL"), utils.GetConfig("OPENAI_MODEL"), logger)
	case "gemini":
		apiKey := utils.GetConfig("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		gw, err = gateway.NewGeminiGateway(ctx, apiKey, utils.GetConfig("GEMINI_MODEL"), logger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", provider)
	}

	policy := gateway.Policy{
		MaxAttempts: maxAttempts(utils.GetConfig("AI_MAX_ATTEMPTS")),
		BaseDelay:   defaultRetryDelay,
	}
	logger.Info("model gateway ready",
		zap.String("provider", gw.Name()),
		zap.Int("max_attempts", policy.MaxAttempts),
	)
	return gateway.WithPolicy(gw, policy, logger), nil
}

// maxAttempts defaults to a single attempt; retries are opt-in.
func maxAttempts(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return gateway.AtMostOnce.MaxAttempts
	}
	return n
}
