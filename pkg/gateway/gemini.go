package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

type geminiGateway struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiGateway(ctx context.Context, apiKey, model string, logger *zap.Logger) (Gateway, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiGateway{client: client, model: model, logger: logger}, nil
}

func (g *geminiGateway) Name() string { return "gemini" }

func (g *geminiGateway) Close() error { return g.client.Close() }

func (g *geminiGateway) Complete(ctx context.Context, req Request) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.JSONMode {
		model.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.ImageURL != "" {
		mimeType, data, err := DecodeDataURI(req.ImageURL)
		if err != nil {
			return "", &ProviderError{Provider: g.Name(), Err: err}
		}
		parts = append(parts, genai.Blob{MIMEType: mimeType, Data: data})
	}

	var (
		resp *genai.GenerateContentResponse
		err  error
	)
	if history := geminiHistory(req.History); len(history) > 0 {
		session := model.StartChat()
		session.History = history
		resp, err = session.SendMessage(ctx, parts...)
	} else {
		resp, err = model.GenerateContent(ctx, parts...)
	}
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Transient: isTransientGemini(err), Err: err}
	}

	if resp.UsageMetadata != nil {
		g.logger.Debug("gemini completion",
			zap.String("model", g.model),
			zap.Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount),
			zap.Int32("completion_tokens", resp.UsageMetadata.CandidatesTokenCount),
		)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", emptyResponse(g.Name())
	}
	return text, nil
}

// geminiHistory converts chat turns to Gemini contents. Gemini names the
// assistant "model" and expects the conversation to open with a user turn.
func geminiHistory(turns []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, m := range turns {
		role := RoleUser
		if m.Role == RoleAssistant {
			role = "model"
		}
		if len(history) == 0 && role != RoleUser {
			continue
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return history
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

func isTransientGemini(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500
	}
	return false
}
