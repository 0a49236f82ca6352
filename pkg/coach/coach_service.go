package coach

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/nutrition"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/prompt"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type (
	CoachService interface {
		Reply(ctx context.Context, req domain.CoachChatRequest) (domain.CoachChatResponse, error)
	}

	coachService struct {
		pipeline pipeline.Pipeline
		logger   *zap.Logger
	}
)

func NewCoachService(p pipeline.Pipeline, logger *zap.Logger) CoachService {
	return &coachService{
		pipeline: p,
		logger:   logger,
	}
}

func (s *coachService) Reply(ctx context.Context, req domain.CoachChatRequest) (domain.CoachChatResponse, error) {
	m, err := nutrition.Compute(req.UserProfile)
	if err != nil {
		return domain.CoachChatResponse{}, err
	}

	text, err := s.pipeline.Text(ctx, pipeline.KindChat, gateway.Request{
		System:      prompt.CoachSystem(req.UserProfile, m),
		History:     RecentHistory(req.History, domain.ChatHistoryLimit),
		Prompt:      req.Message,
		Temperature: gateway.GenerativeTemperature,
		MaxTokens:   gateway.ChatMaxTokens,
	})
	if err != nil {
		return domain.CoachChatResponse{}, err
	}
	reply := strings.TrimSpace(text)
	if reply == "" {
		return domain.CoachChatResponse{}, fmt.Errorf("%s: %w", s.pipeline.Provider(), domain.ErrEmptyResponse)
	}
	return domain.CoachChatResponse{Response: reply}, nil
}

// RecentHistory keeps the last limit user and assistant turns, oldest first.
// Turns with any other role or with empty content are dropped.
func RecentHistory(turns []domain.ChatTurn, limit int) []gateway.Message {
	kept := make([]gateway.Message, 0, len(turns))
	for _, t := range turns {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		switch t.Role {
		case domain.ChatRoleUser:
			kept = append(kept, gateway.Message{Role: gateway.RoleUser, Content: t.Content})
		case domain.ChatRoleAssistant:
			kept = append(kept, gateway.Message{Role: gateway.RoleAssistant, Content: t.Content})
		}
	}
	if len(kept) > limit {
		kept = kept[len(kept)-limit:]
	}
	return kept
}
