package recommendation

import (
	"context"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/prompt"

	"go.uber.org/zap"
)

type (
	RecommendationService interface {
		GenerateRecommendations(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error)
	}

	recommendationService struct {
		pipeline pipeline.Pipeline
		logger   *zap.Logger
	}
)

func NewRecommendationService(p pipeline.Pipeline, logger *zap.Logger) RecommendationService {
	return &recommendationService{
		pipeline: p,
		logger:   logger,
	}
}

// GenerateRecommendations falls back to DefaultRecommendations, with Success
// false, whenever the personalized plan cannot be produced.
func (s *recommendationService) GenerateRecommendations(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error) {
	if err := req.UserProfile.Check(); err != nil {
		return fallback(domain.MessageInvalidProfile), err
	}

	var plan entities.PersonalizedRecommendations
	err := s.pipeline.Execute(ctx, pipeline.KindRecommendations, gateway.Request{
		Prompt:      prompt.Recommendations(req.UserProfile, req.FoodAnalysis, req.BodyAnalysis),
		Temperature: gateway.GenerativeTemperature,
		MaxTokens:   gateway.RecommendationMaxTokens,
		JSONMode:    true,
	}, &plan)

	var failure *pipeline.ModelFailure
	switch {
	case errors.As(err, &failure):
		msg := failure.Message
		if msg == "" {
			msg = domain.MessageFailedGenerateRecommendations
		}
		return fallback(msg), nil
	case err != nil:
		s.logger.Warn("serving default recommendations", zap.Error(err))
		return fallback(domain.UserMessage(err)), err
	}

	return domain.RecommendationResult{
		Success:                     true,
		PersonalizedRecommendations: normalize(plan),
	}, nil
}

func fallback(message string) domain.RecommendationResult {
	return domain.RecommendationResult{
		Success:                     false,
		Error:                       message,
		PersonalizedRecommendations: DefaultRecommendations(),
	}
}

func normalize(p entities.PersonalizedRecommendations) entities.PersonalizedRecommendations {
	lists := []*[]string{
		&p.MealPlan.Breakfast,
		&p.MealPlan.Lunch,
		&p.MealPlan.Dinner,
		&p.MealPlan.Snacks,
		&p.ShoppingList,
		&p.MotivationalTips,
	}
	for _, l := range lists {
		if *l == nil {
			*l = []string{}
		}
	}
	if p.Workout.Exercises == nil {
		p.Workout.Exercises = []entities.Exercise{}
	}
	return p
}
