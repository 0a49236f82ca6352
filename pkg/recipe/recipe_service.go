package recipe

import (
	"context"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/nutrition"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/prompt"

	"go.uber.org/zap"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeResult, error)
	}

	recipeService struct {
		pipeline pipeline.Pipeline
		logger   *zap.Logger
	}
)

func NewRecipeService(p pipeline.Pipeline, logger *zap.Logger) RecipeService {
	return &recipeService{
		pipeline: p,
		logger:   logger,
	}
}

func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeResult, error) {
	target, err := nutrition.MealCalories(req.UserProfile, req.MealType)
	if err != nil {
		return domain.NewRecipeFailure(domain.UserMessage(err), 0), err
	}

	system, user := prompt.Recipe(req.MealType, target, req.UserProfile.Goal)
	var recipe entities.Recipe
	err = s.pipeline.Execute(ctx, pipeline.KindRecipe, gateway.Request{
		System:      system,
		Prompt:      user,
		Temperature: gateway.GenerativeTemperature,
		MaxTokens:   gateway.RecipeMaxTokens,
		JSONMode:    true,
	}, &recipe)

	var failure *pipeline.ModelFailure
	switch {
	case errors.As(err, &failure):
		msg := failure.Message
		if msg == "" {
			msg = domain.MessageFailedGenerateRecipe
		}
		return domain.NewRecipeFailure(msg, target), nil
	case err != nil:
		return domain.NewRecipeFailure(domain.UserMessage(err), target), err
	}

	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	s.logger.Debug("recipe generated",
		zap.String("meal", string(req.MealType)),
		zap.Int("target_calories", target),
		zap.Float64("recipe_calories", recipe.Calories),
	)
	return domain.RecipeResult{
		Success:        true,
		TargetCalories: target,
		Recipe:         recipe,
	}, nil
}
