package food

import (
	"context"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/prompt"
	"math"

	"go.uber.org/zap"
)

// totalsTolerance is how far (per field) the model's own totals may drift
// from the recomputed ones before the divergence is logged.
const totalsTolerance = 1.0

type (
	FoodService interface {
		AnalyzeFoodImage(ctx context.Context, req domain.AnalyzeFoodRequest) (domain.FoodAnalysisResult, error)
	}

	foodService struct {
		pipeline pipeline.Pipeline
		logger   *zap.Logger
	}
)

func NewFoodService(p pipeline.Pipeline, logger *zap.Logger) FoodService {
	return &foodService{
		pipeline: p,
		logger:   logger,
	}
}

// AnalyzeFoodImage always returns a complete result. The error is non-nil
// only for pipeline faults; a failure reported by the model is a normal
// result with Success false.
func (s *foodService) AnalyzeFoodImage(ctx context.Context, req domain.AnalyzeFoodRequest) (domain.FoodAnalysisResult, error) {
	var result domain.FoodAnalysisResult
	err := s.pipeline.Execute(ctx, pipeline.KindFood, gateway.Request{
		Prompt:      prompt.FoodAnalysis(req.UserProfile, req.Goal()),
		ImageURL:    req.Image,
		Temperature: gateway.ExtractionTemperature,
		MaxTokens:   gateway.FoodMaxTokens,
		JSONMode:    true,
	}, &result)

	var failure *pipeline.ModelFailure
	switch {
	case errors.As(err, &failure):
		result.Success = false
		result.Error = failure.Message
		if result.Error == "" {
			result.Error = domain.MessageFailedAnalyzeFood
		}
		return assemble(result), nil
	case err != nil:
		return domain.NewFoodAnalysisFailure(domain.UserMessage(err)), err
	}

	reported := result.Totals
	result.Success = true
	result.Error = ""
	result = assemble(result)
	if !totalsAgree(reported, result.Totals) {
		s.logger.Warn("model totals differ from item sum, using item sum",
			zap.Float64("reported_calories", reported.Calories),
			zap.Float64("computed_calories", result.Totals.Calories),
			zap.Int("items", len(result.Alimentos)),
		)
	}
	return result, nil
}

// assemble recomputes the totals from the items and replaces nil lists.
func assemble(r domain.FoodAnalysisResult) domain.FoodAnalysisResult {
	if r.Alimentos == nil {
		r.Alimentos = []entities.FoodItem{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.ContextNotes == nil {
		r.ContextNotes = []string{}
	}
	r.Totals = SumNutrients(r.Alimentos)
	return r
}

func SumNutrients(items []entities.FoodItem) entities.NutrientTotals {
	var t entities.NutrientTotals
	for _, item := range items {
		t.Add(item)
	}
	return t
}

func totalsAgree(a, b entities.NutrientTotals) bool {
	pairs := [][2]float64{
		{a.Calories, b.Calories},
		{a.Protein, b.Protein},
		{a.Carbs, b.Carbs},
		{a.Fats, b.Fats},
		{a.Fiber, b.Fiber},
		{a.Sugar, b.Sugar},
		{a.Sodium, b.Sodium},
	}
	for _, p := range pairs {
		if math.Abs(p[0]-p[1]) > totalsTolerance {
			return false
		}
	}
	return true
}
