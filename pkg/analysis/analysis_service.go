// Package analysis chains the food, body and recommendation features into
// the single "complete analysis" action.
package analysis

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/body"
	"fitlens-backend/pkg/food"
	"fitlens-backend/pkg/recommendation"
	"time"

	"go.uber.org/zap"
)

type (
	AnalysisService interface {
		AnalyzeComplete(ctx context.Context, req domain.CompleteAnalysisRequest) (domain.CompleteAnalysisResult, error)
	}

	analysisService struct {
		foodService           food.FoodService
		bodyService           body.BodyService
		recommendationService recommendation.RecommendationService
		logger                *zap.Logger
		now                   func() time.Time
	}
)

func NewAnalysisService(
	foodService food.FoodService,
	bodyService body.BodyService,
	recommendationService recommendation.RecommendationService,
	logger *zap.Logger,
) AnalysisService {
	return &analysisService{
		foodService:           foodService,
		bodyService:           bodyService,
		recommendationService: recommendationService,
		logger:                logger,
		now:                   time.Now,
	}
}

// AnalyzeComplete runs the steps one after another. A failed image step is
// reported as a warning and its output is left out of the recommendation
// input; only an invalid profile fails the whole action.
func (s *analysisService) AnalyzeComplete(ctx context.Context, req domain.CompleteAnalysisRequest) (domain.CompleteAnalysisResult, error) {
	if err := req.UserProfile.Check(); err != nil {
		return domain.CompleteAnalysisResult{}, err
	}

	result := domain.CompleteAnalysisResult{}
	profile := req.UserProfile

	var foods []entities.FoodItem
	if req.FoodImage != "" {
		res, err := s.foodService.AnalyzeFoodImage(ctx, domain.AnalyzeFoodRequest{
			Image:       req.FoodImage,
			UserProfile: &profile,
		})
		if err != nil || !res.Success {
			s.logger.Warn("food step failed", zap.Error(err), zap.String("message", res.Error))
			result.Warnings = append(result.Warnings, "Alimentos: "+res.Error)
		} else {
			foods = res.Alimentos
			result.Alimentos = res.Alimentos
		}
	}

	var composition *entities.BodyComposition
	if req.BodyImage != "" {
		res, err := s.bodyService.AnalyzeBodyImage(ctx, domain.AnalyzeBodyRequest{
			Image:       req.BodyImage,
			UserProfile: &profile,
		})
		if err != nil || !res.Success {
			s.logger.Warn("body step failed", zap.Error(err), zap.String("message", res.Error))
			result.Warnings = append(result.Warnings, "Análise corporal: "+res.Error)
		} else {
			composition = &res.AnaliseCorporal
			result.AnaliseCorporal = composition
		}
	}

	recs, err := s.recommendationService.GenerateRecommendations(ctx, domain.RecommendationRequest{
		UserProfile:  profile,
		FoodAnalysis: foods,
		BodyAnalysis: composition,
	})
	if err != nil || !recs.Success {
		s.logger.Warn("recommendation step failed", zap.Error(err), zap.String("message", recs.Error))
		result.Warnings = append(result.Warnings, "Recomendações: "+recs.Error)
	}
	result.Recomendacoes = recs.PersonalizedRecommendations
	result.Timestamp = s.now().UTC()
	return result, nil
}
