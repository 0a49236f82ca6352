package domain

import (
	"fitlens-backend/entities"
	"time"
)

var (
	MessageSuccessGenerateRecommendations = "recommendations generated successfully"
	MessageFailedGenerateRecommendations  = "Não foi possível gerar as recomendações"
	MessageSuccessCompleteAnalysis        = "complete analysis finished"
	MessageFailedCompleteAnalysis         = "Não foi possível concluir a análise"
)

type (
	RecommendationRequest struct {
		UserProfile  UserProfile               `json:"userProfile"`
		FoodAnalysis []entities.FoodItem       `json:"foodAnalysis,omitempty"`
		BodyAnalysis *entities.BodyComposition `json:"bodyAnalysis,omitempty"`
	}

	RecommendationResult struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
		entities.PersonalizedRecommendations
	}

	CompleteAnalysisRequest struct {
		FoodImage   string      `json:"foodImage,omitempty" validate:"omitempty,image_datauri"`
		BodyImage   string      `json:"bodyImage,omitempty" validate:"omitempty,image_datauri"`
		UserProfile UserProfile `json:"userProfile"`
	}

	CompleteAnalysisResult struct {
		Alimentos       []entities.FoodItem                  `json:"alimentos,omitempty"`
		AnaliseCorporal *entities.BodyComposition            `json:"analise_corporal,omitempty"`
		Recomendacoes   entities.PersonalizedRecommendations `json:"recomendacoes"`
		Warnings        []string                             `json:"warnings,omitempty"`
		Timestamp       time.Time                            `json:"timestamp"`
	}
)
