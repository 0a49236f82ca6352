package domain

import (
	"fitlens-backend/entities"
)

var (
	MessageSuccessAnalyzeFood = "food image analyzed successfully"
	MessageFailedAnalyzeFood  = "Não foi possível analisar a imagem"
	MessageImageNotProvided   = "Imagem não fornecida"
)

type (
	AnalyzeFoodRequest struct {
		Image       string       `json:"image" validate:"required,image_datauri"`
		UserProfile *UserProfile `json:"userProfile,omitempty" validate:"omitempty"`
		UserGoal    Goal         `json:"userGoal,omitempty" validate:"omitempty,oneof=lose gain tone maintain"`
	}

	FoodAnalysisResult struct {
		Success      bool                    `json:"success"`
		Error        string                  `json:"error,omitempty"`
		Alimentos    []entities.FoodItem     `json:"alimentos"`
		Totals       entities.NutrientTotals `json:"totals"`
		Suggestions  []string                `json:"suggestions"`
		ContextNotes []string                `json:"contextNotes"`
	}
)

// NewFoodAnalysisFailure returns the failure variant: every total zeroed and
// every list empty, so clients read one shape regardless of outcome.
func NewFoodAnalysisFailure(message string) FoodAnalysisResult {
	return FoodAnalysisResult{
		Success:      false,
		Error:        message,
		Alimentos:    []entities.FoodItem{},
		Suggestions:  []string{},
		ContextNotes: []string{},
	}
}

// Goal returns the goal that should drive the prompt, preferring the profile.
func (r AnalyzeFoodRequest) Goal() Goal {
	if r.UserProfile != nil && r.UserProfile.Goal != "" {
		return r.UserProfile.Goal
	}
	return r.UserGoal
}
