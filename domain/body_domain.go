package domain

import (
	"fitlens-backend/entities"
)

var (
	MessageSuccessAnalyzeBody = "body image analyzed successfully"
	MessageFailedAnalyzeBody  = "Não foi possível analisar a imagem corporal"
)

type (
	AnalyzeBodyRequest struct {
		Image            string                    `json:"image" validate:"required,image_datauri"`
		UserProfile      *UserProfile              `json:"userProfile,omitempty" validate:"omitempty"`
		PreviousAnalysis *entities.BodyComposition `json:"previousAnalysis,omitempty"`
	}

	BodyAnalysisResult struct {
		Success         bool                     `json:"success"`
		Error           string                   `json:"error,omitempty"`
		AnaliseCorporal entities.BodyComposition `json:"analise_corporal"`
		Evolution       *entities.Evolution      `json:"evolution,omitempty"`
	}
)

func NewBodyAnalysisFailure(message string) BodyAnalysisResult {
	return BodyAnalysisResult{
		Success: false,
		Error:   message,
		AnaliseCorporal: entities.BodyComposition{
			Posture: entities.Posture{
				Status:      entities.PostureNeedsImprovement,
				Issues:      []string{},
				Corrections: []string{},
			},
			AnatomicalPoints: entities.AnatomicalPoints{
				Detected: []string{},
			},
		},
	}
}
