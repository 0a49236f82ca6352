package body

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
	BodyService interface {
		AnalyzeBodyImage(ctx context.Context, req domain.AnalyzeBodyRequest) (domain.BodyAnalysisResult, error)
	}

	bodyService struct {
		pipeline pipeline.Pipeline
		logger   *zap.Logger
	}
)

func NewBodyService(p pipeline.Pipeline, logger *zap.Logger) BodyService {
	return &bodyService{
		pipeline: p,
		logger:   logger,
	}
}

func (s *bodyService) AnalyzeBodyImage(ctx context.Context, req domain.AnalyzeBodyRequest) (domain.BodyAnalysisResult, error) {
	var result domain.BodyAnalysisResult
	err := s.pipeline.Execute(ctx, pipeline.KindBody, gateway.Request{
		Prompt:      prompt.BodyAnalysis(req.UserProfile, req.PreviousAnalysis),
		ImageURL:    req.Image,
		Temperature: gateway.ExtractionTemperature,
		MaxTokens:   gateway.BodyMaxTokens,
		JSONMode:    true,
	}, &result)

	var failure *pipeline.ModelFailure
	switch {
	case errors.As(err, &failure):
		msg := failure.Message
		if msg == "" {
			msg = domain.MessageFailedAnalyzeBody
		}
		return domain.NewBodyAnalysisFailure(msg), nil
	case err != nil:
		return domain.NewBodyAnalysisFailure(domain.UserMessage(err)), err
	}

	result.Success = true
	result.Error = ""
	normalizeComposition(&result.AnaliseCorporal)

	// evolution only makes sense against a previous snapshot
	if req.PreviousAnalysis == nil {
		if result.Evolution != nil {
			s.logger.Debug("dropping evolution block without previous analysis")
		}
		result.Evolution = nil
	} else if result.Evolution != nil {
		normalizeEvolution(result.Evolution)
	}
	return result, nil
}

func normalizeComposition(c *entities.BodyComposition) {
	if c.Posture.Status == "" {
		c.Posture.Status = entities.PostureNeedsImprovement
	}
	if c.Posture.Issues == nil {
		c.Posture.Issues = []string{}
	}
	if c.Posture.Corrections == nil {
		c.Posture.Corrections = []string{}
	}
	if c.AnatomicalPoints.Detected == nil {
		c.AnatomicalPoints.Detected = []string{}
	}
}

func normalizeEvolution(e *entities.Evolution) {
	if e.MeasurementChanges == nil {
		e.MeasurementChanges = map[string]float64{}
	}
	if e.ProgressNotes == nil {
		e.ProgressNotes = []string{}
	}
}
