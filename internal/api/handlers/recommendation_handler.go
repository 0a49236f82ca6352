package handlers

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/analysis"
	"fitlens-backend/pkg/recommendation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GenerateRecommendations(c *fiber.Ctx) error
		AnalyzeComplete(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		analysisService       analysis.AnalysisService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(
	recommendationService recommendation.RecommendationService,
	analysisService analysis.AnalysisService,
	validator *validator.Validate,
) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		analysisService:       analysisService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GenerateRecommendations(c *fiber.Ctx) error {
	req := new(domain.RecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidProfile, err)
	}

	res, err := h.recommendationService.GenerateRecommendations(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, statusFor(err), res.Error, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, resultMessage(res.Success, res.Error, domain.MessageSuccessGenerateRecommendations))
}

func (h *recommendationHandler) AnalyzeComplete(c *fiber.Ctx) error {
	req := new(domain.CompleteAnalysisRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteAnalysis, err)
	}

	res, err := h.analysisService.AnalyzeComplete(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCompleteAnalysis, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteAnalysis)
}
