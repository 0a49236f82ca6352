package handlers

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/body"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BodyHandler interface {
		AnalyzeBody(c *fiber.Ctx) error
	}

	bodyHandler struct {
		bodyService body.BodyService
		validator   *validator.Validate
	}
)

func NewBodyHandler(bodyService body.BodyService, validator *validator.Validate) BodyHandler {
	return &bodyHandler{
		bodyService: bodyService,
		validator:   validator,
	}
}

func (h *bodyHandler) AnalyzeBody(c *fiber.Ctx) error {
	req := new(domain.AnalyzeBodyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Image == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageNotProvided, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeBody, err)
	}

	res, err := h.bodyService.AnalyzeBodyImage(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, statusFor(err), res.Error, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, resultMessage(res.Success, res.Error, domain.MessageSuccessAnalyzeBody))
}
