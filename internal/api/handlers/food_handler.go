package handlers

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AnalyzeFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AnalyzeFood(c *fiber.Ctx) error {
	req := new(domain.AnalyzeFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Image == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageNotProvided, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeFood, err)
	}

	res, err := h.foodService.AnalyzeFoodImage(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, statusFor(err), res.Error, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, resultMessage(res.Success, res.Error, domain.MessageSuccessAnalyzeFood))
}
