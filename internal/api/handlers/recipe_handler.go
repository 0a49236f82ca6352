package handlers

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GenerateRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	req := new(domain.GenerateRecipeRequest)

	// an unknown meal label fails here, inside MealType.UnmarshalJSON
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.MealType == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMealTypeNotProvided, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidProfile, err)
	}

	res, err := h.recipeService.GenerateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, statusFor(err), res.Error, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, resultMessage(res.Success, res.Error, domain.MessageSuccessGenerateRecipe))
}
