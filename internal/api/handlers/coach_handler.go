package handlers

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/coach"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CoachHandler interface {
		Chat(c *fiber.Ctx) error
	}

	coachHandler struct {
		coachService coach.CoachService
		validator    *validator.Validate
	}
)

func NewCoachHandler(coachService coach.CoachService, validator *validator.Validate) CoachHandler {
	return &coachHandler{
		coachService: coachService,
		validator:    validator,
	}
}

func (h *coachHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.CoachChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if strings.TrimSpace(req.Message) == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMessageNotProvided, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidProfile, err)
	}

	res, err := h.coachService.Reply(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCoachChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCoachChat)
}
