package handlers

import (
	"errors"
	"fitlens-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a service error to its HTTP status. Client mistakes are 400,
// everything else (provider, parsing, schema, processor) is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrInvalidMealType),
		errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrMissingSignature),
		errors.Is(err, domain.ErrInvalidSignature):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// resultMessage picks the envelope message of an analysis that completed,
// which may still carry a failure the model reported.
func resultMessage(success bool, failure, successMessage string) string {
	if success {
		return successMessage
	}
	return failure
}
