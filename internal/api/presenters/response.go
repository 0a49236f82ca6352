package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return FailureResponse(c, nil, statusCode, message, err)
}

// FailureResponse is ErrorResponse carrying a payload, used when a failed
// analysis still has a well-formed result the client can render.
//
// Only client errors echo err. Server errors wrap provider and processor
// output, which is logged by the services and never sent back.
func FailureResponse(c *fiber.Ctx, data interface{}, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
		Data:    data,
		Error:   message,
	}
	if err != nil && statusCode < fiber.StatusInternalServerError {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}
