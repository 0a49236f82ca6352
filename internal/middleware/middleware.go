package middleware

import (
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		AccessLogMiddleware(output io.Writer) fiber.Handler
		RateLimitMiddleware(max int, window time.Duration) fiber.Handler
	}

	middleware struct {
		logger *zap.Logger
	}
)

func NewMiddleware(logger *zap.Logger) Middleware {
	return &middleware{logger: logger}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Stripe-Signature",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New()
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			m.logger.Error("panic while handling request",
				zap.String("path", c.Path()),
				zap.Any("request_id", c.Locals("requestid")),
				zap.String("panic", fmt.Sprint(e)),
				zap.Stack("stack"),
			)
		},
	})
}

func (m *middleware) AccessLogMiddleware(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	})
}

// RateLimitMiddleware caps requests per client IP. Model calls are slow and
// billed, so the analysis routes sit behind it.
func (m *middleware) RateLimitMiddleware(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageTooManyRequests, nil)
		},
	})
}
