package handlers

import (
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/internal/api/presenters"
	"fitlens-backend/pkg/billing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const StripeSignatureHeader = "Stripe-Signature"

type (
	BillingHandler interface {
		GetPlans(c *fiber.Ctx) error
		CreateCheckout(c *fiber.Ctx) error
		Webhook(c *fiber.Ctx) error
		CancelSubscription(c *fiber.Ctx) error
	}

	billingHandler struct {
		billingService billing.BillingService
		validator      *validator.Validate
	}
)

func NewBillingHandler(billingService billing.BillingService, validator *validator.Validate) BillingHandler {
	return &billingHandler{
		billingService: billingService,
		validator:      validator,
	}
}

func (h *billingHandler) GetPlans(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.billingService.GetPlans(), fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *billingHandler) CreateCheckout(c *fiber.Ctx) error {
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.PlanID == "" || req.Interval == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCheckoutFieldsRequired, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidPlan, err)
	}

	res, err := h.billingService.CreateCheckout(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlan) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidPlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateCheckout)
}

func (h *billingHandler) Webhook(c *fiber.Ctx) error {
	// the body is copied, fiber reuses its buffers once the handler returns
	payload := append([]byte(nil), c.Body()...)

	res, err := h.billingService.HandleWebhook(c.Context(), payload, c.Get(StripeSignatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingSignature):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingSignature, err)
		case errors.Is(err, domain.ErrInvalidSignature):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidSignature, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWebhook, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessWebhook)
}

func (h *billingHandler) CancelSubscription(c *fiber.Ctx) error {
	req := new(domain.CancelSubscriptionRequest)

	// the body is optional
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.billingService.CancelSubscription(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCancelSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCancelSubscription)
}
