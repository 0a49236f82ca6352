package domain

import (
	"errors"
	"fitlens-backend/entities"
	"time"
)

var (
	MessageSuccessGetPlans           = "plans retrieved successfully"
	MessageSuccessCreateCheckout     = "checkout session created successfully"
	MessageSuccessWebhook            = "webhook received"
	MessageSuccessCancelSubscription = "Assinatura cancelada com sucesso"

	MessageFailedCreateCheckout     = "Erro ao criar sessão de checkout"
	MessageFailedWebhook            = "Erro ao processar webhook"
	MessageFailedCancelSubscription = "Erro ao cancelar assinatura"
	MessageCheckoutFieldsRequired   = "planId e interval são obrigatórios"
	MessageInvalidPlan              = "Plano inválido"
	MessageMissingSignature         = "Assinatura ausente"
	MessageInvalidSignature         = "Assinatura inválida"

	ErrInvalidPlan          = errors.New("invalid plan or interval")
	ErrMissingSignature     = errors.New("missing webhook signature")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrBillingNotConfigured = errors.New("billing processor not configured")
	ErrCheckoutFailed       = errors.New("checkout session creation failed")
	ErrCancelFailed         = errors.New("subscription cancellation failed")
)

const (
	TrialPeriodDays = 1
	// CancelGraceDays is how long access lasts after a cancellation the
	// processor could not date.
	CancelGraceDays = 30
)

type WebhookEventType string

const (
	EventCheckoutCompleted   WebhookEventType = "checkout.session.completed"
	EventSubscriptionCreated WebhookEventType = "customer.subscription.created"
	EventSubscriptionUpdated WebhookEventType = "customer.subscription.updated"
	EventSubscriptionDeleted WebhookEventType = "customer.subscription.deleted"
	EventPaymentSucceeded    WebhookEventType = "invoice.payment_succeeded"
	EventPaymentFailed       WebhookEventType = "invoice.payment_failed"
)

type (
	PlanResponse struct {
		entities.Plan
		FormattedPrice string          `json:"formattedPrice"`
		YearlyPrice    float64         `json:"yearlyPrice"`
		YearlyDiscount int             `json:"yearlyDiscount"`
		Access         map[string]bool `json:"access"`
	}

	GetPlansResponse struct {
		Plans           []PlanResponse `json:"plans"`
		TrialPeriodDays int            `json:"trialPeriodDays"`
	}

	CheckoutRequest struct {
		PlanID   string                   `json:"planId" validate:"required"`
		Interval entities.BillingInterval `json:"interval" validate:"required,oneof=month year"`
	}

	CheckoutResponse struct {
		SessionID string `json:"sessionId"`
		URL       string `json:"url"`
	}

	// WebhookEvent is a verified processor notification reduced to the
	// fields the dispatcher needs.
	WebhookEvent struct {
		ID           string
		Type         WebhookEventType
		RawType      string
		ObjectID     string
		Subscription *entities.UserSubscription
	}

	WebhookResponse struct {
		Received bool `json:"received"`
	}

	CancelSubscriptionRequest struct {
		SubscriptionID string `json:"subscriptionId,omitempty"`
	}

	CancelSubscriptionResponse struct {
		Success     bool      `json:"success"`
		Message     string    `json:"message"`
		CanceledAt  time.Time `json:"canceledAt"`
		AccessUntil time.Time `json:"accessUntil"`
	}
)
