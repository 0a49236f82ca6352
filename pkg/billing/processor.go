package billing

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"time"
)

type (
	// Processor is a payment provider able to sell the plan catalog.
	Processor interface {
		Name() string
		CreateCheckout(ctx context.Context, plan entities.Plan, interval entities.BillingInterval) (domain.CheckoutResponse, error)
		// ParseWebhook verifies and decodes a provider notification.
		ParseWebhook(payload []byte, signature string) (domain.WebhookEvent, error)
		CancelSubscription(ctx context.Context, subscriptionID string) (Cancellation, error)
	}

	Cancellation struct {
		CanceledAt  time.Time
		AccessUntil time.Time
	}
)

// graceCancellation is used whenever the provider gives no period end.
func graceCancellation(now time.Time) Cancellation {
	return Cancellation{
		CanceledAt:  now,
		AccessUntil: now.AddDate(0, 0, domain.CancelGraceDays),
	}
}
