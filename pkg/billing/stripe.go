package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

type (
	StripeConfig struct {
		SecretKey     string
		WebhookSecret string
		AppURL        string
		// Prices maps PriceKey values to Stripe price ids.
		Prices map[string]string
	}

	stripeProcessor struct {
		api    *client.API
		config StripeConfig
		logger *zap.Logger
		now    func() time.Time
	}
)

// NewStripeProcessor builds a processor on the official client. A nil
// backends value uses the public Stripe API.
func NewStripeProcessor(cfg StripeConfig, backends *stripe.Backends, logger *zap.Logger) Processor {
	api := client.New(cfg.SecretKey, backends)
	return &stripeProcessor{
		api:    api,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (p *stripeProcessor) Name() string { return "stripe" }

func (p *stripeProcessor) CreateCheckout(ctx context.Context, plan entities.Plan, interval entities.BillingInterval) (domain.CheckoutResponse, error) {
	priceID := p.config.Prices[PriceKey(plan.ID, interval)]
	if priceID == "" {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: no stripe price for %s", domain.ErrInvalidPlan, PriceKey(plan.ID, interval))
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(domain.TrialPeriodDays),
		},
		SuccessURL: stripe.String(p.config.AppURL + "/dashboard?success=true"),
		CancelURL:  stripe.String(p.config.AppURL + "/pricing?canceled=true"),
	}
	params.Context = ctx
	params.AddMetadata("planId", plan.ID)
	params.AddMetadata("interval", string(interval))

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: %v", domain.ErrCheckoutFailed, err)
	}
	return domain.CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (p *stripeProcessor) ParseWebhook(payload []byte, signature string) (domain.WebhookEvent, error) {
	if signature == "" {
		return domain.WebhookEvent{}, domain.ErrMissingSignature
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.config.WebhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return domain.WebhookEvent{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	out := domain.WebhookEvent{
		ID:      event.ID,
		Type:    domain.WebhookEventType(event.Type),
		RawType: string(event.Type),
	}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case domain.EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return out, fmt.Errorf("decode checkout session: %w", err)
		}
		out.ObjectID = session.ID
		if session.Subscription != nil {
			out.Subscription = &entities.UserSubscription{
				ID:     session.Subscription.ID,
				PlanID: session.Metadata["planId"],
				Status: entities.SubscriptionTrialing,
			}
		}
	case domain.EventSubscriptionCreated, domain.EventSubscriptionUpdated, domain.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return out, fmt.Errorf("decode subscription: %w", err)
		}
		out.ObjectID = sub.ID
		out.Subscription = &entities.UserSubscription{
			ID:               sub.ID,
			PlanID:           sub.Metadata["planId"],
			Status:           entities.SubscriptionStatus(sub.Status),
			CurrentPeriodEnd: unixTime(sub.CurrentPeriodEnd),
			CancelAtEnd:      sub.CancelAtPeriodEnd,
		}
	case domain.EventPaymentSucceeded, domain.EventPaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return out, fmt.Errorf("decode invoice: %w", err)
		}
		out.ObjectID = invoice.ID
	}
	return out, nil
}

func (p *stripeProcessor) CancelSubscription(ctx context.Context, subscriptionID string) (Cancellation, error) {
	if subscriptionID == "" {
		return graceCancellation(p.now()), nil
	}

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	sub, err := p.api.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return Cancellation{}, fmt.Errorf("%w: subscription %s not found", domain.ErrCancelFailed, subscriptionID)
		}
		return Cancellation{}, fmt.Errorf("%w: %v", domain.ErrCancelFailed, err)
	}

	c := graceCancellation(p.now())
	if sub.CanceledAt > 0 {
		c.CanceledAt = unixTime(sub.CanceledAt)
	}
	if sub.CurrentPeriodEnd > 0 {
		c.AccessUntil = unixTime(sub.CurrentPeriodEnd)
	}
	return c, nil
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
