package billing

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/internal/metrics"
	"fmt"

	"go.uber.org/zap"
)

type (
	BillingService interface {
		GetPlans() domain.GetPlansResponse
		CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error)
		HandleWebhook(ctx context.Context, payload []byte, signature string) (domain.WebhookResponse, error)
		CancelSubscription(ctx context.Context, req domain.CancelSubscriptionRequest) (domain.CancelSubscriptionResponse, error)
	}

	billingService struct {
		processor Processor
		metrics   *metrics.Metrics
		logger    *zap.Logger
	}
)

// NewBillingService accepts a nil processor; every operation except
// GetPlans then fails with ErrBillingNotConfigured.
func NewBillingService(processor Processor, m *metrics.Metrics, logger *zap.Logger) BillingService {
	return &billingService{
		processor: processor,
		metrics:   m,
		logger:    logger,
	}
}

func (s *billingService) GetPlans() domain.GetPlansResponse {
	catalog := Plans()
	out := make([]domain.PlanResponse, 0, len(catalog))
	for _, p := range catalog {
		yearly, discount := YearlyDiscount(p.Price)
		out = append(out, domain.PlanResponse{
			Plan:           p,
			FormattedPrice: FormatPrice(p.Price),
			YearlyPrice:    yearly,
			YearlyDiscount: discount,
			Access:         AccessMap(p.ID),
		})
	}
	return domain.GetPlansResponse{
		Plans:           out,
		TrialPeriodDays: domain.TrialPeriodDays,
	}
}

func (s *billingService) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error) {
	plan, ok := FindPlan(req.PlanID)
	if !ok {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: unknown plan %q", domain.ErrInvalidPlan, req.PlanID)
	}
	if req.Interval != entities.IntervalMonth && req.Interval != entities.IntervalYear {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: unknown interval %q", domain.ErrInvalidPlan, req.Interval)
	}
	if s.processor == nil {
		return domain.CheckoutResponse{}, domain.ErrBillingNotConfigured
	}

	resp, err := s.processor.CreateCheckout(ctx, plan, req.Interval)
	if err != nil {
		s.logger.Error("checkout failed",
			zap.String("processor", s.processor.Name()),
			zap.String("plan", plan.ID),
			zap.String("interval", string(req.Interval)),
			zap.Error(err),
		)
		return domain.CheckoutResponse{}, err
	}
	s.logger.Info("checkout created",
		zap.String("processor", s.processor.Name()),
		zap.String("session_id", resp.SessionID),
		zap.String("plan", plan.ID),
	)
	return resp, nil
}

func (s *billingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (domain.WebhookResponse, error) {
	if s.processor == nil {
		return domain.WebhookResponse{}, domain.ErrBillingNotConfigured
	}

	event, err := s.processor.ParseWebhook(payload, signature)
	if err != nil {
		s.logger.Warn("rejected webhook", zap.String("processor", s.processor.Name()), zap.Error(err))
		return domain.WebhookResponse{}, err
	}
	s.metrics.ObserveWebhook(s.processor.Name(), event.RawType)

	log := s.logger.With(
		zap.String("processor", s.processor.Name()),
		zap.String("event_id", event.ID),
		zap.String("object_id", event.ObjectID),
	)
	switch event.Type {
	case domain.EventCheckoutCompleted:
		log.Info("checkout completed", subscriptionFields(event.Subscription)...)
	case domain.EventSubscriptionCreated:
		log.Info("subscription created", subscriptionFields(event.Subscription)...)
	case domain.EventSubscriptionUpdated:
		log.Info("subscription updated", subscriptionFields(event.Subscription)...)
	case domain.EventSubscriptionDeleted:
		log.Info("subscription deleted", subscriptionFields(event.Subscription)...)
	case domain.EventPaymentSucceeded:
		log.Info("payment succeeded")
	case domain.EventPaymentFailed:
		log.Warn("payment failed")
	default:
		log.Debug("unhandled webhook event", zap.String("type", event.RawType))
	}
	return domain.WebhookResponse{Received: true}, nil
}

func (s *billingService) CancelSubscription(ctx context.Context, req domain.CancelSubscriptionRequest) (domain.CancelSubscriptionResponse, error) {
	if s.processor == nil {
		return domain.CancelSubscriptionResponse{}, domain.ErrBillingNotConfigured
	}

	c, err := s.processor.CancelSubscription(ctx, req.SubscriptionID)
	if err != nil {
		s.logger.Error("cancel subscription failed",
			zap.String("processor", s.processor.Name()),
			zap.String("subscription_id", req.SubscriptionID),
			zap.Error(err),
		)
		return domain.CancelSubscriptionResponse{}, err
	}
	s.logger.Info("subscription canceled",
		zap.String("processor", s.processor.Name()),
		zap.String("subscription_id", req.SubscriptionID),
		zap.Time("access_until", c.AccessUntil),
	)
	return domain.CancelSubscriptionResponse{
		Success:     true,
		Message:     domain.MessageSuccessCancelSubscription,
		CanceledAt:  c.CanceledAt,
		AccessUntil: c.AccessUntil,
	}, nil
}

func subscriptionFields(sub *entities.UserSubscription) []zap.Field {
	if sub == nil {
		return nil
	}
	return []zap.Field{
		zap.String("subscription_id", sub.ID),
		zap.String("plan", sub.PlanID),
		zap.String("status", string(sub.Status)),
	}
}
