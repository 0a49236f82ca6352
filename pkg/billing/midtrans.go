package billing

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"
)

type (
	MidtransConfig struct {
		ServerKey  string
		Production bool
		// Amounts maps PriceKey values to gross amounts in the account currency.
		Amounts map[string]int64
	}

	snapClient interface {
		CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
	}

	midtransProcessor struct {
		snap   snapClient
		config MidtransConfig
		logger *zap.Logger
		now    func() time.Time
	}

	// midtransNotification is the HTTP notification body Midtrans posts.
	midtransNotification struct {
		TransactionID     string `json:"transaction_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		SignatureKey      string `json:"signature_key"`
	}
)

func NewMidtransProcessor(cfg MidtransConfig, logger *zap.Logger) Processor {
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}
	var client snap.Client
	client.New(cfg.ServerKey, env)

	return &midtransProcessor{
		snap:   &client,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (p *midtransProcessor) Name() string { return "midtrans" }

func (p *midtransProcessor) CreateCheckout(_ context.Context, plan entities.Plan, interval entities.BillingInterval) (domain.CheckoutResponse, error) {
	amount, ok := p.config.Amounts[PriceKey(plan.ID, interval)]
	if !ok || amount <= 0 {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: no midtrans amount for %s", domain.ErrInvalidPlan, PriceKey(plan.ID, interval))
	}

	orderID := fmt.Sprintf("sub-%s-%s-%s", plan.ID, interval, uuid.NewString())
	resp, mErr := p.snap.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    PriceKey(plan.ID, interval),
				Name:  plan.Name,
				Price: amount,
				Qty:   1,
			},
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
	})
	if mErr != nil {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: %s", domain.ErrCheckoutFailed, mErr.GetMessage())
	}
	if resp == nil || resp.RedirectURL == "" {
		return domain.CheckoutResponse{}, fmt.Errorf("%w: empty snap response", domain.ErrCheckoutFailed)
	}

	p.logger.Info("midtrans transaction created", zap.String("order_id", orderID), zap.Int64("amount", amount))
	return domain.CheckoutResponse{
		SessionID: orderID,
		URL:       resp.RedirectURL,
	}, nil
}

// ParseWebhook verifies the signature_key carried in the notification body.
// The signature argument is ignored since Midtrans sends no header.
func (p *midtransProcessor) ParseWebhook(payload []byte, _ string) (domain.WebhookEvent, error) {
	var n midtransNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return domain.WebhookEvent{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	if n.SignatureKey == "" {
		return domain.WebhookEvent{}, domain.ErrMissingSignature
	}
	expected := MidtransSignature(n.OrderID, n.StatusCode, n.GrossAmount, p.config.ServerKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return domain.WebhookEvent{}, domain.ErrInvalidSignature
	}

	event := domain.WebhookEvent{
		ID:       n.TransactionID,
		RawType:  n.TransactionStatus,
		ObjectID: n.OrderID,
	}
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "challenge" {
			event.Type = domain.EventPaymentFailed
			break
		}
		event.Type = domain.EventPaymentSucceeded
	case "settlement":
		event.Type = domain.EventCheckoutCompleted
		event.Subscription = &entities.UserSubscription{
			ID:     n.OrderID,
			PlanID: planFromOrderID(n.OrderID),
			Status: entities.SubscriptionActive,
		}
	case "deny", "cancel", "expire", "failure":
		event.Type = domain.EventPaymentFailed
	default:
		event.Type = domain.WebhookEventType(n.TransactionStatus)
	}
	return event, nil
}

// CancelSubscription only records the intent: Snap payments are one-off, so
// access simply runs out after the grace period.
func (p *midtransProcessor) CancelSubscription(_ context.Context, subscriptionID string) (Cancellation, error) {
	p.logger.Info("midtrans cancellation recorded", zap.String("subscription_id", subscriptionID))
	return graceCancellation(p.now()), nil
}

// MidtransSignature is SHA-512 over order id, status code, gross amount and
// server key, hex encoded.
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// planFromOrderID extracts the plan id from "sub-<plan>-<interval>-<uuid>".
func planFromOrderID(orderID string) string {
	parts := strings.SplitN(orderID, "-", 4)
	if len(parts) < 4 || parts[0] != "sub" {
		return ""
	}
	return parts[1]
}

// ParseAmount reads a configured amount, returning 0 for blank or bad input.
func ParseAmount(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
