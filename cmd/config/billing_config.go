package config

import (
	"fitlens-backend/internal/utils"
	"fitlens-backend/pkg/billing"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// ConnectBilling returns the processor selected by BILLING_PROVIDER. A nil
// processor without error means billing is disabled and the billing routes
// answer with ErrBillingNotConfigured.
func ConnectBilling(logger *zap.Logger) (billing.Processor, error) {
	switch provider := strings.ToLower(utils.GetConfigOr("BILLING_PROVIDER", "stripe")); provider {
	case "stripe":
		secret := utils.GetConfig("STRIPE_SECRET_KEY")
		if secret == "" {
			logger.Warn("STRIPE_SECRET_KEY is not set, billing disabled")
			return nil, nil
		}
		backends := &stripe.Backends{
			API:     stripe.GetBackend(stripe.APIBackend),
			Connect: stripe.GetBackend(stripe.ConnectBackend),
			Uploads: stripe.GetBackend(stripe.UploadsBackend),
		}
		return billing.NewStripeProcessor(billing.StripeConfig{
			SecretKey:     secret,
			WebhookSecret: utils.GetConfig("STRIPE_WEBHOOK_SECRET"),
			AppURL:        utils.GetConfigOr("APP_URL", "http://localhost:3000"),
			Prices:        billing.ConfiguredValues("STRIPE_PRICE_", utils.GetConfig),
		}, backends, logger), nil
	case "midtrans":
		serverKey := utils.GetConfig("SERVER_KEY")
		if serverKey == "" {
			logger.Warn("SERVER_KEY is not set, billing disabled")
			return nil, nil
		}
		amounts := make(map[string]int64)
		for key, raw := range billing.ConfiguredValues("MIDTRANS_AMOUNT_", utils.GetConfig) {
			if v := billing.ParseAmount(raw); v > 0 {
				amounts[key] = v
			}
		}
		return billing.NewMidtransProcessor(billing.MidtransConfig{
			ServerKey:  serverKey,
			Production: utils.GetConfig("IsProd") == "true",
			Amounts:    amounts,
		}, logger), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown BILLING_PROVIDER %q", provider)
	}
}
