package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort       string `yaml:"APP_PORT"`
	AppURL        string `yaml:"APP_URL"`
	AppEnv        string `yaml:"APP_ENV"`
	AccessLogFile string `yaml:"ACCESS_LOG_FILE"`

	// Logging configuration
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// AI provider configuration
	AIProvider    string `yaml:"AI_PROVIDER"`
	AIMaxAttempts int    `yaml:"AI_MAX_ATTEMPTS"`
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"OPENAI_MODEL"`
	OpenAIBaseURL string `yaml:"OPENAI_BASE_URL"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Billing configuration
	BillingProvider string `yaml:"BILLING_PROVIDER"`

	// Stripe configuration
	StripeSecretKey     string `yaml:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET"`
	StripePrices        struct {
		BasicMonthly   string `yaml:"BASIC_MONTHLY"`
		BasicYearly    string `yaml:"BASIC_YEARLY"`
		PlusMonthly    string `yaml:"PLUS_MONTHLY"`
		PlusYearly     string `yaml:"PLUS_YEARLY"`
		PremiumMonthly string `yaml:"PREMIUM_MONTHLY"`
		PremiumYearly  string `yaml:"PREMIUM_YEARLY"`
	} `yaml:"STRIPE_PRICES"`

	// Midtrans configuration
	ClientKey       string `yaml:"CLIENT_KEY"`
	ServerKey       string `yaml:"SERVER_KEY"`
	IsProd          bool   `yaml:"IsProd"`
	MidtransAmounts struct {
		BasicMonthly   string `yaml:"BASIC_MONTHLY"`
		BasicYearly    string `yaml:"BASIC_YEARLY"`
		PlusMonthly    string `yaml:"PLUS_MONTHLY"`
		PlusYearly     string `yaml:"PLUS_YEARLY"`
		PremiumMonthly string `yaml:"PREMIUM_MONTHLY"`
		PremiumYearly  string `yaml:"PREMIUM_YEARLY"`
	} `yaml:"MIDTRANS_AMOUNTS"`
}

var config Config

// LoadConfig reads .env (if present) and then config.yaml. Environment
// variables always win over the yaml file, see GetConfig.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

func LoadConfigFrom(path string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
	config = loaded
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "APP_ENV":
		return config.AppEnv
	case "ACCESS_LOG_FILE":
		return config.AccessLogFile
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "AI_PROVIDER":
		return config.AIProvider
	case "AI_MAX_ATTEMPTS":
		if config.AIMaxAttempts == 0 {
			return ""
		}
		return strconv.Itoa(config.AIMaxAttempts)
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		return config.OpenAIModel
	case "OPENAI_BASE_URL":
		return config.OpenAIBaseURL
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "BILLING_PROVIDER":
		return config.BillingProvider
	case "STRIPE_SECRET_KEY":
		return config.StripeSecretKey
	case "STRIPE_WEBHOOK_SECRET":
		return config.StripeWebhookSecret
	case "STRIPE_PRICE_BASIC_MONTHLY":
		return config.StripePrices.BasicMonthly
	case "STRIPE_PRICE_BASIC_YEARLY":
		return config.StripePrices.BasicYearly
	case "STRIPE_PRICE_PLUS_MONTHLY":
		return config.StripePrices.PlusMonthly
	case "STRIPE_PRICE_PLUS_YEARLY":
		return config.StripePrices.PlusYearly
	case "STRIPE_PRICE_PREMIUM_MONTHLY":
		return config.StripePrices.PremiumMonthly
	case "STRIPE_PRICE_PREMIUM_YEARLY":
		return config.StripePrices.PremiumYearly
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		if config.IsProd {
			return "true"
		}
		return "false"
	case "MIDTRANS_AMOUNT_BASIC_MONTHLY":
		return config.MidtransAmounts.BasicMonthly
	case "MIDTRANS_AMOUNT_BASIC_YEARLY":
		return config.MidtransAmounts.BasicYearly
	case "MIDTRANS_AMOUNT_PLUS_MONTHLY":
		return config.MidtransAmounts.PlusMonthly
	case "MIDTRANS_AMOUNT_PLUS_YEARLY":
		return config.MidtransAmounts.PlusYearly
	case "MIDTRANS_AMOUNT_PREMIUM_MONTHLY":
		return config.MidtransAmounts.PremiumMonthly
	case "MIDTRANS_AMOUNT_PREMIUM_YEARLY":
		return config.MidtransAmounts.PremiumYearly
	default:
		return ""
	}
}

// GetConfigOr returns fallback when key is unset in both env and yaml.
func GetConfigOr(key, fallback string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return fallback
}
