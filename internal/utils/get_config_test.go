package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
APP_PORT: "8080"
AI_PROVIDER: "gemini"
AI_MAX_ATTEMPTS: 3
STRIPE_PRICES:
  PLUS_MONTHLY: "price_plus_m"
MIDTRANS_AMOUNTS:
  BASIC_YEARLY: "299000"
IsProd: true
`

func loadSample(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))
	LoadConfigFrom(path)
	t.Cleanup(func() { config = Config{} })
}

func TestGetConfig_FromYAML(t *testing.T) {
	loadSample(t)

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "gemini", GetConfig("AI_PROVIDER"))
	assert.Equal(t, "3", GetConfig("AI_MAX_ATTEMPTS"))
	assert.Equal(t, "price_plus_m", GetConfig("STRIPE_PRICE_PLUS_MONTHLY"))
	assert.Equal(t, "299000", GetConfig("MIDTRANS_AMOUNT_BASIC_YEARLY"))
	assert.Equal(t, "true", GetConfig("IsProd"))
	assert.Empty(t, GetConfig("STRIPE_PRICE_PLUS_YEARLY"))
	assert.Empty(t, GetConfig("NOT_A_KEY"))
}

func TestGetConfig_EnvironmentWins(t *testing.T) {
	loadSample(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STRIPE_PRICE_PLUS_MONTHLY", "price_env")

	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "price_env", GetConfig("STRIPE_PRICE_PLUS_MONTHLY"))
}

func TestGetConfigOr(t *testing.T) {
	loadSample(t)

	assert.Equal(t, "gemini", GetConfigOr("AI_PROVIDER", "openai"))
	assert.Equal(t, "info", GetConfigOr("LOG_LEVEL", "info"))
}

func TestLoadConfigFrom_MissingFileKeepsDefaults(t *testing.T) {
	config = Config{}
	LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Empty(t, GetConfig("AI_MAX_ATTEMPTS"))
	assert.Equal(t, "false", GetConfig("IsProd"))
}
