package billing

import (
	"fitlens-backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		29.90:   "R$ 29,90",
		49.9:    "R$ 49,90",
		0:       "R$ 0,00",
		1234.5:  "R$ 1.234,50",
		1000000: "R$ 1.000.000,00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPrice(in))
	}
}

func TestHasFeatureAccess(t *testing.T) {
	assert.True(t, HasFeatureAccess("basic", entities.FeatureFoodRecognition))
	assert.False(t, HasFeatureAccess("basic", entities.FeatureBodyAnalysis))
	assert.True(t, HasFeatureAccess("plus", entities.FeatureRecipes))
	assert.False(t, HasFeatureAccess("plus", entities.FeatureAIChat))
	assert.True(t, HasFeatureAccess("premium", entities.FeatureReports))
	assert.False(t, HasFeatureAccess("gold", entities.FeatureFoodRecognition))
}

func TestAccessMapListsEveryFeature(t *testing.T) {
	m := AccessMap("plus")
	assert.Len(t, m, 6)
	assert.True(t, m["body_analysis"])
	assert.False(t, m["reports"])
}

func TestYearlyDiscount(t *testing.T) {
	yearly, discount := YearlyDiscount(29.90)
	assert.InDelta(t, 299.0, yearly, 1e-9)
	assert.Equal(t, 17, discount)
}

func TestPlansOnlyPlusIsPopular(t *testing.T) {
	var popular []string
	for _, p := range Plans() {
		assert.Equal(t, Currency, p.Currency)
		if p.Popular {
			popular = append(popular, p.ID)
		}
	}
	assert.Equal(t, []string{"plus"}, popular)
}

func TestConfigSuffix(t *testing.T) {
	assert.Equal(t, "basic-month", PriceKey("basic", entities.IntervalMonth))
	assert.Equal(t, "PREMIUM_YEARLY", configSuffix("premium", entities.IntervalYear))
	assert.Equal(t, "PLUS_MONTHLY", configSuffix("plus", entities.IntervalMonth))
}

func TestConfiguredValues(t *testing.T) {
	lookup := func(key string) string {
		return map[string]string{
			"STRIPE_PRICE_BASIC_MONTHLY":  "price_basic_m",
			"STRIPE_PRICE_PREMIUM_YEARLY": "price_premium_y",
		}[key]
	}

	got := ConfiguredValues("STRIPE_PRICE_", lookup)
	assert.Equal(t, map[string]string{
		"basic-month":  "price_basic_m",
		"premium-year": "price_premium_y",
	}, got)
}

func TestPlansReturnsIndependentCopies(t *testing.T) {
	first := Plans()
	first[0].Features[0] = "alterado"
	first[0].Access[0] = entities.FeatureReports
	first[0].Access = append(first[0].Access, entities.FeatureAIChat)

	second := Plans()
	assert.NotEqual(t, "alterado", second[0].Features[0])
	assert.False(t, HasFeatureAccess("basic", entities.FeatureAIChat))
	assert.True(t, HasFeatureAccess("basic", entities.FeatureFoodRecognition))

	p, ok := FindPlan("plus")
	assert.True(t, ok)
	p.Features[0] = "alterado"
	again, _ := FindPlan("plus")
	assert.NotEqual(t, "alterado", again.Features[0])
}
