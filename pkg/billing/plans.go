package billing

import (
	"fitlens-backend/entities"
	"fmt"
	"math"
	"slices"
	"strings"
)

const Currency = "BRL"

var plans = []entities.Plan{
	{
		ID:       "basic",
		Name:     "Básico",
		Price:    29.90,
		Currency: Currency,
		Interval: entities.IntervalMonth,
		Features: []string{
			"Reconhecimento de alimentos por foto",
			"Cálculo de calorias e macros",
			"IMC e TMB automático",
			"Receitas simples",
			"Suporte por email",
		},
		Access: []entities.Feature{
			entities.FeatureFoodRecognition,
		},
	},
	{
		ID:       "plus",
		Name:     "Plus",
		Price:    49.90,
		Currency: Currency,
		Interval: entities.IntervalMonth,
		Popular:  true,
		Features: []string{
			"Tudo do Básico +",
			"Análise corporal com IA",
			"Evolução semanal",
			"Receitas completas",
			"Treinos personalizados",
			"Chat com Coach IA (limitado)",
			"Relatórios mensais",
		},
		Access: []entities.Feature{
			entities.FeatureFoodRecognition,
			entities.FeatureBodyAnalysis,
			entities.FeatureWorkouts,
			entities.FeatureRecipes,
		},
	},
	{
		ID:       "premium",
		Name:     "Premium",
		Price:    79.90,
		Currency: Currency,
		Interval: entities.IntervalMonth,
		Features: []string{
			"Tudo do Plus +",
			"Acesso total ilimitado",
			"Treinos completos em vídeo",
			"Receitas criadas por IA",
			"Relatórios semanais detalhados",
			"Chat ilimitado com Coach IA",
			"Planos 100% personalizados",
			"Suporte prioritário 24/7",
			"Análise de postura",
			"Comparação de evolução",
		},
		Access: []entities.Feature{
			entities.FeatureFoodRecognition,
			entities.FeatureBodyAnalysis,
			entities.FeatureAIChat,
			entities.FeatureWorkouts,
			entities.FeatureRecipes,
			entities.FeatureReports,
		},
	},
}

var allFeatures = []entities.Feature{
	entities.FeatureFoodRecognition,
	entities.FeatureBodyAnalysis,
	entities.FeatureWorkouts,
	entities.FeatureRecipes,
	entities.FeatureAIChat,
	entities.FeatureReports,
}

// Plans returns a deep copy of the catalog; callers may modify it freely.
func Plans() []entities.Plan {
	out := make([]entities.Plan, len(plans))
	for i, p := range plans {
		out[i] = clonePlan(p)
	}
	return out
}

func FindPlan(id string) (entities.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return clonePlan(p), true
		}
	}
	return entities.Plan{}, false
}

func clonePlan(p entities.Plan) entities.Plan {
	p.Features = slices.Clone(p.Features)
	p.Access = slices.Clone(p.Access)
	return p
}

func HasFeatureAccess(planID string, feature entities.Feature) bool {
	p, ok := FindPlan(planID)
	if !ok {
		return false
	}
	for _, f := range p.Access {
		if f == feature {
			return true
		}
	}
	return false
}

// AccessMap lists every known feature with whether the plan unlocks it.
func AccessMap(planID string) map[string]bool {
	m := make(map[string]bool, len(allFeatures))
	for _, f := range allFeatures {
		m[string(f)] = HasFeatureAccess(planID, f)
	}
	return m
}

// FormatPrice renders a BRL amount the pt-BR way, e.g. "R$ 1.234,50".
func FormatPrice(price float64) string {
	cents := int64(math.Round(price * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := fmt.Sprintf("%d", cents/100)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}

// YearlyDiscount prices a year as ten months. It returns the yearly price
// and the discount in whole percent.
func YearlyDiscount(monthly float64) (float64, int) {
	yearly := monthly * 10
	full := monthly * 12
	if full == 0 {
		return 0, 0
	}
	return math.Round(yearly*100) / 100, int(math.Round((full - yearly) / full * 100))
}

// PriceKey is the lookup key of a plan and interval pair, e.g. "basic-month".
func PriceKey(planID string, interval entities.BillingInterval) string {
	return planID + "-" + string(interval)
}

// configSuffix maps a price key to the suffix used by the configuration
// keys, e.g. "BASIC_MONTHLY".
func configSuffix(planID string, interval entities.BillingInterval) string {
	period := "MONTHLY"
	if interval == entities.IntervalYear {
		period = "YEARLY"
	}
	return strings.ToUpper(planID) + "_" + period
}

// ConfiguredValues collects one value per plan and interval, reading keys
// such as prefix+"BASIC_MONTHLY" through lookup. Blank values are skipped.
func ConfiguredValues(prefix string, lookup func(string) string) map[string]string {
	out := make(map[string]string)
	for _, p := range plans {
		for _, interval := range []entities.BillingInterval{entities.IntervalMonth, entities.IntervalYear} {
			if v := lookup(prefix + configSuffix(p.ID, interval)); v != "" {
				out[PriceKey(p.ID, interval)] = v
			}
		}
	}
	return out
}
