package prompt

import (
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/nutrition"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profile = domain.UserProfile{
	Weight:        70,
	Height:        170,
	Age:           25,
	Gender:        domain.GenderMale,
	Goal:          domain.GoalLose,
	ActivityLevel: domain.ActivityModerate,
	TargetWeight:  65.5,
}

func TestTemplate_RenderOmitsEmptyParts(t *testing.T) {
	out := Template{
		Persona:  "Persona.",
		Sections: []Section{{Title: "VAZIO"}, {Title: "CHEIO", Lines: []string{"a"}}},
	}.Render()

	assert.Equal(t, "Persona.\n\nCHEIO:\n- a", out)
}

func TestTemplate_SchemaAddsJSONOnlyRule(t *testing.T) {
	out := Template{Persona: "P.", Schema: `{"a":1}`}.Render()
	assert.Contains(t, out, "RETORNE EXATAMENTE NESTE FORMATO JSON")
	assert.Contains(t, out, `{"a":1}`)
	assert.True(t, strings.HasSuffix(out, jsonOnlyRule))
}

func TestFoodAnalysis(t *testing.T) {
	withProfile := FoodAnalysis(&profile, "")
	assert.Contains(t, withProfile, "PERFIL DO USUÁRIO")
	assert.Contains(t, withProfile, "Objetivo: Perder peso")
	assert.Contains(t, withProfile, "Sexo: Masculino")
	assert.Contains(t, withProfile, "Nível de atividade: Moderadamente ativo")
	assert.Contains(t, withProfile, `"alimentos": [`)
	assert.Contains(t, withProfile, `"success": false`)
	assert.NotContains(t, withProfile, "OBJETIVO DO USUÁRIO")

	goalOnly := FoodAnalysis(nil, domain.GoalGain)
	assert.NotContains(t, goalOnly, "PERFIL DO USUÁRIO")
	assert.Contains(t, goalOnly, "Objetivo: Ganhar massa muscular")

	bare := FoodAnalysis(nil, "")
	assert.NotContains(t, bare, "Objetivo:")
}

func TestBodyAnalysis_EvolutionOnlyWithPreviousSnapshot(t *testing.T) {
	first := BodyAnalysis(&profile, nil)
	assert.Contains(t, first, `"analise_corporal"`)
	assert.NotContains(t, first, `"evolution"`)
	assert.NotContains(t, first, "ANÁLISE ANTERIOR")

	previous := &entities.BodyComposition{
		BodyFatPercentage: 22.5,
		LeanMass:          58,
		Measurements:      entities.BodyMeasurements{Waist: 88},
	}
	again := BodyAnalysis(&profile, previous)
	assert.Contains(t, again, `"evolution"`)
	assert.Contains(t, again, "ANÁLISE ANTERIOR")
	assert.Contains(t, again, "Gordura corporal: 22.5%")
	assert.Contains(t, again, "cintura 88")
}

func TestRecommendations(t *testing.T) {
	foods := []entities.FoodItem{{Name: "Arroz", Calories: 200, Macros: entities.Macros{Protein: 4, Carbs: 44, Fats: 0.5}}}
	body := &entities.BodyComposition{BodyFatPercentage: 18, Posture: entities.Posture{Status: entities.PostureGood}}

	out := Recommendations(profile, foods, body)
	assert.Contains(t, out, "Objetivo: perder peso e reduzir gordura corporal")
	assert.Contains(t, out, "Arroz: 200kcal (P:4g C:44g G:0.5g)")
	assert.Contains(t, out, "Postura: good")
	assert.Contains(t, out, `"type": "Treino para Emagrecimento"`)
	assert.Contains(t, out, "Calorias diárias recomendadas: 2135 kcal")
	assert.NotContains(t, out, "{{workout_type}}")

	noExtras := Recommendations(profile, nil, nil)
	assert.NotContains(t, noExtras, "ÚLTIMA REFEIÇÃO ANALISADA")
	assert.NotContains(t, noExtras, "ANÁLISE CORPORAL ATUAL")
}

func TestWorkoutType(t *testing.T) {
	assert.Equal(t, "Treino de Hipertrofia", WorkoutType(domain.GoalGain))
	assert.Equal(t, "Treino para Emagrecimento", WorkoutType(domain.GoalLose))
	assert.Equal(t, "Treino Funcional", WorkoutType(domain.GoalTone))
}

func TestRecipe(t *testing.T) {
	system, user := Recipe(domain.MealLunch, 747, domain.GoalTone)
	assert.Equal(t, RecipeSystem, system)
	assert.True(t, strings.HasPrefix(user, "Crie uma receita de Almoço com aproximadamente 747 calorias."))
	assert.Contains(t, user, "Definir e tonificar")
	assert.Contains(t, user, `"modo_preparo"`)
}

func TestCoachSystem(t *testing.T) {
	m, err := nutrition.Compute(profile)
	require.NoError(t, err)

	out := CoachSystem(profile, m)
	assert.Contains(t, out, "IMC atual: 24.2")
	assert.Contains(t, out, "TMB: 1700 kcal")
	assert.Contains(t, out, "Calorias diárias recomendadas: 2135 kcal")
	assert.Contains(t, out, "Peso desejado: 65.5kg")
	assert.NotContains(t, out, "RETORNE EXATAMENTE")

	profile := profile
	profile.TargetWeight = 0
	assert.NotContains(t, CoachSystem(profile, m), "Peso desejado")
}
