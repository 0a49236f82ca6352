package recipe

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/gateway/gatewaytest"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/prompt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var profile = domain.UserProfile{
	Weight: 70,
	Height: 170,
	Age:    25,
	Gender: domain.GenderMale,
	Goal:   domain.GoalLose,
}

const omelette = `{
  "nome": "Omelete de espinafre",
  "descricao": "Omelete leve",
  "calorias": 520,
  "proteinas": 32,
  "carboidratos": 20,
  "gorduras": 30,
  "tempo_preparo": "15 minutos",
  "ingredientes": ["3 ovos", "1 xícara de espinafre"],
  "modo_preparo": ["Bata os ovos", "Refogue o espinafre", "Junte tudo"],
  "dica": "Use frigideira antiaderente"
}`

func newService(t *testing.T, replies ...gatewaytest.Reply) (RecipeService, *gatewaytest.Stub) {
	stub := gatewaytest.NewStub(replies...)
	return NewRecipeService(pipeline.NewPipeline(stub, nil, zaptest.NewLogger(t)), zaptest.NewLogger(t)), stub
}

func TestGenerateRecipe_TargetCaloriesPerMeal(t *testing.T) {
	tests := []struct {
		meal   domain.MealType
		target int
	}{
		{domain.MealBreakfast, 534},
		{domain.MealLunch, 747},
		{domain.MealSnack, 320},
		{domain.MealDinner, 534},
	}
	for _, tt := range tests {
		t.Run(string(tt.meal), func(t *testing.T) {
			svc, stub := newService(t, gatewaytest.Text(omelette))

			res, err := svc.GenerateRecipe(context.Background(), domain.GenerateRecipeRequest{MealType: tt.meal, UserProfile: profile})
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, tt.target, res.TargetCalories)
			assert.Equal(t, "Omelete de espinafre", res.Name)
			assert.Len(t, res.Instructions, 3)

			req := stub.LastRequest()
			assert.Equal(t, prompt.RecipeSystem, req.System)
			assert.Equal(t, gateway.RecipeMaxTokens, req.MaxTokens)
			assert.Equal(t, gateway.GenerativeTemperature, req.Temperature)
		})
	}
}

func TestGenerateRecipe_InvalidProfileSkipsModel(t *testing.T) {
	svc, stub := newService(t)

	bad := profile
	bad.Weight = 0
	res, err := svc.GenerateRecipe(context.Background(), domain.GenerateRecipeRequest{MealType: domain.MealLunch, UserProfile: bad})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.False(t, res.Success)
	assert.Equal(t, domain.MessageInvalidProfile, res.Error)
	assert.Empty(t, stub.Requests())
}

func TestGenerateRecipe_MissingFields(t *testing.T) {
	svc, _ := newService(t, gatewaytest.Text(`{"descricao": "sem nome"}`))

	res, err := svc.GenerateRecipe(context.Background(), domain.GenerateRecipeRequest{MealType: domain.MealDinner, UserProfile: profile})
	assert.ErrorIs(t, err, domain.ErrSchemaViolation)
	assert.False(t, res.Success)
	assert.Equal(t, 534, res.TargetCalories)
	assert.NotNil(t, res.Ingredients)
}
