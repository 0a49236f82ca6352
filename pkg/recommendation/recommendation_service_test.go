package recommendation

import (
	"context"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/gateway/gatewaytest"
	"fitlens-backend/pkg/pipeline"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var profile = domain.UserProfile{
	Weight:        70,
	Height:        170,
	Age:           25,
	Gender:        domain.GenderMale,
	Goal:          domain.GoalLose,
	ActivityLevel: domain.ActivityModerate,
}

const plan = `{
  "mealPlan": {"breakfast": ["Aveia (150 kcal)"], "lunch": ["Frango (250 kcal)"], "dinner": ["Peixe (200 kcal)"], "snacks": ["Maçã (80 kcal)"]},
  "shoppingList": ["Aveia", "Frango"],
  "workout": {"type": "Treino para Emagrecimento", "exercises": [{"name": "Burpee", "sets": 3, "reps": "12", "rest": "45s"}], "duration": "40 minutos"},
  "motivationalTips": ["Beba água"]
}`

func newService(t *testing.T, replies ...gatewaytest.Reply) (RecommendationService, *gatewaytest.Stub) {
	stub := gatewaytest.NewStub(replies...)
	return NewRecommendationService(pipeline.NewPipeline(stub, nil, zaptest.NewLogger(t)), zaptest.NewLogger(t)), stub
}

func TestGenerateRecommendations_Success(t *testing.T) {
	svc, stub := newService(t, gatewaytest.Text("```json\n"+plan+"\n```"))

	res, err := svc.GenerateRecommendations(context.Background(), domain.RecommendationRequest{
		UserProfile:  profile,
		FoodAnalysis: []entities.FoodItem{{Name: "Pizza", Calories: 800}},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"Aveia (150 kcal)"}, res.MealPlan.Breakfast)
	assert.Equal(t, "Treino para Emagrecimento", res.Workout.Type)
	require.Len(t, res.Workout.Exercises, 1)
	assert.Equal(t, 3, res.Workout.Exercises[0].Sets)

	req := stub.LastRequest()
	assert.Empty(t, req.ImageURL)
	assert.Equal(t, gateway.GenerativeTemperature, req.Temperature)
	assert.Equal(t, gateway.RecommendationMaxTokens, req.MaxTokens)
	assert.Contains(t, req.Prompt, "Pizza: 800kcal")
}

func TestGenerateRecommendations_FallsBackToDefaults(t *testing.T) {
	svc, _ := newService(t, gatewaytest.Text(`{"mealPlan": {}}`))

	res, err := svc.GenerateRecommendations(context.Background(), domain.RecommendationRequest{UserProfile: profile})
	assert.ErrorIs(t, err, domain.ErrSchemaViolation)
	assert.False(t, res.Success)
	assert.Equal(t, domain.MessageSchemaViolation, res.Error)
	assert.Equal(t, DefaultRecommendations(), res.PersonalizedRecommendations)
	assert.Equal(t, "Treino Funcional", res.Workout.Type)
}

func TestGenerateRecommendations_InvalidProfile(t *testing.T) {
	svc, stub := newService(t)

	bad := profile
	bad.Height = 0
	res, err := svc.GenerateRecommendations(context.Background(), domain.RecommendationRequest{UserProfile: bad})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.False(t, res.Success)
	assert.Empty(t, stub.Requests())
}

func TestGenerateRecommendations_NilListsBecomeEmpty(t *testing.T) {
	svc, _ := newService(t, gatewaytest.Text(`{"mealPlan": {"lunch": ["Arroz"]}, "workout": {"type": "Treino Funcional"}}`))

	res, err := svc.GenerateRecommendations(context.Background(), domain.RecommendationRequest{UserProfile: profile})
	require.NoError(t, err)
	assert.NotNil(t, res.MealPlan.Breakfast)
	assert.NotNil(t, res.MealPlan.Snacks)
	assert.NotNil(t, res.ShoppingList)
	assert.NotNil(t, res.Workout.Exercises)
}

func TestGenerateRecommendations_ToleratesSwappedScalarTypes(t *testing.T) {
	svc, _ := newService(t, gatewaytest.Text(`{
	  "mealPlan": {"breakfast": ["Ovos"], "lunch": ["Peixe"], "dinner": ["Sopa"], "snacks": ["Fruta"]},
	  "workout": {"type": "Força", "duration": "45 minutos", "exercises": [{"name": "Supino", "sets": "4", "reps": 12, "rest": "90s"}]}
	}`))

	res, err := svc.GenerateRecommendations(context.Background(), domain.RecommendationRequest{UserProfile: profile})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Workout.Exercises, 1)
	assert.Equal(t, 4, res.Workout.Exercises[0].Sets)
	assert.Equal(t, "12", res.Workout.Exercises[0].Reps)
	assert.NotNil(t, res.ShoppingList)
}
