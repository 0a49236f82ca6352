package pipeline

import (
	"context"
	"errors"
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/internal/metrics"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/gateway/gatewaytest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recipePayload struct {
	Nome         string   `json:"nome"`
	Ingredientes []string `json:"ingredientes"`
	Calorias     float64  `json:"calorias"`
}

func TestExecute_Success(t *testing.T) {
	stub := gatewaytest.NewStub(gatewaytest.Text("```json\n{\"nome\":\"Omelete\",\"ingredientes\":[\"ovo\"],\"calorias\":320}\n```"))
	m := metrics.New()
	p := NewPipeline(stub, m, zaptest.NewLogger(t))

	var out recipePayload
	err := p.Execute(context.Background(), KindRecipe, gateway.Request{Prompt: "receita"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Omelete", out.Nome)
	assert.Equal(t, 320.0, out.Calorias)

	count, err := testutil.GatherAndCount(m.Registry, "fitlens_analyses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecute_ErrorKinds(t *testing.T) {
	tests := []struct {
		name  string
		reply gatewaytest.Reply
		want  error
	}{
		{"provider", gatewaytest.Fail(&gateway.ProviderError{Provider: "stub", Err: errors.New("401")}), domain.ErrProviderFailure},
		{"empty", gatewaytest.Fail(domain.ErrEmptyResponse), domain.ErrEmptyResponse},
		{"malformed", gatewaytest.Text("desculpe, não entendi"), domain.ErrMalformedResponse},
		{"schema", gatewaytest.Text(`{"titulo":"Omelete"}`), domain.ErrSchemaViolation},
		{"model reported", gatewaytest.Text(`{"success":false,"error":"Imagem muito escura"}`), domain.ErrModelReported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(gatewaytest.NewStub(tt.reply), nil, zaptest.NewLogger(t))

			var out recipePayload
			err := p.Execute(context.Background(), KindRecipe, gateway.Request{}, &out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_MistypedLeavesDoNotFail(t *testing.T) {
	stub := gatewaytest.NewStub(
		gatewaytest.Text(`{"nome":"Omelete","ingredientes":["ovo"],"calorias":"muitas"}`),
		gatewaytest.Text(`{"nome":"Omelete","ingredientes":["ovo"],"calorias":"250"}`),
	)
	p := NewPipeline(stub, nil, zaptest.NewLogger(t))

	var out recipePayload
	require.NoError(t, p.Execute(context.Background(), KindRecipe, gateway.Request{}, &out))
	assert.Equal(t, "Omelete", out.Nome)
	assert.Equal(t, []string{"ovo"}, out.Ingredientes)
	assert.Zero(t, out.Calorias)

	out = recipePayload{}
	require.NoError(t, p.Execute(context.Background(), KindRecipe, gateway.Request{}, &out))
	assert.Equal(t, 250.0, out.Calorias)
}

func TestExecute_RecommendationsWithSwappedScalarTypes(t *testing.T) {
	const reply = `{
	  "mealPlan": {"breakfast": ["Aveia"], "lunch": ["Frango"], "dinner": "Sopa", "snacks": []},
	  "shoppingList": ["aveia"],
	  "workout": {"type": "Treino", "duration": 40, "exercises": [
	    {"name": "Agachamento", "sets": "4", "reps": 12, "rest": "60s"},
	    {"name": "Prancha", "sets": 3, "reps": "30 segundos", "rest": 30}
	  ]},
	  "motivationalTips": ["Constância"]
	}`
	p := NewPipeline(gatewaytest.NewStub(gatewaytest.Text(reply)), nil, zaptest.NewLogger(t))

	var out entities.PersonalizedRecommendations
	require.NoError(t, p.Execute(context.Background(), KindRecommendations, gateway.Request{JSONMode: true}, &out))

	require.Len(t, out.Workout.Exercises, 2)
	assert.Equal(t, 4, out.Workout.Exercises[0].Sets)
	assert.Equal(t, "12", out.Workout.Exercises[0].Reps)
	assert.Equal(t, "30", out.Workout.Exercises[1].Rest)
	assert.Equal(t, "40", out.Workout.Duration)
	assert.Equal(t, []string{"Sopa"}, out.MealPlan.Dinner)
}

func TestExecute_ModelFailureIsDecodedIntoOut(t *testing.T) {
	type foodOut struct {
		Success   bool     `json:"success"`
		Error     string   `json:"error"`
		Alimentos []string `json:"alimentos"`
	}
	stub := gatewaytest.NewStub(gatewaytest.Text(`{"success":false,"error":"Nenhum alimento detectado na imagem","alimentos":[]}`))
	p := NewPipeline(stub, nil, zaptest.NewLogger(t))

	var out foodOut
	err := p.Execute(context.Background(), KindFood, gateway.Request{JSONMode: true}, &out)

	var failure *ModelFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Nenhum alimento detectado na imagem", failure.Message)
	assert.False(t, out.Success)
	assert.Equal(t, "Nenhum alimento detectado na imagem", out.Error)
	assert.NotNil(t, out.Alimentos)
}

func TestText(t *testing.T) {
	stub := gatewaytest.NewStub(gatewaytest.Text("Beba água!"), gatewaytest.Fail(domain.ErrEmptyResponse))
	p := NewPipeline(stub, metrics.New(), zaptest.NewLogger(t))

	text, err := p.Text(context.Background(), KindChat, gateway.Request{Prompt: "dica?"})
	require.NoError(t, err)
	assert.Equal(t, "Beba água!", text)

	_, err = p.Text(context.Background(), KindChat, gateway.Request{Prompt: "outra?"})
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
	assert.Equal(t, "stub", p.Provider())
}
