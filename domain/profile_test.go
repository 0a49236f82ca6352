package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoal(t *testing.T) {
	tests := map[string]Goal{
		"lose":          GoalLose,
		"emagrecimento": GoalLose,
		"Hipertrofia":   GoalGain,
		" saúde ":       GoalMaintain,
		"saude":         GoalMaintain,
		"tone":          GoalTone,
	}
	for in, want := range tests {
		got, err := ParseGoal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseGoal("voar")
	assert.True(t, errors.Is(err, ErrInvalidGoal))
}

func TestParseMealType(t *testing.T) {
	for in, want := range map[string]MealType{
		"Café da Manhã": MealBreakfast,
		"almoco":        MealLunch,
		"Lanche":        MealSnack,
		"dinner":        MealDinner,
	} {
		got, err := ParseMealType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMealType("ceia")
	assert.ErrorIs(t, err, ErrInvalidMealType)
}

func TestUserProfileUnmarshalCanonicalizesGoal(t *testing.T) {
	var p UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"weight":70,"height":170,"age":25,"gender":"male","goal":"hipertrofia"}`), &p))
	assert.Equal(t, GoalGain, p.Goal)
	assert.Equal(t, "Ganhar massa muscular", p.Goal.Label())

	err := json.Unmarshal([]byte(`{"goal":"voar"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Manter peso", Goal("").Label())
	assert.Equal(t, "melhorar saúde geral e bem-estar", Goal("x").Description())
	assert.Equal(t, "Masculino", GenderMale.Label())
	assert.Equal(t, "Feminino", GenderFemale.Label())
	assert.Equal(t, "Não informado", ActivityLevel("").Label())
	assert.Equal(t, "Almoço", MealLunch.Label())
}

func TestUserProfileCheck(t *testing.T) {
	valid := UserProfile{Weight: 70, Height: 170, Age: 25, Gender: GenderMale, Goal: GoalLose}
	assert.NoError(t, valid.Check())

	for name, p := range map[string]UserProfile{
		"zero weight": {Height: 170, Age: 25, Gender: GenderMale},
		"zero height": {Weight: 70, Age: 25, Gender: GenderMale},
		"zero age":    {Weight: 70, Height: 170, Gender: GenderMale},
		"gender":      {Weight: 70, Height: 170, Age: 25, Gender: "x"},
	} {
		assert.ErrorIs(t, p.Check(), ErrInvalidProfile, name)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, MessageProviderFailure, UserMessage(ErrEmptyResponse))
	assert.Equal(t, MessageMalformedResponse, UserMessage(ErrMalformedResponse))
	assert.Equal(t, MessageSchemaViolation, UserMessage(ErrSchemaViolation))
	assert.Equal(t, MessageUnknownAnalysisErr, UserMessage(errors.New("boom")))
}
