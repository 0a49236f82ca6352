package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type (
	Goal          string
	Gender        string
	ActivityLevel string
	MealType      string
)

const (
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
	GoalTone     Goal = "tone"
	GoalMaintain Goal = "maintain"

	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"

	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

// goalAliases is the only place where the legacy goal vocabulary is
// translated into the canonical enum.
var goalAliases = map[string]Goal{
	"lose":          GoalLose,
	"gain":          GoalGain,
	"tone":          GoalTone,
	"maintain":      GoalMaintain,
	"emagrecimento": GoalLose,
	"hipertrofia":   GoalGain,
	"saude":         GoalMaintain,
	"saúde":         GoalMaintain,
}

var goalLabels = map[Goal]string{
	GoalLose:     "Perder peso",
	GoalGain:     "Ganhar massa muscular",
	GoalTone:     "Definir e tonificar",
	GoalMaintain: "Manter peso",
}

var goalDescriptions = map[Goal]string{
	GoalLose:     "perder peso e reduzir gordura corporal",
	GoalGain:     "ganhar massa muscular e força",
	GoalTone:     "definir e tonificar a musculatura",
	GoalMaintain: "melhorar saúde geral e bem-estar",
}

var activityLabels = map[ActivityLevel]string{
	ActivitySedentary:  "Sedentário",
	ActivityLight:      "Levemente ativo",
	ActivityModerate:   "Moderadamente ativo",
	ActivityActive:     "Ativo",
	ActivityVeryActive: "Muito ativo",
}

var mealAliases = map[string]MealType{
	"breakfast":     MealBreakfast,
	"lunch":         MealLunch,
	"snack":         MealSnack,
	"dinner":        MealDinner,
	"café da manhã": MealBreakfast,
	"cafe da manha": MealBreakfast,
	"almoço":        MealLunch,
	"almoco":        MealLunch,
	"lanche":        MealSnack,
	"jantar":        MealDinner,
}

var mealLabels = map[MealType]string{
	MealBreakfast: "Café da Manhã",
	MealLunch:     "Almoço",
	MealSnack:     "Lanche",
	MealDinner:    "Jantar",
}

func ParseGoal(s string) (Goal, error) {
	g, ok := goalAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
	}
	return g, nil
}

func (g *Goal) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*g = ""
		return nil
	}
	parsed, err := ParseGoal(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Label is the display string shown to the user and embedded in prompts.
func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return goalLabels[GoalMaintain]
}

// Description phrases the goal as an objective ("perder peso e ...").
func (g Goal) Description() string {
	if d, ok := goalDescriptions[g]; ok {
		return d
	}
	return goalDescriptions[GoalMaintain]
}

func (g Gender) Label() string {
	if g == GenderMale {
		return "Masculino"
	}
	return "Feminino"
}

func (a ActivityLevel) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return "Não informado"
}

func ParseMealType(s string) (MealType, error) {
	m, ok := mealAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMealType, s)
	}
	return m, nil
}

func (m *MealType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*m = ""
		return nil
	}
	parsed, err := ParseMealType(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MealType) Label() string {
	return mealLabels[m]
}

type UserProfile struct {
	Weight        float64       `json:"weight" validate:"required,gt=0"`
	Height        float64       `json:"height" validate:"required,gt=0"`
	Age           int           `json:"age" validate:"required,gt=0"`
	Gender        Gender        `json:"gender" validate:"required,oneof=male female"`
	Goal          Goal          `json:"goal" validate:"required,oneof=lose gain tone maintain"`
	ActivityLevel ActivityLevel `json:"activityLevel,omitempty" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	TargetWeight  float64       `json:"targetWeight,omitempty" validate:"omitempty,gt=0"`
}

// Check reports whether the numeric fields can feed the calorie formulas.
func (p UserProfile) Check() error {
	switch {
	case !(p.Weight > 0):
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	case !(p.Height > 0):
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	case p.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	case p.Gender != GenderMale && p.Gender != GenderFemale:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, p.Gender)
	}
	return nil
}
