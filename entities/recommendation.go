package entities

type MealPlan struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

type Workout struct {
	Type      string     `json:"type"`
	Exercises []Exercise `json:"exercises"`
	Duration  string     `json:"duration"`
}

type PersonalizedRecommendations struct {
	MealPlan         MealPlan `json:"mealPlan"`
	ShoppingList     []string `json:"shoppingList"`
	Workout          Workout  `json:"workout"`
	MotivationalTips []string `json:"motivationalTips"`
}
