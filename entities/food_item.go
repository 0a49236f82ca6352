package entities

type FoodItem struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Portion      string  `json:"portion"`
	PortionGrams float64 `json:"portionGrams"`
	Calories     float64 `json:"calories"`
	Macros       Macros  `json:"macros"`
	Micros       Micros  `json:"micros"`
	Confidence   float64 `json:"confidence"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type Micros struct {
	Fiber  float64 `json:"fiber"`
	Sugar  float64 `json:"sugar"`
	Sodium float64 `json:"sodium"`
}

// NutrientTotals is the per-field sum over every detected FoodItem.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (t *NutrientTotals) Add(item FoodItem) {
	t.Calories += item.Calories
	t.Protein += item.Macros.Protein
	t.Carbs += item.Macros.Carbs
	t.Fats += item.Macros.Fats
	t.Fiber += item.Micros.Fiber
	t.Sugar += item.Micros.Sugar
	t.Sodium += item.Micros.Sodium
}
