package entities

type Recipe struct {
	Name         string   `json:"nome"`
	Description  string   `json:"descricao"`
	Calories     float64  `json:"calorias"`
	Protein      float64  `json:"proteinas"`
	Carbs        float64  `json:"carboidratos"`
	Fats         float64  `json:"gorduras"`
	PrepTime     string   `json:"tempo_preparo"`
	Ingredients  []string `json:"ingredientes"`
	Instructions []string `json:"modo_preparo"`
	ChefTip      string   `json:"dica"`
}
