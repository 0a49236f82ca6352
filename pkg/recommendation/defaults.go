package recommendation

import (
	"fitlens-backend/entities"
)

// DefaultRecommendations is the generic plan served when the model cannot
// produce a personalized one.
func DefaultRecommendations() entities.PersonalizedRecommendations {
	return entities.PersonalizedRecommendations{
		MealPlan: entities.MealPlan{
			Breakfast: []string{
				"3 ovos mexidos (210 kcal)",
				"2 fatias de pão integral (140 kcal)",
				"1 fruta (80 kcal)",
			},
			Lunch: []string{
				"150g de proteína magra (200 kcal)",
				"1 xícara de arroz integral (215 kcal)",
				"Salada verde (50 kcal)",
			},
			Dinner: []string{
				"150g de peixe ou frango (200 kcal)",
				"Vegetais variados (100 kcal)",
			},
			Snacks: []string{
				"Iogurte natural (120 kcal)",
				"Frutas (80 kcal)",
			},
		},
		ShoppingList: []string{
			"Ovos",
			"Peito de frango",
			"Peixe",
			"Arroz integral",
			"Vegetais variados",
			"Frutas",
			"Pão integral",
			"Iogurte natural",
		},
		Workout: entities.Workout{
			Type: "Treino Funcional",
			Exercises: []entities.Exercise{
				{Name: "Agachamento", Sets: 3, Reps: "15", Rest: "60s"},
				{Name: "Flexão", Sets: 3, Reps: "12", Rest: "60s"},
				{Name: "Prancha", Sets: 3, Reps: "30s", Rest: "45s"},
			},
			Duration: "30 minutos",
		},
		MotivationalTips: []string{
			"Consistência é a chave do sucesso!",
			"Cada dia é uma nova oportunidade de melhorar",
			"Foque no progresso, não na perfeição",
		},
	}
}
