package domain

import (
	"fitlens-backend/entities"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageFailedGenerateRecipe  = "Não foi possível gerar a receita"
	MessageMealTypeNotProvided   = "Tipo de refeição não fornecido"
)

type (
	GenerateRecipeRequest struct {
		MealType    MealType    `json:"mealType" validate:"required,oneof=breakfast lunch snack dinner"`
		UserProfile UserProfile `json:"userProfile"`
	}

	RecipeResult struct {
		Success        bool   `json:"success"`
		Error          string `json:"error,omitempty"`
		TargetCalories int    `json:"targetCalories"`
		entities.Recipe
	}
)

func NewRecipeFailure(message string, targetCalories int) RecipeResult {
	return RecipeResult{
		Success:        false,
		Error:          message,
		TargetCalories: targetCalories,
		Recipe: entities.Recipe{
			Ingredients:  []string{},
			Instructions: []string{},
		},
	}
}
