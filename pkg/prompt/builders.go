package prompt

import (
	"fitlens-backend/domain"
	"fitlens-backend/entities"
	"fitlens-backend/pkg/nutrition"
	"fmt"
	"strconv"
	"strings"
)

const RecipeSystem = "Você é um chef nutricionista especializado em criar receitas saudáveis e balanceadas."

func profileLines(p *domain.UserProfile) []string {
	if p == nil {
		return nil
	}
	lines := []string{
		"Objetivo: " + p.Goal.Label(),
		"Peso: " + num(p.Weight) + "kg",
		"Altura: " + num(p.Height) + "cm",
		"Idade: " + strconv.Itoa(p.Age) + " anos",
		"Sexo: " + p.Gender.Label(),
	}
	if p.ActivityLevel != "" {
		lines = append(lines, "Nível de atividade: "+p.ActivityLevel.Label())
	}
	return lines
}

func FoodAnalysis(profile *domain.UserProfile, goal domain.Goal) string {
	var goalLines []string
	if profile == nil && goal != "" {
		goalLines = []string{"Objetivo: " + goal.Label()}
	}

	return Template{
		Persona: "Você é um nutricionista especializado em análise visual de alimentos. " +
			"Analise esta imagem de comida e retorne um JSON estruturado com as seguintes informações.",
		Instructions: []string{
			"Identifique TODOS os alimentos visíveis na imagem",
			"Para cada alimento, estime a porção em gramas/ml usando referências visuais (tamanho do prato, utensílios, mãos)",
			"Calcule valores nutricionais precisos baseados em tabelas TACO/USDA",
			"Diferencie preparações simples (arroz branco) de complexas (lasanha)",
			"Considere o contexto visual para estimar quantidade com precisão",
			"Sugira 3 alternativas mais saudáveis",
		},
		Sections: []Section{
			{Title: "PERFIL DO USUÁRIO", Lines: profileLines(profile)},
			{Title: "OBJETIVO DO USUÁRIO", Lines: goalLines},
		},
		Schema:      foodSchema,
		FailureWhen: "Se a imagem não contiver alimentos ou for inválida",
		Failure:     foodFailure,
		Notes: []string{
			"Os totais devem ser a soma exata dos valores de cada alimento",
		},
	}.Render()
}

func BodyAnalysis(profile *domain.UserProfile, previous *entities.BodyComposition) string {
	instructions := []string{
		"Identifique pontos anatômicos (ombros, cintura, quadril, peito, coxas, braços)",
		"Estime percentual de gordura corporal baseado em características visuais",
		"Calcule massa magra aproximada",
		"Estime medidas corporais em centímetros",
		"Avalie a postura e identifique problemas",
		"Sugira correções posturais específicas",
	}
	schema := bodySchemaHead
	var previousLines []string
	if previous != nil {
		instructions = append(instructions, "Compare com a análise anterior e mostre a evolução")
		schema += bodyEvolution
		previousLines = []string{
			"Gordura corporal: " + num(previous.BodyFatPercentage) + "%",
			"Massa magra: " + num(previous.LeanMass) + "kg",
			"IMC estimado: " + num(previous.EstimatedBMI),
			fmt.Sprintf("Medidas anteriores (cm): ombros %s, peito %s, cintura %s, quadril %s, coxas %s, braços %s",
				num(previous.Measurements.Shoulders), num(previous.Measurements.Chest),
				num(previous.Measurements.Waist), num(previous.Measurements.Hips),
				num(previous.Measurements.Thighs), num(previous.Measurements.Arms)),
		}
	}
	schema += "\n}"

	return Template{
		Persona: "Você é um profissional de educação física e avaliação corporal. " +
			"Analise esta foto corporal e retorne um JSON estruturado com as seguintes informações.",
		Instructions: instructions,
		Sections: []Section{
			{Title: "PERFIL DO USUÁRIO", Lines: profileLines(profile)},
			{Title: "ANÁLISE ANTERIOR", Lines: previousLines},
		},
		Schema:      schema,
		FailureWhen: "Se a imagem não for adequada para análise corporal",
		Failure:     bodyFailure,
		Notes: []string{
			"Para fotos de frente: foque em simetria, definição abdominal, desenvolvimento de peito/ombros",
			"Para fotos de costas: avalie desenvolvimento dorsal, simetria, postura",
			"Para fotos de lateral: avalie postura, curvatura da coluna, projeção abdominal",
			"Seja preciso mas realista nas estimativas",
			"Considere iluminação e ângulo na confiança da análise",
		},
	}.Render()
}

// WorkoutType is the label of the workout block suggested for a goal.
func WorkoutType(g domain.Goal) string {
	switch g {
	case domain.GoalGain:
		return "Treino de Hipertrofia"
	case domain.GoalLose:
		return "Treino para Emagrecimento"
	default:
		return "Treino Funcional"
	}
}

func Recommendations(profile domain.UserProfile, foods []entities.FoodItem, body *entities.BodyComposition) string {
	profileSection := []string{
		"Peso: " + num(profile.Weight) + "kg",
		"Altura: " + num(profile.Height) + "cm",
		"Idade: " + strconv.Itoa(profile.Age) + " anos",
		"Sexo: " + profile.Gender.Label(),
		"Objetivo: " + profile.Goal.Description(),
		"Nível de atividade: " + profile.ActivityLevel.Label(),
	}
	if m, err := nutrition.Compute(profile); err == nil {
		profileSection = append(profileSection, "Calorias diárias recomendadas: "+strconv.Itoa(m.DailyCalories)+" kcal")
	}

	foodLines := make([]string, 0, len(foods))
	for _, f := range foods {
		foodLines = append(foodLines, fmt.Sprintf("%s: %skcal (P:%sg C:%sg G:%sg)",
			f.Name, num(f.Calories), num(f.Macros.Protein), num(f.Macros.Carbs), num(f.Macros.Fats)))
	}

	var bodyLines []string
	if body != nil {
		bodyLines = []string{
			"Gordura corporal: " + num(body.BodyFatPercentage) + "%",
			"Massa magra: " + num(body.LeanMass) + "kg",
			"IMC: " + num(body.EstimatedBMI),
			"Postura: " + string(body.Posture.Status),
		}
	}

	return Template{
		Persona: "Você é um coach de fitness e nutricionista. " +
			"Crie um plano personalizado completo baseado nas informações abaixo.",
		Sections: []Section{
			{Title: "PERFIL DO USUÁRIO", Lines: profileSection},
			{Title: "ÚLTIMA REFEIÇÃO ANALISADA", Lines: foodLines},
			{Title: "ANÁLISE CORPORAL ATUAL", Lines: bodyLines},
		},
		Schema: strings.Replace(recommendationsSchema, "{{workout_type}}", WorkoutType(profile.Goal), 1),
		Notes: []string{
			"Ajuste calorias totais para o objetivo (déficit para emagrecimento, superávit para hipertrofia)",
			"Priorize alimentos integrais e nutritivos",
			"Inclua variedade para evitar monotonia",
			"Considere praticidade no dia a dia",
			"Treino deve ser adequado ao nível de condicionamento",
		},
	}.Render()
}

// Recipe returns the system persona and the user prompt for one meal.
func Recipe(meal domain.MealType, targetCalories int, goal domain.Goal) (string, string) {
	user := Template{
		Persona: fmt.Sprintf("Crie uma receita de %s com aproximadamente %d calorias.", meal.Label(), targetCalories),
		Sections: []Section{
			{Title: "OBJETIVO DO USUÁRIO", Lines: []string{goal.Label()}},
		},
		Schema: recipeSchema,
		Notes: []string{
			"A receita deve ser saborosa e prática",
			"Adequada ao objetivo do usuário",
			"Com ingredientes acessíveis",
			"Balanceada nutricionalmente",
		},
	}.Render()
	return RecipeSystem, user
}

func CoachSystem(profile domain.UserProfile, m nutrition.Metrics) string {
	lines := []string{
		"Peso: " + num(profile.Weight) + "kg",
		"Altura: " + num(profile.Height) + "cm",
		"Idade: " + strconv.Itoa(profile.Age) + " anos",
		"Sexo: " + profile.Gender.Label(),
		"Objetivo: " + profile.Goal.Label(),
	}
	if profile.ActivityLevel != "" {
		lines = append(lines, "Nível de atividade: "+profile.ActivityLevel.Label())
	}
	if profile.TargetWeight > 0 {
		lines = append(lines, "Peso desejado: "+num(profile.TargetWeight)+"kg")
	}
	lines = append(lines,
		"IMC atual: "+m.BMILabel(),
		"TMB: "+strconv.Itoa(m.RoundedBMR())+" kcal",
		"Calorias diárias recomendadas: "+strconv.Itoa(m.DailyCalories)+" kcal",
	)

	return Template{
		Persona: "Você é um coach digital especializado em fitness e nutrição.",
		Sections: []Section{
			{Title: "Você está ajudando um usuário com o seguinte perfil", Lines: lines},
		},
		Notes: []string{
			"Seja motivador, profissional e forneça conselhos práticos e personalizados",
			"Responda de forma clara e objetiva",
		},
	}.Render()
}
