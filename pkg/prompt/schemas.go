package prompt

const foodSchema = `{
  "success": true,
  "alimentos": [
    {
      "name": "Nome do alimento",
      "description": "Descrição detalhada (tipo de preparo, aparência)",
      "portion": "Descrição da porção (ex: 1 xícara, 150g)",
      "portionGrams": 150,
      "calories": 200,
      "macros": { "protein": 25, "carbs": 30, "fats": 10 },
      "micros": { "fiber": 5, "sugar": 2, "sodium": 300 },
      "confidence": 0.95
    }
  ],
  "totals": {
    "calories": 200,
    "protein": 25,
    "carbs": 30,
    "fats": 10,
    "fiber": 5,
    "sugar": 2,
    "sodium": 300
  },
  "suggestions": [
    "Substitua o arroz branco por arroz integral para mais fibras",
    "Adicione mais vegetais para aumentar saciedade",
    "Reduza o óleo no preparo para diminuir calorias"
  ],
  "contextNotes": [
    "Prato de tamanho médio detectado",
    "Porções estimadas com base em referências visuais"
  ]
}`

const foodFailure = `{
  "success": false,
  "error": "Descrição específica do problema (ex: 'Nenhum alimento detectado na imagem', 'Imagem muito escura para análise', 'Foto desfocada')",
  "alimentos": [],
  "totals": { "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "fiber": 0, "sugar": 0, "sodium": 0 },
  "suggestions": [],
  "contextNotes": []
}`

const bodySchemaHead = `{
  "success": true,
  "analise_corporal": {
    "bodyFatPercentage": 18.5,
    "leanMass": 62.5,
    "estimatedBMI": 23.4,
    "measurements": {
      "shoulders": 110,
      "chest": 95,
      "waist": 80,
      "hips": 95,
      "thighs": 55,
      "arms": 32
    },
    "posture": {
      "status": "good | needs_improvement | poor",
      "issues": ["Leve inclinação anterior dos ombros"],
      "corrections": [
        "Fortaleça os músculos das costas com remadas",
        "Alongue o peitoral diariamente"
      ]
    },
    "anatomicalPoints": {
      "detected": ["ombros", "cintura", "quadril", "peito", "coxas", "braços"],
      "confidence": 0.92
    }
  }`

const bodyEvolution = `,
  "evolution": {
    "weightChange": -2.5,
    "bodyFatChange": -1.8,
    "measurementChanges": { "waist": -3, "arms": 1 },
    "progressNotes": [
      "Redução significativa na circunferência da cintura",
      "Ganho de massa muscular nos braços"
    ]
  }`

const bodyFailure = `{
  "success": false,
  "error": "Descrição específica do problema (ex: 'Corpo não visível na foto', 'Imagem muito escura', 'Ângulo inadequado para análise', 'Use foto de corpo inteiro')"
}`

const recommendationsSchema = `{
  "mealPlan": {
    "breakfast": ["3 ovos mexidos com espinafre (300 kcal)", "1 banana média (105 kcal)"],
    "lunch": ["150g de peito de frango grelhado (250 kcal)", "1 xícara de arroz integral (215 kcal)"],
    "dinner": ["180g de salmão grelhado (360 kcal)", "200g de batata doce assada (180 kcal)"],
    "snacks": ["30g de amêndoas (170 kcal)", "1 iogurte grego natural (150 kcal)"]
  },
  "shoppingList": ["Ovos (2 dúzias)", "Peito de frango (1kg)", "Arroz integral (1kg)"],
  "workout": {
    "type": "{{workout_type}}",
    "exercises": [
      { "name": "Agachamento livre", "sets": 4, "reps": "10-15", "rest": "2min" },
      { "name": "Supino reto", "sets": 4, "reps": "8-12", "rest": "90s" }
    ],
    "duration": "60 minutos"
  },
  "motivationalTips": [
    "Consistência é mais importante que perfeição. Foque em melhorar 1% a cada dia!",
    "Durma pelo menos 7-8 horas por noite para otimizar recuperação e resultados"
  ]
}`

const recipeSchema = `{
  "nome": "nome da receita",
  "descricao": "breve descrição",
  "calorias": 0,
  "proteinas": 0,
  "carboidratos": 0,
  "gorduras": 0,
  "tempo_preparo": "tempo estimado",
  "ingredientes": ["lista", "de", "ingredientes"],
  "modo_preparo": ["passo 1", "passo 2", "passo 3"],
  "dica": "dica especial do chef"
}`
