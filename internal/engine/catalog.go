package engine

// GoalTemplate maps a vague goal phrase to its SMART expansion. Order
// matters: the first phrase found in the input wins.
type GoalTemplate struct {
	Vague string
	Smart string
}

// Catalog holds the static content tables the generators draw from. Loaded
// once at process start and never mutated afterwards.
type Catalog struct {
	LowEnergyExercises  []string
	ModerateExercises   []string
	HighEnergyExercises []string

	Variations map[string][]string

	SeasonalFoods map[string][]string

	// budget tier -> meal slot -> base description
	BudgetMeals map[string]map[string]string

	MoodActivities map[string]string

	GoalTemplates []GoalTemplate

	Challenges []string
}

// DefaultCatalog returns the built-in content tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		LowEnergyExercises:  []string{"gentle stretching", "light yoga", "walking", "easy bodyweight movements"},
		ModerateExercises:   []string{"squats", "push-ups", "lunges", "planks"},
		HighEnergyExercises: []string{"HIIT circuit", "burpees", "jump squats", "mountain climbers"},

		Variations: map[string][]string{
			"squats":  {"jump squats", "sumo squats", "single-leg squats", "wall squats"},
			"pushups": {"incline pushups", "diamond pushups", "wide-grip pushups", "knee pushups"},
			"planks":  {"side planks", "plank up-downs", "mountain climber planks", "reverse planks"},
		},

		SeasonalFoods: map[string][]string{
			"winter": {"soup", "stew", "roasted vegetables", "warm oatmeal"},
			"spring": {"fresh salads", "asparagus", "strawberries", "light soups"},
			"summer": {"cold gazpacho", "grilled vegetables", "fresh fruits", "smoothie bowls"},
			"fall":   {"pumpkin dishes", "apple recipes", "hearty grains", "warm spices"},
		},

		BudgetMeals: map[string]map[string]string{
			"low": {
				"breakfast": "Oatmeal with banana and peanut butter (~$1.50)",
				"lunch":     "Lentil soup with whole grain bread (~$2.00)",
				"dinner":    "Rice and beans with vegetables (~$2.50)",
			},
			"medium": {
				"breakfast": "Greek yogurt with berries and granola (~$3.00)",
				"lunch":     "Quinoa salad with chickpeas (~$4.00)",
				"dinner":    "Grilled chicken with sweet potato (~$5.00)",
			},
			"high": {
				"breakfast": "Avocado toast with smoked salmon (~$8.00)",
				"lunch":     "Organic salad with grass-fed beef (~$12.00)",
				"dinner":    "Wild-caught fish with quinoa (~$15.00)",
			},
		},

		MoodActivities: map[string]string{
			"stressed": "Try gentle yoga or a 10-minute walk to reduce cortisol levels",
			"sad":      "Light cardio like dancing can boost endorphins naturally",
			"anxious":  "Deep breathing exercises combined with stretching",
			"angry":    "High-intensity workout to channel energy positively",
			"tired":    "Gentle movement like tai chi or light stretching",
			"excited":  "Perfect energy for a challenging HIIT workout!",
		},

		GoalTemplates: []GoalTemplate{
			{"lose weight", "Lose 1-2 pounds per week through 150 minutes of cardio + strength training 3x/week"},
			{"get fit", "Complete 30-minute workouts 4 times per week for the next 8 weeks"},
			{"build muscle", "Increase strength by 10% in major lifts over 12 weeks with progressive overload"},
			{"eat healthy", "Eat 5 servings of fruits/vegetables daily and meal prep 3 days per week"},
			{"sleep better", "Maintain 7-8 hours sleep nightly with consistent bedtime for 4 weeks"},
		},

		Challenges: []string{
			"Stair Master: Take stairs instead of elevators all week",
			"Phone Fitness: 10 squats every time you check your phone",
			"Hydration Hero: Drink water before every meal",
			"Plank Power: Hold a 2-minute plank 3 times this week",
			"Lunch Walker: 10-minute walk after lunch daily",
			"Morning Mover: 5-minute stretch routine every morning",
			"Snack Swapper: Replace one unhealthy snack daily with fruit",
		},
	}
}
