package engine

import (
	"regexp"
	"strings"
)

// legacyRule is one entry of the degraded-tier pattern table.
type legacyRule struct {
	pattern  *regexp.Regexp
	intent   string
	response string
}

// Legacy intents referenced by the one-slot conversational memory.
const (
	intentWorkoutPlan = "workout_plan"
	intentUnknown     = "unknown"
)

// legacyRules is matched in declared order against the normalized input;
// the first hit wins.
var legacyRules = []legacyRule{
	{regexp.MustCompile(`\b(hi|hello|hey|greetings)\b`), "greeting",
		"Hello there! 👋 Welcome to your fitness companion. How can I help you today?"},
	{regexp.MustCompile(`\b(how are you|how's it going)\b`), "greeting",
		"I'm a bot 🤖 here to help with your fitness journey! How are you feeling today?"},
	{regexp.MustCompile(`\b(what is your name|who are you)\b`), "greeting",
		"I'm your friendly **Fitness Bot** 💪 Ask me about workouts, meals, or sleep!"},

	{regexp.MustCompile(`\b(workout plan|exercise routine|gym plan|workout|exercise|gym)\b`), intentWorkoutPlan,
		"I can help with workout plans! 🏋️ Are you looking for beginners, strength, cardio, or flexibility?"},
	{regexp.MustCompile(`\b(beginner|start exercising)\b`), "beginner_workout",
		"For beginners, start with squats, push-ups, and planks. 🔥 Consistency is key!"},
	{regexp.MustCompile(`\b(strength|strength training|build muscle)\b`), "strength_workout",
		"Strength training tip: focus on squats, deadlifts, bench press, and overhead press. 🏋️"},
	{regexp.MustCompile(`\b(cardio|endurance)\b`), "cardio_workout",
		"Cardio keeps your heart strong ❤️ Try running, cycling, or swimming!"},
	{regexp.MustCompile(`\b(flexibility|stretching|yoga)\b`), "flexibility",
		"Flexibility training 🧘 helps recovery. Try yoga or daily stretching for 10–15 mins."},
	{regexp.MustCompile(`\b(warm up|cool down|warmup|cooldown)\b`), "workout_prep",
		"Always warm up for 5–10 mins before and cool down after workouts to avoid injuries. ✅"},
	{regexp.MustCompile(`\b(how many times a week|workout frequency|frequency)\b`), "workout_frequency",
		"Aim for 3–5 workout sessions per week 💡 and give your body time to rest."},

	{regexp.MustCompile(`\b(healthy meals|diet plan|nutrition advice|meals|diet|nutrition)\b`), "nutrition_plan",
		"Nutrition is key! 🥗 Want ideas for breakfast, lunch, dinner, or snacks?"},
	{regexp.MustCompile(`\b(breakfast ideas|healthy breakfast|breakfast)\b`), "breakfast_ideas",
		"Try oatmeal with fruits, Greek yogurt with berries, or eggs with veggies. 🍳"},
	{regexp.MustCompile(`\b(lunch ideas|healthy lunch|lunch)\b`), "lunch_ideas",
		"Healthy lunch 🥗: grilled chicken with veggies, quinoa salad, or lentils with rice."},
	{regexp.MustCompile(`\b(dinner ideas|healthy dinner|dinner)\b`), "dinner_ideas",
		"For dinner 🍽️: salmon with sweet potatoes, veggie stir-fry, or whole-grain pasta."},
	{regexp.MustCompile(`\b(snack ideas|healthy snack|snacks)\b`), "snack_ideas",
		"Snack smart! 🍏 Nuts, fruit, hummus with carrots, or yogurt with seeds."},
	{regexp.MustCompile(`\b(meal prep|prepare food|mealprep)\b`), "meal_prep",
		"Meal prep tip: cook proteins, carbs, and veggies in bulk on weekends. 🍱"},
	{regexp.MustCompile(`\b(calorie intake|how many calories|kg|kilogram|kgs|weight)\b`), "weight_calories",
		"Calorie needs vary. ⚖️ Best to consult a professional, but I can share general nutrition principles."},
	{regexp.MustCompile(`\b(protein|carbs|fats)\b`), "macros",
		"Balanced meals: protein for repair, carbs for energy, fats for health. 🥩🍞🥑"},

	{regexp.MustCompile(`\b(improve sleep|sleep better|sleep tips|sleep)\b`), "sleep_tips",
		"Sleep well 😴 Keep a routine, reduce screens before bed, and rest 7–9 hrs."},
	{regexp.MustCompile(`\b(how much sleep|hours of sleep)\b`), "sleep_duration",
		"Most adults need 7–9 hours of good sleep per night. 🌙"},
	{regexp.MustCompile(`\b(insomnia|can't sleep)\b`), "insomnia_help",
		"Try relaxation, avoid caffeine, and make your room sleep-friendly. 🛏️"},

	{regexp.MustCompile(`\b(track progress|monitor goals|track|progress|goals)\b`), "app_features",
		"📊 You can track workouts, meals, and sleep progress inside the app."},
	{regexp.MustCompile(`\b(app features|what can this app do|features)\b`), "app_features",
		"This app offers workout plans, meal tracking, sleep logs, and goal setting. 🚀"},
	{regexp.MustCompile(`\b(motivation|stay motivated)\b`), "motivation",
		"💡 Motivation tip: set small goals, find a buddy, and celebrate wins!"},

	{regexp.MustCompile(`\b(help)\b`), "help",
		"You can ask me about workouts, meals, sleep, and motivation. 🤖\nTry typing: 'workout plan', 'healthy meals', 'sleep tips', or 'motivate me'."},

	{regexp.MustCompile(`\b(thank you|thanks)\b`), "thank_you",
		"You're welcome! 🙌 Keep pushing towards your goals!"},
	{regexp.MustCompile(`\b(bye|goodbye|exit|quit|see you)\b`), "exit",
		"Goodbye 👋 Stay fit and healthy!"},
}

const legacyDefaultResponse = "🤔 I'm not sure about that. Type 'help' to see what I can do!"

var (
	punctuation  = regexp.MustCompile(`[^\w\s]`)
	beginnerWord = regexp.MustCompile(`\b(beginner)\b`)
	strengthWord = regexp.MustCompile(`\b(strength)\b`)
	cardioWord   = regexp.MustCompile(`\b(cardio)\b`)
)

// LegacyMatcher is the degraded fallback tier: a flat pattern table plus a
// single-slot memory of the last matched intent. The slot gives one step of
// context: right after a generic workout-plan answer, a beginner/strength/
// cardio follow-up gets the specific sub-response.
type LegacyMatcher struct {
	lastIntent string
}

func NewLegacyMatcher() *LegacyMatcher {
	return &LegacyMatcher{}
}

// Respond normalizes the input (lowercase, punctuation stripped) and returns
// the first matching rule's response, or the default when nothing matches.
func (m *LegacyMatcher) Respond(input string) string {
	cleaned := normalizeInput(input)

	if m.lastIntent == intentWorkoutPlan {
		switch {
		case beginnerWord.MatchString(cleaned):
			m.lastIntent = "beginner_workout"
			return "Great! Start with squats, push-ups, and planks 💪."
		case strengthWord.MatchString(cleaned):
			m.lastIntent = "strength_workout"
			return "Strength training = squats, deadlifts, and presses. 🏋️"
		case cardioWord.MatchString(cleaned):
			m.lastIntent = "cardio_workout"
			return "Cardio = running, cycling, swimming. ❤️"
		}
	}

	for _, rule := range legacyRules {
		if rule.pattern.MatchString(cleaned) {
			m.lastIntent = rule.intent
			return rule.response
		}
	}

	m.lastIntent = intentUnknown
	return legacyDefaultResponse
}

// LastIntent exposes the memory slot for inspection.
func (m *LegacyMatcher) LastIntent() string { return m.lastIntent }

func normalizeInput(s string) string {
	return punctuation.ReplaceAllString(strings.ToLower(s), "")
}
