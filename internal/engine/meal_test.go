package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/fitcoach/internal"
)

func mealBotAt(hour int, month time.Month) *Bot {
	return testBot(WithClock(fixedClock(time.Date(2025, month, 10, hour, 0, 0, 0, time.UTC))))
}

func TestMealSuggestion_SlotByHour(t *testing.T) {
	profile := internal.NewUserProfile() // medium budget

	out := mealBotAt(9, time.March).MealSuggestion(internal.ContextRecord{}, profile)
	assert.Contains(t, out, "Breakfast Suggestion")
	assert.Contains(t, out, "Greek yogurt with berries and granola (~$3.00)")

	out = mealBotAt(14, time.March).MealSuggestion(internal.ContextRecord{}, profile)
	assert.Contains(t, out, "Lunch Suggestion")
	assert.Contains(t, out, "Quinoa salad with chickpeas (~$4.00)")

	out = mealBotAt(20, time.March).MealSuggestion(internal.ContextRecord{}, profile)
	assert.Contains(t, out, "Dinner Suggestion")
	assert.Contains(t, out, "Grilled chicken with sweet potato (~$5.00)")
}

func TestMealSuggestion_BudgetOverride(t *testing.T) {
	profile := internal.NewUserProfile()

	out := mealBotAt(9, time.March).MealSuggestion(internal.ContextRecord{Budget: internal.BudgetLow}, profile)
	assert.Contains(t, out, "Oatmeal with banana and peanut butter (~$1.50)")
	assert.Contains(t, out, "Budget: Low")

	out = mealBotAt(20, time.March).MealSuggestion(internal.ContextRecord{Budget: internal.BudgetHigh}, profile)
	assert.Contains(t, out, "Wild-caught fish with quinoa (~$15.00)")
	assert.Contains(t, out, "Budget: High")
}

func TestMealSuggestion_SeasonalIngredient(t *testing.T) {
	b := mealBotAt(9, time.December)
	out := b.MealSuggestion(internal.ContextRecord{}, internal.NewUserProfile())
	assertSeasonal(t, out, b.catalog.SeasonalFoods["winter"])

	b = mealBotAt(9, time.July)
	out = b.MealSuggestion(internal.ContextRecord{}, internal.NewUserProfile())
	assertSeasonal(t, out, b.catalog.SeasonalFoods["summer"])
}

func TestSeasonOf(t *testing.T) {
	assert.Equal(t, "winter", seasonOf(time.January))
	assert.Equal(t, "winter", seasonOf(time.December))
	assert.Equal(t, "spring", seasonOf(time.May))
	assert.Equal(t, "summer", seasonOf(time.June))
	assert.Equal(t, "fall", seasonOf(time.September))
	assert.Equal(t, "fall", seasonOf(time.November))
}

func assertSeasonal(t *testing.T, out string, foods []string) {
	t.Helper()
	for _, f := range foods {
		if strings.Contains(out, "Seasonal twist: Add "+f) {
			return
		}
	}
	t.Errorf("output %q has no seasonal ingredient from %v", out, foods)
}
