package engine

import (
	"fmt"
	"time"

	"github.com/yourname/fitcoach/internal"
)

// MealSuggestion proposes a meal for the current clock hour: before 10 it is
// breakfast, before 15 lunch, dinner otherwise. The budget tier (context
// over profile) selects the base description and a seasonal ingredient is
// drawn at random for the current month's season.
func (b *Bot) MealSuggestion(ctx internal.ContextRecord, profile *internal.UserProfile) string {
	now := b.clock.Now()
	budget := ctx.BudgetOr(profile.BudgetRange)

	var slot string
	switch {
	case now.Hour() < 10:
		slot = "breakfast"
	case now.Hour() < 15:
		slot = "lunch"
	default:
		slot = "dinner"
	}

	baseMeal := b.catalog.BudgetMeals[budget][slot]
	ingredient := b.pick(b.catalog.SeasonalFoods[seasonOf(now.Month())])

	return fmt.Sprintf("🍽️ %s Suggestion:\n%s\n🌿 Seasonal twist: Add %s\n💰 Budget: %s",
		titleCase(slot), baseMeal, ingredient, titleCase(budget))
}

// seasonOf maps a calendar month to its season key: Dec-Feb winter, Mar-May
// spring, Jun-Aug summer, Sep-Nov fall.
func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
