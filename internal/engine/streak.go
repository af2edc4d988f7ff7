package engine

import (
	"fmt"
	"time"

	"github.com/yourname/fitcoach/internal"
)

// Activity types the streak tracker distinguishes.
const (
	ActivityWorkout   = "workout"
	ActivityNutrition = "nutrition"
)

// TrackStreak updates the streak counter for the given activity and returns
// the celebration message.
//
// Workout streaks are date-contiguous: the counter only increments when the
// last recorded activity was exactly one calendar day ago; any other case
// (first ever call, same-day repeat, gap of two or more days) resets it to 1,
// and the last-activity date is always moved to today. Nutrition streaks
// increment unconditionally with no date bookkeeping; the asymmetry is
// intentional.
func (b *Bot) TrackStreak(activity string, profile *internal.UserProfile) string {
	today := b.today()

	var streak int
	if activity == ActivityWorkout {
		if profile.LastActivityDate != "" && daysBetween(profile.LastActivityDate, today) == 1 {
			profile.WorkoutStreak++
		} else {
			profile.WorkoutStreak = 1
		}
		profile.LastActivityDate = today
		streak = profile.WorkoutStreak
	} else {
		profile.NutritionStreak++
		streak = profile.NutritionStreak
	}

	switch streak {
	case 1:
		return fmt.Sprintf("🎯 Day 1 of your %s journey!", activity)
	case 3:
		return "🔥 3-day streak! You're building momentum!"
	case 7:
		return "⭐ 1 week streak! Habit forming!"
	case 30:
		return "🏆 30-day streak! You're unstoppable!"
	default:
		return fmt.Sprintf("💪 Day %d streak! Keep going!", streak)
	}
}

// daysBetween returns the whole calendar days from one YYYY-MM-DD date to
// another. An unparseable date counts as a gap, which resets the streak.
func daysBetween(from, to string) int {
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return -1
	}
	z, err := time.Parse(dateLayout, to)
	if err != nil {
		return -1
	}
	return int(z.Sub(a).Hours() / 24)
}
