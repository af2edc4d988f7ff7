package engine

import (
	"fmt"

	"github.com/yourname/fitcoach/internal"
)

// DynamicWorkout builds a workout suggestion from the turn context with the
// profile as fallback. Energy picks the exercise pool and intensity label,
// available time picks the workout type and rep phrasing, and one exercise
// is drawn at random from the pool. An exercise already in the user's
// preferred list is swapped for one of its variations when any exist.
// The profile is read, never mutated: only the variation engine grows the
// preferred-exercise list.
func (b *Bot) DynamicWorkout(ctx internal.ContextRecord, profile *internal.UserProfile) string {
	energy := ctx.EnergyOr(profile.EnergyLevel)
	minutes := ctx.TimeOr(profile.AvailableTime)

	var pool []string
	var intensity string
	switch {
	case energy <= 4:
		pool = b.catalog.LowEnergyExercises
		intensity = "Low"
	case energy >= 7:
		pool = b.catalog.HighEnergyExercises
		intensity = "High"
	default:
		pool = b.catalog.ModerateExercises
		intensity = "Moderate"
	}

	var workoutType, reps string
	switch {
	case minutes <= 10:
		workoutType = "Quick Burst"
		reps = "30 seconds each"
	case minutes <= 20:
		workoutType = "Express"
		reps = "45 seconds each, 15s rest"
	default:
		workoutType = "Full"
		reps = "3 sets of 12-15 reps"
	}

	exercise := b.pick(pool)
	if profile.HasPreferred(exercise) {
		if variations, ok := b.catalog.Variations[exercise]; ok {
			exercise = fmt.Sprintf("%s (variation of %s)", b.pick(variations), exercise)
		}
	}

	return fmt.Sprintf("🏋️ %s %s-Intensity Workout (%d min):\n%s - %s\n💡 Energy level: %d/10",
		workoutType, intensity, minutes, exercise, reps, energy)
}

// ExerciseVariation keeps workouts from going stale. A known favorite with a
// variation list yields a variation suggestion and leaves the profile alone;
// an unseen exercise is recorded in the preferred list. Workouts picked by
// DynamicWorkout are deliberately never recorded here: the list grows only
// through explicit variation calls.
func (b *Bot) ExerciseVariation(exercise string, profile *internal.UserProfile) string {
	if profile.HasPreferred(exercise) {
		if variations, ok := b.catalog.Variations[exercise]; ok {
			return fmt.Sprintf("🔄 Variation Alert! Instead of regular %s, try: %s", exercise, b.pick(variations))
		}
	} else {
		profile.PreferredExercises = append(profile.PreferredExercises, exercise)
	}
	return fmt.Sprintf("✅ Added %s to your exercise history for future variations!", exercise)
}
