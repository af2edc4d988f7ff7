package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/fitcoach/internal"
)

func TestDynamicWorkout_EnergyTiers(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	out := b.DynamicWorkout(internal.ContextRecord{Energy: intPtr(3)}, profile)
	assert.Contains(t, out, "Low-Intensity")
	assert.Contains(t, out, "Energy level: 3/10")
	assertFromPool(t, out, b.catalog.LowEnergyExercises)

	out = b.DynamicWorkout(internal.ContextRecord{Energy: intPtr(5)}, profile)
	assert.Contains(t, out, "Moderate-Intensity")
	assertFromPool(t, out, b.catalog.ModerateExercises)

	out = b.DynamicWorkout(internal.ContextRecord{Energy: intPtr(8)}, profile)
	assert.Contains(t, out, "High-Intensity")
	assertFromPool(t, out, b.catalog.HighEnergyExercises)
}

func TestDynamicWorkout_TimeTiers(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	out := b.DynamicWorkout(internal.ContextRecord{Time: intPtr(5)}, profile)
	assert.Contains(t, out, "Quick Burst")
	assert.Contains(t, out, "(5 min)")
	assert.Contains(t, out, "30 seconds each")

	out = b.DynamicWorkout(internal.ContextRecord{Time: intPtr(15)}, profile)
	assert.Contains(t, out, "Express")
	assert.Contains(t, out, "45 seconds each, 15s rest")

	out = b.DynamicWorkout(internal.ContextRecord{Time: intPtr(45)}, profile)
	assert.Contains(t, out, "Full")
	assert.Contains(t, out, "3 sets of 12-15 reps")
}

func TestDynamicWorkout_ProfileFallback(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()
	profile.EnergyLevel = 8
	profile.AvailableTime = 45

	// Empty context: the profile's persisted values apply.
	out := b.DynamicWorkout(internal.ContextRecord{}, profile)
	assert.Contains(t, out, "High-Intensity")
	assert.Contains(t, out, "Full")
	assert.Contains(t, out, "(45 min)")
}

func TestDynamicWorkout_VariationSwap(t *testing.T) {
	catalog := DefaultCatalog()
	catalog.ModerateExercises = []string{"squats"}
	b := testBot(WithCatalog(catalog))

	profile := internal.NewUserProfile()
	profile.PreferredExercises = []string{"squats"}

	out := b.DynamicWorkout(internal.ContextRecord{Energy: intPtr(5)}, profile)
	assert.Contains(t, out, "(variation of squats)")
	var found bool
	for _, v := range catalog.Variations["squats"] {
		if strings.Contains(out, v) {
			found = true
		}
	}
	assert.True(t, found, "expected a squat variation in %q", out)
}

func TestDynamicWorkout_DoesNotMutateProfile(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	b.DynamicWorkout(internal.ContextRecord{}, profile)
	assert.Empty(t, profile.PreferredExercises)
}

func TestExerciseVariation_FirstCallRecords(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	out := b.ExerciseVariation("squats", profile)
	assert.Equal(t, "✅ Added squats to your exercise history for future variations!", out)
	assert.Equal(t, []string{"squats"}, profile.PreferredExercises)
}

func TestExerciseVariation_SecondCallSuggestsVariation(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	b.ExerciseVariation("squats", profile)
	out := b.ExerciseVariation("squats", profile)
	assert.Contains(t, out, "🔄 Variation Alert! Instead of regular squats, try:")
	var found bool
	for _, v := range b.catalog.Variations["squats"] {
		if strings.Contains(out, v) {
			found = true
		}
	}
	assert.True(t, found, "expected a known squat variation in %q", out)
	// The list must not grow on the variation path.
	assert.Equal(t, []string{"squats"}, profile.PreferredExercises)
}

func TestExerciseVariation_NoVariationList(t *testing.T) {
	b := testBot()
	profile := internal.NewUserProfile()

	b.ExerciseVariation("jogging", profile)
	out := b.ExerciseVariation("jogging", profile)
	// Known exercise without variations: confirmation text again, no
	// duplicate entry.
	assert.Contains(t, out, "✅ Added jogging")
	assert.Equal(t, []string{"jogging"}, profile.PreferredExercises)
}

func assertFromPool(t *testing.T, out string, pool []string) {
	t.Helper()
	for _, e := range pool {
		if strings.Contains(out, e) {
			return
		}
	}
	t.Errorf("output %q does not contain any exercise from %v", out, pool)
}
