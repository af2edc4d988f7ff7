package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/engine"
)

// demoPrompts walks through every feature of the engine in a fixed order.
var demoPrompts = []struct {
	heading string
	inputs  []string
}{
	{"DYNAMIC WORKOUT DIFFICULTY ADJUSTMENT", []string{
		"I'm tired, give me a quick workout",
		"I'm energetic and have 45 minutes to exercise",
		"I'm feeling okay, 20 minute workout",
	}},
	{"MEAL PLANNING WITH CONSTRAINTS", []string{
		"I need a budget breakfast",
		"Suggest an expensive dinner",
		"What's a good lunch meal?",
	}},
	{"HYDRATION INTELLIGENCE", []string{
		"I'm energetic, give me hydration tips",
		"Hydration tips for today please",
	}},
	{"MOOD-BASED FITNESS", []string{
		"I'm stressed, what should I do?",
		"I'm excited today!",
	}},
	{"SMART GOALS", []string{
		"I want to lose weight",
		"Help me set a goal",
	}},
	{"CHALLENGES AND RECOVERY", []string{
		"I need a weekly fitness challenge",
		"I need recovery suggestions",
	}},
	{"LEGACY FALLBACK", []string{
		"hello there",
		"how many hours of sleep do I need?",
	}},
}

func demoCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted feature walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			bot := engine.New(internal.NopLogger{}, engine.WithRand(rand.New(rand.NewSource(seed))))
			sess := engine.NewSession(uuid.NewString())

			fmt.Println("🚀 FITNESS COACH - FEATURE DEMO")
			for _, section := range demoPrompts {
				fmt.Printf("\n== %s ==\n", section.heading)
				for _, input := range section.inputs {
					fmt.Printf("\nInput: %q\n%s\n", input, bot.Respond(sess, input))
				}
			}
			fmt.Println("\n== EXERCISE VARIATIONS ==")
			for _, exercise := range []string{"squats", "squats", "burpees"} {
				fmt.Printf("\nExercise: %q\n%s\n", exercise, bot.ExerciseVariation(exercise, sess.Profile))
			}

			fmt.Printf("\n%d turns recorded this session.\n", sess.Memory.Len())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for reproducible output")
	return cmd
}
