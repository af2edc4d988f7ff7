package engine

import (
	"fmt"
	"strings"

	"github.com/yourname/fitcoach/internal"
)

// moodTokens is the router's own mood trigger list; the first token found in
// the input (in this order) becomes the canonical mood passed to the mood
// generator.
var moodTokens = []string{"tired", "stressed", "sad", "anxious", "angry", "excited"}

// route is one entry of the dispatch table: a topic name, the keywords that
// select it, and the handler invoked on a match.
type route struct {
	name     string
	keywords []string
	handle   func(b *Bot, sess *Session, ctx internal.ContextRecord, text, lower string) string
}

// routes is evaluated in declared order; the first matching entry wins.
// Workout before meal before goal and so on: the priority is the table
// order, nothing else.
var routes = []route{
	{
		name:     "workout",
		keywords: []string{"workout", "exercise", "gym", "training"},
		handle: func(b *Bot, sess *Session, ctx internal.ContextRecord, _, _ string) string {
			return b.DynamicWorkout(ctx, sess.Profile) + "\n\n" + b.TrackStreak(ActivityWorkout, sess.Profile)
		},
	},
	{
		name:     "meal",
		keywords: []string{"meal", "food", "eat", "nutrition", "diet"},
		handle: func(b *Bot, sess *Session, ctx internal.ContextRecord, _, _ string) string {
			return b.MealSuggestion(ctx, sess.Profile) + "\n\n" + b.TrackStreak(ActivityNutrition, sess.Profile)
		},
	},
	{
		name:     "goal",
		keywords: []string{"goal", "target", "achieve", "want to"},
		handle: func(b *Bot, _ *Session, _ internal.ContextRecord, text, _ string) string {
			// The goal generator scans the raw, uncleaned input.
			return b.SmartGoal(text)
		},
	},
	{
		name:     "challenge",
		keywords: []string{"challenge", "motivate", "motivation"},
		handle: func(b *Bot, _ *Session, _ internal.ContextRecord, _, _ string) string {
			return b.WeeklyChallenge()
		},
	},
	{
		name:     "hydration",
		keywords: []string{"water", "hydration", "drink"},
		handle: func(b *Bot, _ *Session, ctx internal.ContextRecord, _, _ string) string {
			return b.Hydration(ctx)
		},
	},
	{
		name:     "mood",
		keywords: moodTokens,
		handle: func(b *Bot, sess *Session, _ internal.ContextRecord, _, lower string) string {
			mood := "neutral"
			for _, tok := range moodTokens {
				if strings.Contains(lower, tok) {
					mood = tok
					break
				}
			}
			return b.MoodCorrelation(mood, sess.Profile)
		},
	},
	{
		name:     "recovery",
		keywords: []string{"recovery", "rest", "sore", "tired muscles"},
		handle: func(b *Bot, sess *Session, ctx internal.ContextRecord, _, _ string) string {
			return b.Recovery(ctx, sess.Profile)
		},
	},
	{
		name:     "reminder",
		keywords: []string{"reminder"},
		handle: func(b *Bot, sess *Session, _ internal.ContextRecord, _, _ string) string {
			return b.Reminder(sess.Profile)
		},
	},
}

// Route runs the enhanced path for one turn: context extraction, profile
// overwrite, then first-match dispatch over the route table. A no-match is
// not an error; it yields FallbackNotice. Any panic inside extraction or a
// generator is recovered here and surfaced as the returned error so the
// caller can degrade to the legacy tier.
func (b *Bot) Route(sess *Session, text string) (reply string, ctx internal.ContextRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enhanced path: %v", r)
		}
	}()

	ctx = ExtractContext(text)

	// Context signals overwrite the profile outright and persist into
	// future turns.
	if ctx.Energy != nil {
		sess.Profile.EnergyLevel = *ctx.Energy
	}
	if ctx.Time != nil {
		sess.Profile.AvailableTime = *ctx.Time
	}
	if ctx.Budget != "" {
		sess.Profile.BudgetRange = ctx.Budget
	}

	lower := strings.ToLower(text)
	for _, r := range routes {
		if containsAny(lower, r.keywords) {
			return r.handle(b, sess, ctx, text, lower), ctx, nil
		}
	}
	return FallbackNotice, ctx, nil
}
