package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourname/fitcoach/internal"
)

// Trigger lists are ordered: within a slot the first matching category wins.
var (
	tiredWords     = []string{"tired", "exhausted", "drained", "😴"}
	energeticWords = []string{"energetic", "pumped", "motivated", "💪"}
	neutralWords   = []string{"okay", "normal", "fine"}

	lowBudgetWords  = []string{"budget", "cheap", "affordable", "money"}
	highBudgetWords = []string{"expensive", "premium", "high-end"}

	quickWords = []string{"quick", "short"}
	longWords  = []string{"long", "hour"}

	equipmentKeywords = []string{"dumbbells", "resistance bands", "yoga mat", "no equipment", "bodyweight"}

	minutesPattern = regexp.MustCompile(`(\d+)\s*min`)
)

// ExtractContext scans free text for energy, time, budget and equipment
// signals. It is pure and deterministic: ambiguity is resolved by the fixed
// check order, never by specificity. Empty or irrelevant text yields an
// empty record. Mood is not extracted here; the router detects it with its
// own trigger list.
func ExtractContext(text string) internal.ContextRecord {
	lower := strings.ToLower(text)
	var ctx internal.ContextRecord

	// Energy: tired is checked before energetic before neutral.
	switch {
	case containsAny(lower, tiredWords):
		ctx.Energy = intPtr(3)
	case containsAny(lower, energeticWords):
		ctx.Energy = intPtr(8)
	case containsAny(lower, neutralWords):
		ctx.Energy = intPtr(5)
	}

	// Time: an explicit minute count is read first, then quick/short forces
	// 10 and long/hour forces 60. Later checks deliberately override the
	// numeric value, so "quick 5 min" is 10 and "quick hour" is 60.
	if m := minutesPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			ctx.Time = intPtr(n)
		}
	}
	if containsAny(lower, quickWords) {
		ctx.Time = intPtr(10)
	}
	if containsAny(lower, longWords) {
		ctx.Time = intPtr(60)
	}

	switch {
	case containsAny(lower, lowBudgetWords):
		ctx.Budget = internal.BudgetLow
	case containsAny(lower, highBudgetWords):
		ctx.Budget = internal.BudgetHigh
	}

	for _, eq := range equipmentKeywords {
		if strings.Contains(lower, eq) {
			ctx.Equipment = eq
			break
		}
	}

	return ctx
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func intPtr(n int) *int { return &n }
