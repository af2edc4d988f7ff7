package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Fitness levels and budget tiers recognized across the engine.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// UserProfile is the per-session persisted state of one user. It is created
// once per session and mutated only by generator calls.
type UserProfile struct {
	EnergyLevel        int         `json:"energy_level"`
	AvailableTime      int         `json:"available_time"` // minutes
	Equipment          []string    `json:"equipment"`
	FitnessLevel       string      `json:"fitness_level"`
	LastActivityDate   string      `json:"last_activity_date,omitempty"` // YYYY-MM-DD, empty when unset
	WorkoutStreak      int         `json:"workout_streak"`
	NutritionStreak    int         `json:"nutrition_streak"`
	PreferredExercises []string    `json:"preferred_exercises,omitempty"`
	BudgetRange        string      `json:"budget_range"`
	Goals              []string    `json:"goals,omitempty"`
	MoodHistory        []MoodEntry `json:"mood_history,omitempty"`
}

// NewUserProfile returns a profile with the documented defaults.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		EnergyLevel:   5,
		AvailableTime: 30,
		Equipment:     []string{"bodyweight"},
		FitnessLevel:  LevelBeginner,
		BudgetRange:   BudgetMedium,
	}
}

// HasPreferred reports whether the exercise already appears in the
// preferred-exercise history.
func (p *UserProfile) HasPreferred(exercise string) bool {
	for _, e := range p.PreferredExercises {
		if e == exercise {
			return true
		}
	}
	return false
}

// MoodEntry is one appended record of the mood log.
type MoodEntry struct {
	Date              string `json:"date"` // YYYY-MM-DD
	Mood              string `json:"mood"`
	SuggestedActivity string `json:"activity_suggested"`
}

// ContextRecord is the per-turn signal set extracted from free text. A nil
// pointer or empty string means the slot was not recognized this turn and the
// profile's persisted value applies.
type ContextRecord struct {
	Energy    *int   `json:"energy,omitempty"`
	Time      *int   `json:"time,omitempty"` // minutes
	Budget    string `json:"budget,omitempty"`
	Equipment string `json:"equipment,omitempty"`
}

// IsEmpty reports whether no slot was recognized.
func (c ContextRecord) IsEmpty() bool {
	return c.Energy == nil && c.Time == nil && c.Budget == "" && c.Equipment == ""
}

// EnergyOr returns the extracted energy or the given fallback.
func (c ContextRecord) EnergyOr(fallback int) int {
	if c.Energy != nil {
		return *c.Energy
	}
	return fallback
}

// TimeOr returns the extracted time or the given fallback.
func (c ContextRecord) TimeOr(fallback int) int {
	if c.Time != nil {
		return *c.Time
	}
	return fallback
}

// BudgetOr returns the extracted budget tier or the given fallback.
func (c ContextRecord) BudgetOr(fallback string) string {
	if c.Budget != "" {
		return c.Budget
	}
	return fallback
}

// ConversationTurn is one completed exchange. Immutable once appended to the
// conversation memory; IDs are assigned by the service layer on persist.
type ConversationTurn struct {
	ID        string        `json:"id,omitempty"`
	SessionID string        `json:"session_id,omitempty"`
	UserID    string        `json:"user_id,omitempty"`
	Input     string        `json:"input"`
	Response  string        `json:"response"`
	Context   ContextRecord `json:"context"`
	Timestamp time.Time     `json:"timestamp"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
