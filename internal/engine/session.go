package engine

import "github.com/yourname/fitcoach/internal"

// Session bundles all mutable per-conversation state: the user profile, the
// conversation memory and the legacy matcher's one-slot intent memory. It is
// constructed and owned by the caller and must only be handed to one
// turn-processing call at a time; multi-user hosts create one Session per
// user, never shared.
type Session struct {
	ID      string
	Profile *internal.UserProfile
	Memory  *ConversationMemory
	Legacy  *LegacyMatcher
}

func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Profile: internal.NewUserProfile(),
		Memory:  &ConversationMemory{},
		Legacy:  NewLegacyMatcher(),
	}
}
