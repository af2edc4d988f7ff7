package storage

import (
	"context"
	"errors"

	"github.com/yourname/fitcoach/internal"
)

// ErrNotFound is returned when a profile or session has no stored state yet.
var ErrNotFound = errors.New("storage: not found")

type TurnRepository interface {
	SaveTurn(ctx context.Context, turn *internal.ConversationTurn) error
	ListTurns(ctx context.Context, sessionID string) ([]internal.ConversationTurn, error)
}

type ProfileRepository interface {
	SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error)
}
