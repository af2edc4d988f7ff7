package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/engine"
	"github.com/yourname/fitcoach/internal/storage"
)

var validate = validator.New()

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
	Message   string `json:"message" validate:"required,min=1,max=1000"`
}

func ValidateChatRequest(req *ChatRequest) error {
	return validate.Struct(req)
}

// TurnResult is what one processed turn hands back to the API layer.
type TurnResult struct {
	SessionID string                 `json:"session_id"`
	Reply     string                 `json:"reply"`
	Context   internal.ContextRecord `json:"context"`
}

// ChatService owns the live session table and threads each session's state
// through the engine. Turn processing is serialized: the engine's mutable
// session state must never see two concurrent turns.
type ChatService struct {
	bot      *engine.Bot
	turns    storage.TurnRepository
	profiles storage.ProfileRepository
	logger   internal.Logger

	mu       sync.Mutex
	sessions map[string]*engine.Session
}

func NewChatService(bot *engine.Bot, turns storage.TurnRepository, profiles storage.ProfileRepository, logger internal.Logger) *ChatService {
	return &ChatService{
		bot:      bot,
		turns:    turns,
		profiles: profiles,
		logger:   logger,
		sessions: make(map[string]*engine.Session),
	}
}

// Respond runs one conversation turn for the user. A missing session ID
// starts a fresh session, seeded with the user's persisted profile when one
// exists. The turn and the updated profile are persisted after generation;
// persistence failures are logged but never fail the turn.
func (s *ChatService) Respond(ctx context.Context, user *internal.User, req *ChatRequest) (*TurnResult, error) {
	if err := ValidateChatRequest(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = engine.NewSession(sessionID)
		if profile, err := s.profiles.GetProfile(ctx, user.ID); err == nil {
			sess.Profile = profile
		}
		s.sessions[sessionID] = sess
	}

	reply := s.bot.Respond(sess, req.Message)

	turn := sess.Memory.Last()
	turn.ID = uuid.NewString()
	turn.SessionID = sessionID
	turn.UserID = user.ID
	if err := s.turns.SaveTurn(ctx, turn); err != nil {
		s.logger.Errorf("failed to persist turn %s: %v", turn.ID, err)
	}
	if err := s.profiles.SaveProfile(ctx, user.ID, sess.Profile); err != nil {
		s.logger.Errorf("failed to persist profile for %s: %v", user.ID, err)
	}

	return &TurnResult{
		SessionID: sessionID,
		Reply:     reply,
		Context:   turn.Context,
	}, nil
}

// History returns the session's turns in insertion order, preferring the
// live in-memory log and falling back to the store for sessions from a
// previous process.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]internal.ConversationTurn, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if ok {
		return sess.Memory.Turns(), nil
	}
	return s.turns.ListTurns(ctx, sessionID)
}

// Profile returns the current profile of a live session.
func (s *ChatService) Profile(sessionID string) (*internal.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	snapshot := *sess.Profile
	return &snapshot, nil
}
