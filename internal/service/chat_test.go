package service

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/engine"
	"github.com/yourname/fitcoach/internal/storage"
)

var testUser = &internal.User{ID: "u1", Name: "Demo User"}

func newTestBot() *engine.Bot {
	clock := engine.ClockFunc(func() time.Time {
		return time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	})
	return engine.New(internal.NopLogger{},
		engine.WithClock(clock),
		engine.WithRand(rand.New(rand.NewSource(1))),
	)
}

func newTestService(t *testing.T, dir string) (*ChatService, *storage.FileStorage) {
	t.Helper()
	store, err := storage.NewFileStorage(
		filepath.Join(dir, "turns.json"),
		filepath.Join(dir, "profiles.json"),
		internal.NopLogger{},
	)
	assert.NoError(t, err)
	return NewChatService(newTestBot(), store, store, internal.NopLogger{}), store
}

func TestChatService_RespondCreatesSession(t *testing.T) {
	svc, store := newTestService(t, t.TempDir())
	defer store.Close()

	res, err := svc.Respond(context.Background(), testUser, &ChatRequest{Message: "I need a workout"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Contains(t, res.Reply, "Workout")

	// Same session ID continues the conversation in the same session.
	res2, err := svc.Respond(context.Background(), testUser, &ChatRequest{
		SessionID: res.SessionID,
		Message:   "what about a meal",
	})
	assert.NoError(t, err)
	assert.Equal(t, res.SessionID, res2.SessionID)

	history, err := svc.History(context.Background(), res.SessionID)
	assert.NoError(t, err)
	if assert.Len(t, history, 2) {
		assert.Equal(t, "I need a workout", history[0].Input)
		assert.Equal(t, "what about a meal", history[1].Input)
	}
}

func TestChatService_RespondValidation(t *testing.T) {
	svc, store := newTestService(t, t.TempDir())
	defer store.Close()

	_, err := svc.Respond(context.Background(), testUser, &ChatRequest{Message: ""})
	assert.Error(t, err)

	_, err = svc.Respond(context.Background(), testUser, &ChatRequest{
		SessionID: "not-a-uuid",
		Message:   "hello",
	})
	assert.Error(t, err)
}

func TestChatService_ProfilePersistsAcrossServices(t *testing.T) {
	dir := t.TempDir()
	svc, store := newTestService(t, dir)

	res, err := svc.Respond(context.Background(), testUser, &ChatRequest{Message: "give me a workout"})
	assert.NoError(t, err)

	profile, err := svc.Profile(res.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, profile.WorkoutStreak)
	assert.Equal(t, "2025-03-15", profile.LastActivityDate)

	// Stamp the stored profile so seeding is distinguishable from a
	// fresh default profile.
	profile.NutritionStreak = 5
	assert.NoError(t, store.SaveProfile(context.Background(), testUser.ID, profile))
	assert.NoError(t, store.Close())

	// A fresh service over the same files seeds new sessions from the
	// persisted profile.
	svc2, store2 := newTestService(t, dir)
	defer store2.Close()

	res2, err := svc2.Respond(context.Background(), testUser, &ChatRequest{Message: "another workout please"})
	assert.NoError(t, err)
	assert.NotEqual(t, res.SessionID, res2.SessionID)

	profile2, err := svc2.Profile(res2.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 5, profile2.NutritionStreak)
	// Same day, so the workout streak resets rather than increments.
	assert.Equal(t, 1, profile2.WorkoutStreak)
	assert.Equal(t, "2025-03-15", profile2.LastActivityDate)
}

func TestChatService_HistoryFallsBackToStore(t *testing.T) {
	dir := t.TempDir()
	svc, store := newTestService(t, dir)

	res, err := svc.Respond(context.Background(), testUser, &ChatRequest{Message: "hello there"})
	assert.NoError(t, err)
	assert.NoError(t, store.Close())

	svc2, store2 := newTestService(t, dir)
	defer store2.Close()

	// svc2 has no live session for the old ID; history comes from disk.
	history, err := svc2.History(context.Background(), res.SessionID)
	assert.NoError(t, err)
	if assert.Len(t, history, 1) {
		assert.Equal(t, "hello there", history[0].Input)
	}
}

func TestChatService_ProfileUnknownSession(t *testing.T) {
	svc, store := newTestService(t, t.TempDir())
	defer store.Close()

	_, err := svc.Profile("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
