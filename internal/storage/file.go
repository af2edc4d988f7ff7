package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/yourname/fitcoach/internal"
)

// profileRecord is the on-disk shape of a user's profile.
type profileRecord struct {
	UserID  string                `json:"user_id"`
	Profile *internal.UserProfile `json:"profile"`
}

// FileStorage keeps turns and profiles in memory and flushes them to JSON
// files through debounced background workers, so a burst of turns costs one
// write.
type FileStorage struct {
	turns            map[string][]*internal.ConversationTurn // sessionID -> turns in insertion order
	profiles         map[string]*internal.UserProfile        // userID -> profile
	mu               sync.RWMutex
	turnsFile        string
	profilesFile     string
	saveTurnsChan    chan struct{}
	saveProfilesChan chan struct{}
	shutdownChan     chan struct{}
	saveDelay        time.Duration
	logger           internal.Logger
}

func NewFileStorage(turnsFile, profilesFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		turns:            make(map[string][]*internal.ConversationTurn),
		profiles:         make(map[string]*internal.UserProfile),
		turnsFile:        turnsFile,
		profilesFile:     profilesFile,
		saveTurnsChan:    make(chan struct{}, 1),
		saveProfilesChan: make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveDelay:        500 * time.Millisecond,
		logger:           logger,
	}

	if err := s.loadTurns(); err != nil {
		logger.Errorf("storage: failed to load turns: %v", err)
		return nil, err
	}
	if err := s.loadProfiles(); err != nil {
		logger.Errorf("storage: failed to load profiles: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveTurnsChan, s.saveTurns, "turns")
	go s.saveWorker(s.saveProfilesChan, s.saveProfiles, "profiles")

	return s, nil
}

func (s *FileStorage) loadTurns() error {
	file, err := os.Open(s.turnsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var turns []*internal.ConversationTurn
	if err := json.NewDecoder(file).Decode(&turns); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range turns {
		s.turns[t.SessionID] = append(s.turns[t.SessionID], t)
	}
	// Restore chronological order per session.
	for sid := range s.turns {
		sort.SliceStable(s.turns[sid], func(i, j int) bool {
			return s.turns[sid][i].Timestamp.Before(s.turns[sid][j].Timestamp)
		})
	}
	return nil
}

func (s *FileStorage) loadProfiles() error {
	file, err := os.Open(s.profilesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var records []profileRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.profiles[r.UserID] = r.Profile
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveTurns() error {
	s.mu.RLock()
	turns := make([]*internal.ConversationTurn, 0)
	for _, sessionTurns := range s.turns {
		turns = append(turns, sessionTurns...)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.turnsFile, turns)
}

func (s *FileStorage) saveProfiles() error {
	s.mu.RLock()
	records := make([]profileRecord, 0, len(s.profiles))
	for userID, p := range s.profiles {
		records = append(records, profileRecord{UserID: userID, Profile: p})
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.profilesFile, records)
}

func (s *FileStorage) saveWorker(trigger chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-trigger:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close stops the workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveTurns(); err != nil {
		return err
	}
	return s.saveProfiles()
}

// --- TurnRepository ---

func (s *FileStorage) SaveTurn(ctx context.Context, turn *internal.ConversationTurn) error {
	s.mu.Lock()
	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], turn)
	s.mu.Unlock()

	select {
	case s.saveTurnsChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListTurns(ctx context.Context, sessionID string) ([]internal.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.turns[sessionID]
	if !ok {
		return []internal.ConversationTurn{}, nil
	}
	turns := make([]internal.ConversationTurn, len(stored))
	for i, t := range stored {
		turns[i] = *t
	}
	return turns, nil
}

// --- ProfileRepository ---

func (s *FileStorage) SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error {
	// Snapshot via JSON so later engine mutations don't leak into the store.
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	var snapshot internal.UserProfile
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return err
	}

	s.mu.Lock()
	s.profiles[userID] = &snapshot
	s.mu.Unlock()

	select {
	case s.saveProfilesChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	snapshot := *p
	return &snapshot, nil
}

// --- Compile-time assertions ---
var _ TurnRepository = (*FileStorage)(nil)
var _ ProfileRepository = (*FileStorage)(nil)
