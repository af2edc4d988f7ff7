package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/fitcoach/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- TurnRepository ---

func (p *PostgresStorage) SaveTurn(ctx context.Context, turn *internal.ConversationTurn) error {
	contextJSON, err := json.Marshal(turn.Context)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO conversation_turns (id, session_id, user_id, input, response, context, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		turn.ID, turn.SessionID, turn.UserID, turn.Input, turn.Response, contextJSON, turn.Timestamp)
	if err != nil {
		p.logger.Errorf("failed to insert conversation turn: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListTurns(ctx context.Context, sessionID string) ([]internal.ConversationTurn, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, session_id, user_id, input, response, context, created_at FROM conversation_turns WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		p.logger.Errorf("failed to query conversation turns: %v", err)
		return nil, err
	}
	defer rows.Close()

	var turns []internal.ConversationTurn
	for rows.Next() {
		var t internal.ConversationTurn
		var contextJSON []byte
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserID, &t.Input, &t.Response, &contextJSON, &t.Timestamp); err != nil {
			p.logger.Errorf("failed to scan conversation turn: %v", err)
			return nil, err
		}
		if len(contextJSON) > 0 {
			if err := json.Unmarshal(contextJSON, &t.Context); err != nil {
				p.logger.Errorf("failed to decode turn context: %v", err)
				return nil, err
			}
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// --- ProfileRepository ---

func (p *PostgresStorage) SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, profile, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = now()`,
		userID, profileJSON)
	if err != nil {
		p.logger.Errorf("failed to upsert profile: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error) {
	row := p.pool.QueryRow(ctx, `SELECT profile FROM user_profiles WHERE user_id = $1`, userID)
	var profileJSON []byte
	if err := row.Scan(&profileJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to load profile: %v", err)
		return nil, err
	}
	var profile internal.UserProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// --- Compile-time assertions ---
var _ TurnRepository = (*PostgresStorage)(nil)
var _ ProfileRepository = (*PostgresStorage)(nil)
