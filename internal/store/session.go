package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/learncheck/learncheck/internal/quiz"
)

// SessionRepo persists whole session blobs keyed by (userID, tutorialID).
// A structured composite key, not a concatenated string, so identity
// equality never depends on delimiter choices.
type SessionRepo interface {
	// Get returns the stored session, or nil if absent. A blob with a
	// schema version other than the current one reads as absent.
	Get(ctx context.Context, id quiz.Identity) (*quiz.Session, error)

	// Put atomically overwrites the session blob for its identity.
	Put(ctx context.Context, s *quiz.Session) error

	// Clear removes the stored session for the identity, if any.
	Clear(ctx context.Context, id quiz.Identity) error
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Get(ctx context.Context, id quiz.Identity) (*quiz.Session, error) {
	var version int
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT schema_version, data FROM sessions WHERE user_id = ? AND tutorial_id = ?`,
		id.UserID, id.TutorialID,
	).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	if version != quiz.SchemaVersion {
		return nil, nil
	}

	var s quiz.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepo) Put(ctx context.Context, s *quiz.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, tutorial_id, schema_version, updated_at, data)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, tutorial_id)
		 DO UPDATE SET schema_version = excluded.schema_version,
		               updated_at     = excluded.updated_at,
		               data           = excluded.data`,
		s.UserID, s.TutorialID, s.SchemaVersion, time.Now().UTC(), data,
	)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context, id quiz.Identity) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE user_id = ? AND tutorial_id = ?`,
		id.UserID, id.TutorialID,
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
