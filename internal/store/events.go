package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/learncheck/learncheck/internal/quiz"
)

// Hint sources recorded in hint events.
const (
	HintSourceStatic  = "static"
	HintSourceAI      = "ai"
	HintSourceBackend = "backend"
)

// HintEventData records one hint seeding or generation, success or failure.
type HintEventData struct {
	UserID       string
	TutorialID   string
	AttemptID    string
	QuestionID   string
	Source       string
	Success      bool
	HintText     string
	ErrorMessage string
}

// LLMRequestEventData records one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptEventData records one finalized quiz attempt (score view).
type AttemptEventData struct {
	UserID         string
	TutorialID     string
	AttemptID      string
	Score          int
	CorrectCount   int
	TotalQuestions int
}

// Attempt is a stored attempt event with its timestamp.
type Attempt struct {
	AttemptEventData
	CompletedAt time.Time
}

// EventRepo provides append access to the operational event log and
// queries for the attempt history.
type EventRepo interface {
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// ListAttempts returns completed attempts for an identity, newest
	// first. limit <= 0 means no limit.
	ListAttempts(ctx context.Context, id quiz.Identity, limit int) ([]Attempt, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hint_events
		 (created_at, user_id, tutorial_id, attempt_id, question_id, source, success, hint_text, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.UserID, data.TutorialID, data.AttemptID,
		data.QuestionID, data.Source, data.Success, data.HintText, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
		 (created_at, user_id, tutorial_id, attempt_id, score, correct_count, total_questions)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.UserID, data.TutorialID, data.AttemptID,
		data.Score, data.CorrectCount, data.TotalQuestions,
	)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context, id quiz.Identity, limit int) ([]Attempt, error) {
	query := `SELECT created_at, attempt_id, score, correct_count, total_questions
	          FROM attempt_events
	          WHERE user_id = ? AND tutorial_id = ?
	          ORDER BY id DESC`
	args := []any{id.UserID, id.TutorialID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a := Attempt{AttemptEventData: AttemptEventData{
			UserID:     id.UserID,
			TutorialID: id.TutorialID,
		}}
		if err := rows.Scan(&a.CompletedAt, &a.AttemptID, &a.Score, &a.CorrectCount, &a.TotalQuestions); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
