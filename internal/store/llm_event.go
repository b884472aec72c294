package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one request to an LLM provider.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	LLMRequestEventData
	ID        int64
	CreatedAt time.Time
}

// EventRepo records LLM request events for the logging decorator and
// the llm status command.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events (provider, model, purpose, latency_ms, success,
		 input_tokens, output_tokens, error_message, request_body, response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.LatencyMs, data.Success,
		data.InputTokens, data.OutputTokens, data.ErrorMessage,
		data.RequestBody, data.ResponseBody, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, latency_ms, success, input_tokens,
		 output_tokens, error_message, request_body, response_body, created_at
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var records []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		if err := rows.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.LatencyMs, &rec.Success, &rec.InputTokens, &rec.OutputTokens,
			&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
