package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CallRecord is one audited emergency call: what number was dialed and
// the patient snapshot at the moment of dialing.
type CallRecord struct {
	ID        string
	Number    string
	Region    string
	Symptoms  string
	Severity  int
	Location  string
	CreatedAt time.Time
}

// CallRepo is the append-only emergency call audit log.
type CallRepo interface {
	Append(ctx context.Context, rec CallRecord) error
	Recent(ctx context.Context, limit int) ([]CallRecord, error)
	DeleteAll(ctx context.Context) error
}

type callRepo struct {
	db *sql.DB
}

func (r *callRepo) Append(ctx context.Context, rec CallRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO emergency_calls (id, number, region, symptoms, severity, location, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Number, rec.Region, rec.Symptoms, rec.Severity, rec.Location, rec.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("append call record: %w", err)
	}
	return nil
}

func (r *callRepo) Recent(ctx context.Context, limit int) ([]CallRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, number, region, symptoms, severity, location, created_at
		 FROM emergency_calls ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query call records: %w", err)
	}
	defer rows.Close()

	var records []CallRecord
	for rows.Next() {
		var rec CallRecord
		if err := rows.Scan(&rec.ID, &rec.Number, &rec.Region, &rec.Symptoms,
			&rec.Severity, &rec.Location, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *callRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM emergency_calls`); err != nil {
		return fmt.Errorf("clear call records: %w", err)
	}
	return nil
}
