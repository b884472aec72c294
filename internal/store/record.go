package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SchemaVersion is written with every saved record. Loads of a record
// written under a different version are treated as absent rather than
// risking a misread of an old shape.
const SchemaVersion = 1

// Record keys. One row each; saves overwrite.
const (
	KeyPatient  = "patient"
	KeyAnalysis = "analysis"
)

// RecordRepo persists single-row JSON records keyed by name.
type RecordRepo interface {
	// Save overwrites the record under key with the given payload.
	Save(ctx context.Context, key string, payload any) error

	// Load reads the record under key into out. Returns false when the
	// record is absent or was written under a different schema version.
	Load(ctx context.Context, key string, out any) (bool, error)

	// Delete removes the record under key. Absent records are a no-op.
	Delete(ctx context.Context, key string) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Save(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO records (key, version, payload, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET version = excluded.version,
		 payload = excluded.payload, updated_at = excluded.updated_at`,
		key, SchemaVersion, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Load(ctx context.Context, key string, out any) (bool, error) {
	var version int
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT version, payload FROM records WHERE key = ?`, key,
	).Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load record %q: %w", key, err)
	}
	if version != SchemaVersion {
		return false, nil
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("decode record %q: %w", key, err)
	}
	return true, nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
