package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// AuditRecord summarizes one classification request. It deliberately carries
// no raw PII: only the category, per-classification entity counts, and a
// hash of the masked text.
type AuditRecord struct {
	ID           string
	CreatedAt    time.Time
	Category     string
	EntityCount  int
	EntityCounts map[string]int
	MaskedSHA256 string
}

// AuditStore persists classification audit records.
type AuditStore struct {
	db *sql.DB
}

// NewAuditStore creates an audit store over the given client.
func NewAuditStore(client *Client) *AuditStore {
	if client == nil {
		panic("database.NewAuditStore: client must not be nil")
	}
	return &AuditStore{db: client.DB()}
}

// Insert writes one audit record. CreatedAt is assigned by the database.
func (s *AuditStore) Insert(ctx context.Context, rec AuditRecord) error {
	counts, err := json.Marshal(rec.EntityCounts)
	if err != nil {
		return fmt.Errorf("failed to marshal entity counts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_records (id, category, entity_count, entity_counts, masked_sha256)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Category, rec.EntityCount, counts, rec.MaskedSHA256,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *AuditStore) ListRecent(ctx context.Context, limit int) ([]AuditRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, category, entity_count, entity_counts, masked_sha256
		FROM audit_records
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var rec AuditRecord
		var counts []byte
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Category, &rec.EntityCount, &counts, &rec.MaskedSHA256); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		if err := json.Unmarshal(counts, &rec.EntityCounts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity counts: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit records: %w", err)
	}
	return records, nil
}

// CountByCategory returns the number of stored records per category.
func (s *AuditStore) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM audit_records
		GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category counts: %w", err)
	}
	return counts, nil
}
