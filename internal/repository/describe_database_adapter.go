package repository

import (
	"context"
	"fmt"

	"quizbot/internal/domain"
	"quizbot/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// DescribeDatabaseAdapter implements domain.DescribeRepository using sqlx.
type DescribeDatabaseAdapter struct {
	db DBTX
}

// NewDescribeDatabaseAdapter creates a new instance of DescribeDatabaseAdapter
func NewDescribeDatabaseAdapter(db *sqlx.DB) domain.DescribeRepository {
	return &DescribeDatabaseAdapter{db: db}
}

// SaveDescribe implements domain.DescribeRepository
func (a *DescribeDatabaseAdapter) SaveDescribe(ctx context.Context, describe *domain.Describe) (int64, error) {
	query := `INSERT INTO describes (owner_id, topic, created_at) VALUES (?, ?, ?)`

	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		describe.OwnerID, describe.Topic, describe.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert describe record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated describe id: %w", err)
	}
	return id, nil
}

// ListDescribesByOwner implements domain.DescribeRepository
func (a *DescribeDatabaseAdapter) ListDescribesByOwner(ctx context.Context, ownerID string) ([]*domain.Describe, error) {
	var rows []models.Describe
	query := `SELECT id, owner_id, topic, created_at FROM describes WHERE owner_id = ? ORDER BY id`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list describes by owner: %w", err)
	}

	describes := make([]*domain.Describe, 0, len(rows))
	for i := range rows {
		describes = append(describes, &domain.Describe{
			ID:        rows[i].ID,
			OwnerID:   rows[i].OwnerID,
			Topic:     rows[i].Topic,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return describes, nil
}

// CountDescribesByOwner implements domain.DescribeRepository
func (a *DescribeDatabaseAdapter) CountDescribesByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM describes WHERE owner_id = ?`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count describes by owner: %w", err)
	}
	return count, nil
}
