package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-backend/internal/domains/location/model"
)

type postgresLocationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &postgresLocationRepository{pool: pool}
}

func (r *postgresLocationRepository) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	query := `
		SELECT id, name, is_published, created_at
		FROM locations
		WHERE id = $1
	`

	var l model.Location
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &l, nil
}

func (r *postgresLocationRepository) ListPublished(ctx context.Context) ([]*model.Location, error) {
	query := `
		SELECT id, name, is_published, created_at
		FROM locations
		WHERE is_published = TRUE
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*model.Location, 0)
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}
