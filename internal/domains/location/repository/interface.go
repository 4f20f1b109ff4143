package repository

import (
	"context"

	"blogicum-backend/internal/domains/location/model"
)

type LocationRepository interface {
	// GetByID trả về model.ErrLocationNotFound nếu không có
	GetByID(ctx context.Context, id int64) (*model.Location, error)

	ListPublished(ctx context.Context) ([]*model.Location, error)
}
