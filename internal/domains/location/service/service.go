package service

import (
	"context"
	"errors"
	"fmt"

	"blogicum-backend/internal/domains/location/model"
	"blogicum-backend/internal/domains/location/repository"
)

type ServiceInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	ListPublished(ctx context.Context) ([]*model.Location, error)
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) ServiceInterface {
	return &locationService{repo: repo}
}

func (s *locationService) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrLocationNotFound) {
			return nil, model.NewLocationNotFoundError()
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

func (s *locationService) ListPublished(ctx context.Context) ([]*model.Location, error) {
	locations, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}
