package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogicum-backend/internal/domains/location/model"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) ListPublished(ctx context.Context) ([]*model.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Location), args.Error(1)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLocationRepository)
	repo.On("GetByID", ctx, int64(1)).Return(&model.Location{ID: 1, Name: "Moscow"}, nil)
	repo.On("GetByID", ctx, int64(2)).Return(nil, model.ErrLocationNotFound)
	svc := NewLocationService(repo)

	l, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Moscow", l.Name)

	_, err = svc.GetByID(ctx, 2)
	var locErr *model.LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, model.ErrCodeLocationNotFound, locErr.Code)
}

func TestListPublished(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLocationRepository)
	repo.On("ListPublished", ctx).Return([]*model.Location{{ID: 1}, {ID: 3}}, nil)

	locations, err := NewLocationService(repo).ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}
