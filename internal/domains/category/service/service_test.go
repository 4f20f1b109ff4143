package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogicum-backend/internal/domains/category/model"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListPublished(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Category), args.Error(1)
}

func TestGetPublishedBySlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetBySlug", ctx, "travel").Return(&model.Category{ID: 1, Slug: "travel", IsPublished: true}, nil)
	repo.On("GetBySlug", ctx, "drafts").Return(&model.Category{ID: 2, Slug: "drafts", IsPublished: false}, nil)
	repo.On("GetBySlug", ctx, "missing").Return(nil, model.ErrCategoryNotFound)
	repo.On("GetBySlug", ctx, "broken").Return(nil, errors.New("conn reset"))
	svc := NewCategoryService(repo)

	c, err := svc.GetPublishedBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = svc.GetPublishedBySlug(ctx, "drafts")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)

	_, err = svc.GetPublishedBySlug(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)

	_, err = svc.GetPublishedBySlug(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrCategoryNotFound)
}

func TestGetByID_IgnoresPublication(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetByID", ctx, int64(2)).Return(&model.Category{ID: 2, IsPublished: false}, nil)

	c, err := NewCategoryService(repo).GetByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, c.IsPublished)
}
