package repository

import (
	"context"

	"blogicum-backend/internal/domains/user/model"
)

// UserRepository là data access của users
type UserRepository interface {
	// FindByID trả về model.ErrUserNotFound nếu không có
	FindByID(ctx context.Context, id int64) (*model.User, error)

	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create gán ID và CreatedAt cho u; username trùng → model.ErrUsernameTaken
	Create(ctx context.Context, u *model.User) error

	// Update ghi username, email, first/last name
	Update(ctx context.Context, u *model.User) error
}
