package service

import (
	"context"
	"time"

	"blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/visibility"
)

type ServiceInterface interface {
	// Register tạo tài khoản mới
	Register(ctx context.Context, req model.RegisterRequest) (*model.AccountResponse, error)

	// Login trả về access token
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// GetByUsername resolves a profile owner. Used by the post domain.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetProfile trả về thông tin public của user
	GetProfile(ctx context.Context, username string) (*model.ProfileResponse, error)

	// UpdateProfile sửa profile của chính viewer
	UpdateProfile(ctx context.Context, viewer visibility.Viewer, req model.UpdateProfileRequest) (*model.AccountResponse, error)
}

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(userID int64, username string) (string, time.Time, error)
}
