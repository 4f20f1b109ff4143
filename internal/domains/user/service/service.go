package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/user/repository"
	"blogicum-backend/internal/domains/visibility"
	"blogicum-backend/pkg/logger"
)

// bcrypt cost = 12: balance giữa security và performance
const passwordCost = 12

type userService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
}

func NewUserService(repo repository.UserRepository, tokens TokenIssuer) ServiceInterface {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(passwordHash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, model.NewUsernameTakenError(u.Username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
	})

	account := u.ToAccount()
	return &account, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Không tiết lộ username có tồn tại hay không
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        u.ToAccount(),
	}, nil
}

// ========================================
// PROFILE
// ========================================

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*model.ProfileResponse, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	profile := u.ToProfile()
	return &profile, nil
}

// UpdateProfile: viewer chỉ sửa được profile của chính mình,
// nên không có user id nào khác trong input.
func (s *userService) UpdateProfile(ctx context.Context, viewer visibility.Viewer, req model.UpdateProfileRequest) (*model.AccountResponse, error) {
	if !viewer.IsAuthenticated() {
		return nil, model.NewUnauthenticatedError()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, viewer.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.Username = strings.TrimSpace(req.Username)
	u.Email = strings.TrimSpace(req.Email)
	u.FirstName = req.FirstName
	u.LastName = req.LastName

	if err := s.repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			return nil, model.NewUsernameTakenError(u.Username)
		case errors.Is(err, model.ErrUserNotFound):
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	account := u.ToAccount()
	return &account, nil
}
