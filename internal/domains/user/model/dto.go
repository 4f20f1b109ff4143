package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// usernameRule: chữ, số và @/./+/-/_ (giống quy tắc username phổ biến)
var usernameRule = regexp.MustCompile(`^[\w.@+-]+$`)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 150),
			validation.Match(usernameRule).Error("username may contain only letters, digits and @/./+/-/_"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 254),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        AccountResponse `json:"user"`
}

// ========================================
// PROFILE DTOs
// ========================================

// UpdateProfileRequest thay toàn bộ các field có thể sửa của profile
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 150),
			validation.Match(usernameRule).Error("username may contain only letters, digits and @/./+/-/_"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
	)
}

type ProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"date_joined"`
}

type AccountResponse struct {
	ProfileResponse
	Email string `json:"email"`
}
