package model

import "time"

// User là tài khoản tác giả/người đọc của blog
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// ToProfile drops credentials; it is what other users may see.
func (u *User) ToProfile() ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

// ToAccount là view của chính chủ tài khoản (có email)
func (u *User) ToAccount() AccountResponse {
	return AccountResponse{
		ProfileResponse: u.ToProfile(),
		Email:           u.Email,
	}
}
