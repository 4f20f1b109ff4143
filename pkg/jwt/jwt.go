package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

// Claims represents JWT claims structure
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewManager creates new JWT manager
func NewManager(secret string, accessTTL time.Duration) *Manager {
	return &Manager{secret: secret, accessTTL: accessTTL, now: time.Now}
}

// AccessTTL trả về thời hạn của access token
func (m *Manager) AccessTTL() time.Duration {
	return m.accessTTL
}

// GenerateAccessToken ký access token HS256 cho user
func (m *Manager) GenerateAccessToken(userID int64, username string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.accessTTL)

	claims := Claims{
		UserID:   userID,
		Username: username,
		Type:     tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ValidateAccessToken validates access token specifically
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access, got %s", claims.Type)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("invalid user id in token")
	}

	return claims, nil
}
