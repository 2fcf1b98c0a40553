// Package token issues and verifies JSON Web Tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager signs and verifies access and refresh tokens.
type JWTManager struct {
	secretKey       []byte
	accessTokenDur  time.Duration
	refreshTokenDur time.Duration
}

// CustomClaims carries the user identity inside a token.
type CustomClaims struct {
	UserID uint   `json:"userId"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	// Refresh marks refresh tokens so they cannot be used as access tokens.
	Refresh bool `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a JWTManager.
func NewJWTManager(secret string, accessTokenExpireHours, refreshTokenExpireDays int) *JWTManager {
	return &JWTManager{
		secretKey:       []byte(secret),
		accessTokenDur:  time.Hour * time.Duration(accessTokenExpireHours),
		refreshTokenDur: time.Duration(refreshTokenExpireDays) * 24 * time.Hour,
	}
}

// GenerateToken issues an access token.
func (m *JWTManager) GenerateToken(userID uint, phone, role string) (string, error) {
	return m.sign(userID, phone, role, false, m.accessTokenDur)
}

// GenerateRefreshToken issues a longer-lived refresh token.
func (m *JWTManager) GenerateRefreshToken(userID uint, phone, role string) (string, error) {
	return m.sign(userID, phone, role, true, m.refreshTokenDur)
}

func (m *JWTManager) sign(userID uint, phone, role string, refresh bool, dur time.Duration) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID:  userID,
		Phone:   phone,
		Role:    role,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			// unique per token so revoking one never revokes a twin
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(dur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken parses tokenString and returns its claims if the signature
// and expiry are valid.
func (m *JWTManager) VerifyToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
