package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/pkg/hash"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/phone"
	"vaccine-village-go/pkg/token"

	"gorm.io/gorm"
)

const minPasswordLength = 6

// UserService handles registration, login and sessions.
type UserService interface {
	Register(phoneNumber, name, password string) (*model.User, error)
	Login(phoneNumber, password string) (accessToken, refreshToken string, err error)
	GetProfile(userID uint) (*model.User, error)
	// Logout revokes the access token and, when given, the refresh token of
	// the same session.
	Logout(ctx context.Context, accessToken, refreshToken string) error
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken, newRefreshToken string, err error)
}

type userService struct {
	userRepo   repository.UserRepository
	blacklist  repository.TokenBlacklistRepository
	jwtManager *token.JWTManager
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, blacklist repository.TokenBlacklistRepository, jwtManager *token.JWTManager) UserService {
	return &userService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtManager: jwtManager,
	}
}

func validPhone(p string) bool {
	// +254 followed by nine digits
	if len(p) != 13 || !strings.HasPrefix(p, "+254") {
		return false
	}
	for _, c := range p[4:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Register creates a USER account. The phone number is normalized first.
func (s *userService) Register(phoneNumber, name, password string) (*model.User, error) {
	normalized := phone.NormalizeKenyan(phoneNumber)
	if !validPhone(normalized) {
		return nil, ErrInvalidPhone
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	_, err := s.userRepo.FindByPhone(normalized)
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Phone:    normalized,
		Name:     name,
		Password: hashedPassword,
		Role:     model.RoleNameUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	log.Infow("User registered", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and issues an access/refresh token pair.
func (s *userService) Login(phoneNumber, password string) (accessToken, refreshToken string, err error) {
	user, err := s.userRepo.FindByPhone(phone.NormalizeKenyan(phoneNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if !hash.CheckPasswordHash(password, user.Password) {
		return "", "", ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *model.User) (string, string, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Phone, user.Role)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Phone, user.Role)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *userService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// revoke blacklists tokenString for the rest of its lifetime.
func (s *userService) revoke(ctx context.Context, tokenString string, claims *token.CustomClaims) error {
	return s.blacklist.Add(ctx, tokenString, time.Until(claims.ExpiresAt.Time))
}

func (s *userService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := s.jwtManager.VerifyToken(accessToken)
	if err != nil {
		return ErrInvalidToken
	}
	if err := s.revoke(ctx, accessToken, claims); err != nil {
		return err
	}
	if refreshToken == "" {
		return nil
	}
	refreshClaims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil || !refreshClaims.Refresh || refreshClaims.UserID != claims.UserID {
		return ErrInvalidToken
	}
	return s.revoke(ctx, refreshToken, refreshClaims)
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// used refresh token is revoked, so each one works once.
func (s *userService) RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken, newRefreshToken string, err error) {
	claims, err := s.jwtManager.VerifyToken(refreshTokenString)
	if err != nil || !claims.Refresh {
		return "", "", ErrInvalidToken
	}
	revoked, err := s.blacklist.Contains(ctx, refreshTokenString)
	if err != nil {
		return "", "", err
	}
	if revoked {
		return "", "", ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return "", "", ErrUserNotFound
	}
	if err := s.revoke(ctx, refreshTokenString, claims); err != nil {
		return "", "", err
	}
	return s.issueTokens(user)
}
