package service

import (
	"context"
	"testing"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (UserService, *memUserRepo, *memBlacklist, *token.JWTManager) {
	users := &memUserRepo{}
	bl := &memBlacklist{tokens: map[string]time.Duration{}}
	jwt := token.NewJWTManager("test-secret", 1, 1)
	return NewUserService(users, bl, jwt), users, bl, jwt
}

func TestRegister(t *testing.T) {
	svc, users, _, _ := newUserFixture()

	u, err := svc.Register("0712 345-678", "  Achieng ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "+254712345678", u.Phone)
	assert.Equal(t, "Achieng", u.Name)
	assert.Equal(t, model.RoleNameUser, u.Role)
	assert.NotEqual(t, "secret1", u.Password)
	assert.Len(t, users.users, 1)

	_, err = svc.Register("+254712345678", "Other", "secret2")
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.Register("0712345678", "A", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("12ab", "A", "123456")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = svc.Register("0712345678", " ", "123456")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestLogin(t *testing.T) {
	svc, _, _, jwt := newUserFixture()
	_, err := svc.Register("712345678", "Otieno", "secret1")
	require.NoError(t, err)

	access, refresh, err := svc.Login("254712345678", "secret1")
	require.NoError(t, err)
	claims, err := jwt.VerifyToken(access)
	require.NoError(t, err)
	assert.Equal(t, "+254712345678", claims.Phone)
	assert.False(t, claims.Refresh)
	assert.NotEmpty(t, refresh)

	_, _, err = svc.Login("0712345678", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("0700000000", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	svc, _, bl, _ := newUserFixture()
	u, err := svc.Register("0712345678", "Njeri", "secret1")
	require.NoError(t, err)
	access, refresh, err := svc.Login("0712345678", "secret1")
	require.NoError(t, err)

	ctx := context.Background()
	_, _, err = svc.RefreshToken(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	newAccess, newRefresh, err := svc.RefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEqual(t, refresh, newRefresh)

	// a refresh token works once
	_, _, err = svc.RefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, newAccess, newRefresh))
	assert.Contains(t, bl.tokens, newAccess)
	assert.Greater(t, bl.tokens[newAccess], time.Duration(0))
	assert.Contains(t, bl.tokens, newRefresh)

	// the session's refresh token cannot mint new tokens after logout
	_, _, err = svc.RefreshToken(ctx, newRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// an access token is not accepted in place of the refresh token
	assert.ErrorIs(t, svc.Logout(ctx, access, access), ErrInvalidToken)

	p, err := svc.GetProfile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Njeri", p.Name)

	_, err = svc.GetProfile(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
