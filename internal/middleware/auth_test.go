package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserService struct {
	service.UserService
	users map[uint]*model.User
}

func (f *fakeUserService) GetProfile(userID uint) (*model.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, service.ErrUserNotFound
}

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func newRouter(jwtManager *token.JWTManager, blacklist *fakeBlacklist) *gin.Engine {
	users := &fakeUserService{users: map[uint]*model.User{
		1: {ID: 1, Name: "Otieno", Role: model.RoleNameUser},
		2: {ID: 2, Name: "Admin", Role: model.RoleNameAdmin},
	}}
	r := gin.New()
	auth := AuthMiddleware(jwtManager, users, blacklist)
	r.GET("/me", auth, func(c *gin.Context) {
		user := c.MustGet("user").(*model.User)
		if c.GetString("token") == "" {
			c.String(http.StatusInternalServerError, "token missing from context")
			return
		}
		c.String(http.StatusOK, user.Name)
	})
	r.GET("/admin", auth, AdminAuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func get(r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := token.NewJWTManager("secret", 1, 1)
	blacklist := &fakeBlacklist{revoked: map[string]bool{}}
	r := newRouter(jwtManager, blacklist)

	access, err := jwtManager.GenerateToken(1, "+254712345678", model.RoleNameUser)
	require.NoError(t, err)
	refresh, err := jwtManager.GenerateRefreshToken(1, "+254712345678", model.RoleNameUser)
	require.NoError(t, err)
	ghost, err := jwtManager.GenerateToken(42, "+254700000000", model.RoleNameUser)
	require.NoError(t, err)

	w := get(r, "/me", access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Otieno", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", refresh).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", ghost).Code)

	blacklist.revoked[access] = true
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", access).Code)
}

func TestAuthMiddleware_BlacklistFailure(t *testing.T) {
	jwtManager := token.NewJWTManager("secret", 1, 1)
	r := newRouter(jwtManager, &fakeBlacklist{revoked: map[string]bool{}, err: errors.New("redis down")})

	access, err := jwtManager.GenerateToken(1, "+254712345678", model.RoleNameUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, get(r, "/me", access).Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	jwtManager := token.NewJWTManager("secret", 1, 1)
	r := newRouter(jwtManager, &fakeBlacklist{revoked: map[string]bool{}})

	user, err := jwtManager.GenerateToken(1, "+254712345678", model.RoleNameUser)
	require.NoError(t, err)
	admin, err := jwtManager.GenerateToken(2, "+254711111111", model.RoleNameAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", user).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)
}
