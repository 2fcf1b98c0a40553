package handler

import (
	"net/http"

	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "phone, name and password are required")
		return
	}
	user, err := h.userService.Register(req.Phone, req.Name, req.Password)
	if err != nil {
		serviceError(c, "Register", err)
		return
	}
	respond(c, http.StatusOK, "User registered successfully", user)
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "phone and password are required")
		return
	}
	accessToken, refreshToken, err := h.userService.Login(req.Phone, req.Password)
	if err != nil {
		log.Warnf("Login failed: %v", err)
		serviceError(c, "Login", err)
		return
	}
	ok(c, gin.H{"token": accessToken, "refreshToken": refreshToken})
}

// GetProfile returns the authenticated user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	ok(c, currentUser(c))
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Logout revokes the bearer token. An optional refreshToken in the body is
// revoked with it.
func (h *UserHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if err := h.userService.Logout(c.Request.Context(), c.GetString("token"), req.RefreshToken); err != nil {
		serviceError(c, "Logout", err)
		return
	}
	respond(c, http.StatusOK, "Logged out", nil)
}
