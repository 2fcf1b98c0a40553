// Package handler contains the HTTP controllers.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"code": status, "message": message, "data": data})
}

func ok(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, "success", data)
}

func fail(c *gin.Context, status int, message string) {
	respond(c, status, message, nil)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrUnsupportedLanguage),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrResourceNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPhoneTaken):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// serviceError writes err. Unexpected errors are logged and hidden.
func serviceError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s failed: %v", op, err)
		fail(c, status, "internal error")
		return
	}
	fail(c, status, err.Error())
}

func currentUser(c *gin.Context) *model.User {
	return c.MustGet("user").(*model.User)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}
