// Package service contains the business logic layer.
package service

import "errors"

var (
	ErrEmptyMessage        = errors.New("message is empty")
	ErrUnsupportedLanguage = errors.New("language is not supported")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound      = errors.New("review not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrInvalidCategory     = errors.New("unknown resource category")
	ErrForbidden           = errors.New("forbidden")
	ErrPhoneTaken          = errors.New("phone number already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrNameRequired        = errors.New("name is required")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidToken        = errors.New("invalid refresh token")
)
