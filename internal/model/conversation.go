// Package model contains the application's data models.
package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Confidence labels how reliable an assistant answer is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the known labels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// ChatMessage is a single message in a user's chat log, stored in Redis.
type ChatMessage struct {
	ID         string     `json:"id"`
	Role       string     `json:"role"` // "user" or "assistant"
	Content    string     `json:"content"`
	Confidence Confidence `json:"confidence,omitempty"`
	Sources    []string   `json:"sources,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}
