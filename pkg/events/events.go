// Package events defines the messages published to Kafka.
package events

import "time"

// ChatExchange records one answered chat message. It carries no message
// text, only the classification outcome.
type ChatExchange struct {
	MessageID    string    `json:"message_id"`
	UserID       uint      `json:"user_id"`
	Topic        string    `json:"topic"`
	Language     string    `json:"language"`
	Unsafe       bool      `json:"unsafe"`
	Untranslated bool      `json:"untranslated"`
	Backend      string    `json:"backend"`
	OccurredAt   time.Time `json:"occurred_at"`
}
