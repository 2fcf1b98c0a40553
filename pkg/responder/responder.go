// Package responder answers vaccine questions from canned, per-language
// content. A message is classified into a topic by keyword and the topic's
// answer is looked up in the requested language, falling back to English
// with a "translation in progress" notice.
package responder

import (
	"context"
	"time"

	"vaccine-village-go/internal/model"

	"github.com/google/uuid"
)

// DefaultDelay stands in for the latency of a real backend.
const DefaultDelay = 1500 * time.Millisecond

// Responder produces the assistant reply for a user message.
type Responder interface {
	// Respond answers message in language. Unrecognized languages are
	// answered in the default language. The only error is ctx ending
	// before the reply is ready.
	Respond(ctx context.Context, message, language string) (model.ChatMessage, error)
}

// Option configures the canned responder.
type Option func(*cannedResponder)

// WithDelay sets the simulated latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(r *cannedResponder) { r.delay = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *cannedResponder) { r.now = now }
}

// WithIDGenerator overrides the message id source.
func WithIDGenerator(newID func() string) Option {
	return func(r *cannedResponder) { r.newID = newID }
}

type cannedResponder struct {
	catalog *Catalog
	delay   time.Duration
	now     func() time.Time
	newID   func() string
}

// New returns a Responder backed by catalog. A nil catalog means
// DefaultCatalog.
func New(catalog *Catalog, opts ...Option) Responder {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	r := &cannedResponder{
		catalog: catalog,
		delay:   DefaultDelay,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *cannedResponder) Respond(ctx context.Context, message, language string) (model.ChatMessage, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return model.ChatMessage{}, ctx.Err()
		}
	}

	res := r.catalog.Lookup(Classify(message), language)
	return model.ChatMessage{
		ID:         r.newID(),
		Role:       model.RoleAssistant,
		Content:    res.Response.Content,
		Confidence: res.Response.Confidence,
		Sources:    res.Response.Sources,
		Timestamp:  r.now(),
	}, nil
}
