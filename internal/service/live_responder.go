package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/llm"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/responder"

	"github.com/google/uuid"
)

const liveSystemPrompt = `You are a vaccine information assistant for families in Kenya.
Answer only questions about vaccines and immunization. Keep answers short, factual and friendly.
Base your answer on the reference answer below; do not contradict it and do not invent clinics, phone numbers or schedules.
If the question asks for medical advice about a specific person, tell them to visit their nearest health facility.
Reply in %s.

Reference answer:
%s`

// liveResponder asks an LLM for the answer, grounded on the canned answer
// for the classified topic. Any LLM failure falls back to the canned reply.
type liveResponder struct {
	client   llm.Client
	catalog  *responder.Catalog
	fallback responder.Responder
	now      func() time.Time
}

// NewLiveResponder returns a responder.Responder backed by client.
func NewLiveResponder(client llm.Client, catalog *responder.Catalog, fallback responder.Responder) responder.Responder {
	if catalog == nil {
		catalog = responder.DefaultCatalog()
	}
	if fallback == nil {
		fallback = responder.New(catalog, responder.WithDelay(0))
	}
	return &liveResponder{client: client, catalog: catalog, fallback: fallback, now: time.Now}
}

func (r *liveResponder) Respond(ctx context.Context, message, language string) (model.ChatMessage, error) {
	res := r.catalog.Lookup(responder.Classify(message), language)

	answer, err := r.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(liveSystemPrompt, r.languageName(res.Language), res.Response.Content)},
		{Role: "user", Content: message},
	}, nil)
	answer = strings.TrimSpace(answer)
	if err == nil && answer == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		if ctx.Err() != nil {
			return model.ChatMessage{}, ctx.Err()
		}
		log.Warnf("Live responder failed, using canned reply: %v", err)
		return r.fallback.Respond(ctx, message, language)
	}

	return model.ChatMessage{
		ID:         uuid.NewString(),
		Role:       model.RoleAssistant,
		Content:    answer,
		Confidence: model.ConfidenceMedium,
		Sources:    res.Response.Sources,
		Timestamp:  r.now(),
	}, nil
}

func (r *liveResponder) languageName(code string) string {
	for _, l := range r.catalog.Languages() {
		if l.Code == code {
			return l.Name
		}
	}
	return "English"
}
