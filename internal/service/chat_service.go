package service

import (
	"context"
	"strings"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/pkg/events"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/responder"

	"github.com/google/uuid"
)

// Responder backends, as named in config and in published events.
const (
	BackendCanned = "canned"
	BackendLLM    = "llm"
)

// EventPublisher sends chat exchange events downstream.
type EventPublisher interface {
	PublishChatExchange(ctx context.Context, ev events.ChatExchange) error
}

type nopPublisher struct{}

func (nopPublisher) PublishChatExchange(context.Context, events.ChatExchange) error { return nil }

// NopPublisher discards events. Used when Kafka is disabled.
var NopPublisher EventPublisher = nopPublisher{}

var safetyRedirects = map[string]string{
	"en": "I can't answer that question safely. Please talk to a health worker at your nearest health facility.\n\n" +
		"Kenya Ministry of Health: +254-20-2717077\nKenya Health InfoLine: 719",
	"sw": "Siwezi kujibu swali hilo kwa usalama. Tafadhali zungumza na mhudumu wa afya katika kituo cha afya kilicho karibu nawe.\n\n" +
		"Wizara ya Afya Kenya: +254-20-2717077\nKenya Health InfoLine: 719",
}

// ChatReply is the outcome of one user message.
type ChatReply struct {
	Message      model.ChatMessage `json:"message"`
	Topic        string            `json:"topic,omitempty"`
	Language     string            `json:"language"`
	Unsafe       bool              `json:"unsafe"`
	Untranslated bool              `json:"untranslated"`
}

// ChatService answers user messages and keeps the chat log.
type ChatService interface {
	// SendMessage answers text in language. An empty language falls back to
	// the user's saved preference, then the default language.
	SendMessage(ctx context.Context, user *model.User, text, language string) (*ChatReply, error)
}

type chatService struct {
	responder        responder.Responder
	catalog          *responder.Catalog
	backend          string
	conversationRepo repository.ConversationRepository
	preferenceRepo   repository.PreferenceRepository
	publisher        EventPublisher
	now              func() time.Time
}

// NewChatService creates a ChatService. backend names the responder
// implementation in published events.
func NewChatService(
	r responder.Responder,
	catalog *responder.Catalog,
	backend string,
	conversationRepo repository.ConversationRepository,
	preferenceRepo repository.PreferenceRepository,
	publisher EventPublisher,
) ChatService {
	if catalog == nil {
		catalog = responder.DefaultCatalog()
	}
	if publisher == nil {
		publisher = NopPublisher
	}
	return &chatService{
		responder:        r,
		catalog:          catalog,
		backend:          backend,
		conversationRepo: conversationRepo,
		preferenceRepo:   preferenceRepo,
		publisher:        publisher,
		now:              time.Now,
	}
}

func (s *chatService) SendMessage(ctx context.Context, user *model.User, text, language string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	language = s.resolveLanguage(ctx, user.ID, language)
	if !s.catalog.Supports(language) {
		language = s.catalog.Primary()
	}

	if responder.IsUnsafeQuery(text) {
		reply := &ChatReply{
			Message:  s.safetyRedirect(language),
			Language: language,
			Unsafe:   true,
		}
		log.Warnw("Unsafe chat query redirected", "user_id", user.ID, "language", language)
		s.publish(ctx, user.ID, reply)
		return reply, nil
	}

	answer, err := s.responder.Respond(ctx, text, language)
	if err != nil {
		return nil, err
	}
	res := s.catalog.Lookup(responder.Classify(text), language)
	reply := &ChatReply{
		Message:  answer,
		Topic:    string(res.Topic),
		Language: res.Language,
		// only the canned fallback text is untranslated; a live answer was
		// written in the requested language
		Untranslated: res.Untranslated && answer.Content == res.Response.Content,
	}

	userMsg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	}
	if err := s.appendToLog(ctx, user.ID, userMsg, answer); err != nil {
		// the reply is still returned
		log.Errorf("Failed to save chat log for user %d: %v", user.ID, err)
	}

	s.publish(ctx, user.ID, reply)
	return reply, nil
}

func (s *chatService) resolveLanguage(ctx context.Context, userID uint, language string) string {
	if language = strings.ToLower(strings.TrimSpace(language)); language != "" {
		return language
	}
	if s.preferenceRepo != nil {
		prefs, err := s.preferenceRepo.Get(ctx, userID)
		if err == nil && prefs.Language != "" {
			return prefs.Language
		}
	}
	return s.catalog.Primary()
}

func (s *chatService) safetyRedirect(language string) model.ChatMessage {
	content, ok := safetyRedirects[language]
	if !ok {
		content = safetyRedirects["en"]
	}
	return model.ChatMessage{
		ID:         uuid.NewString(),
		Role:       model.RoleAssistant,
		Content:    content,
		Confidence: model.ConfidenceHigh,
		Timestamp:  s.now(),
	}
}

func (s *chatService) appendToLog(ctx context.Context, userID uint, messages ...model.ChatMessage) error {
	conversationID, err := s.conversationRepo.GetOrCreateConversationID(ctx, userID)
	if err != nil {
		return err
	}
	return s.conversationRepo.AppendMessages(ctx, userID, conversationID, messages...)
}

func (s *chatService) publish(ctx context.Context, userID uint, reply *ChatReply) {
	ev := events.ChatExchange{
		MessageID:    reply.Message.ID,
		UserID:       userID,
		Topic:        reply.Topic,
		Language:     reply.Language,
		Unsafe:       reply.Unsafe,
		Untranslated: reply.Untranslated,
		Backend:      s.backend,
		OccurredAt:   reply.Message.Timestamp,
	}
	if err := s.publisher.PublishChatExchange(ctx, ev); err != nil {
		log.Warnf("Failed to publish chat exchange %s: %v", ev.MessageID, err)
	}
}
