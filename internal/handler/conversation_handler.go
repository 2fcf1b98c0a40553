package handler

import (
	"net/http"

	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ConversationHandler serves the chat log.
type ConversationHandler struct {
	service service.ConversationService
}

func NewConversationHandler(service service.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// GetConversations returns the caller's chat log, oldest first.
func (h *ConversationHandler) GetConversations(c *gin.Context) {
	history, err := h.service.GetConversationHistory(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		serviceError(c, "GetConversations", err)
		return
	}
	ok(c, history)
}

func (h *ConversationHandler) ClearConversation(c *gin.Context) {
	if err := h.service.ClearConversation(c.Request.Context(), currentUser(c).ID); err != nil {
		serviceError(c, "ClearConversation", err)
		return
	}
	respond(c, http.StatusOK, "Conversation cleared", nil)
}
