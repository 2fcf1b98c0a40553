package handler

import (
	"net/http"

	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// BookmarkHandler serves saved resources and messages.
type BookmarkHandler struct {
	service service.BookmarkService
}

func NewBookmarkHandler(service service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func (h *BookmarkHandler) ListResources(c *gin.Context) {
	list, err := h.service.ListResources(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		serviceError(c, "ListResourceBookmarks", err)
		return
	}
	ok(c, list)
}

// ToggleResource flips the bookmark on :id and returns the new state.
func (h *BookmarkHandler) ToggleResource(c *gin.Context) {
	on, err := h.service.ToggleResource(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		serviceError(c, "ToggleResourceBookmark", err)
		return
	}
	ok(c, gin.H{"resourceId": c.Param("id"), "bookmarked": on})
}

func (h *BookmarkHandler) ListMessages(c *gin.Context) {
	list, err := h.service.ListMessages(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		serviceError(c, "ListMessageBookmarks", err)
		return
	}
	ok(c, list)
}

type AddMessageBookmarkRequest struct {
	MessageID string `json:"messageId" binding:"required"`
}

func (h *BookmarkHandler) AddMessage(c *gin.Context) {
	var req AddMessageBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "messageId is required")
		return
	}
	list, err := h.service.AddMessage(c.Request.Context(), currentUser(c).ID, req.MessageID)
	if err != nil {
		serviceError(c, "AddMessageBookmark", err)
		return
	}
	ok(c, list)
}

func (h *BookmarkHandler) RemoveMessage(c *gin.Context) {
	list, err := h.service.RemoveMessage(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		serviceError(c, "RemoveMessageBookmark", err)
		return
	}
	ok(c, list)
}
