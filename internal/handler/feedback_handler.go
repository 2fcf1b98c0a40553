package handler

import (
	"net/http"

	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler accepts private app feedback.
type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Language string `json:"language"`
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	fb, err := h.service.Submit(c.Request.Context(), currentUser(c), req.Rating, req.Comment, req.Language)
	if err != nil {
		serviceError(c, "SubmitFeedback", err)
		return
	}
	respond(c, http.StatusCreated, "Thank you for your feedback", fb)
}
