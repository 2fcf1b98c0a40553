package handler

import (
	"net/http"

	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves community reviews.
type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type CreateReviewRequest struct {
	Rating      int    `json:"rating"`
	Feedback    string `json:"feedback"`
	IsAnonymous bool   `json:"isAnonymous"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	review, err := h.service.Create(c.Request.Context(), currentUser(c), req.Rating, req.Feedback, req.IsAnonymous)
	if err != nil {
		serviceError(c, "CreateReview", err)
		return
	}
	respond(c, http.StatusCreated, "Review posted", review)
}

// List returns reviews newest first, anonymous authors masked.
func (h *ReviewHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	result, err := h.service.List(c.Request.Context(), currentUser(c), page, size)
	if err != nil {
		serviceError(c, "ListReviews", err)
		return
	}
	ok(c, result)
}

// Delete removes :id. Admins reach this through the admin routes as well.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		serviceError(c, "DeleteReview", err)
		return
	}
	respond(c, http.StatusOK, "Review deleted", nil)
}
