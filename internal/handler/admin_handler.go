package handler

import (
	"net/http"
	"strconv"
	"time"

	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	adminService    service.AdminService
	reviewService   service.ReviewService
	feedbackService service.FeedbackService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService, reviewService service.ReviewService, feedbackService service.FeedbackService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		reviewService:   reviewService,
		feedbackService: feedbackService,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, size := pageParams(c)
	users, err := h.adminService.ListUsers(page, size)
	if err != nil {
		serviceError(c, "ListUsers", err)
		return
	}
	ok(c, users)
}

// GetAllConversations supports ?userid=, ?start_date= and ?end_date=
// (YYYY-MM-DD, end date inclusive).
func (h *AdminHandler) GetAllConversations(c *gin.Context) {
	var userID *uint
	if userIDStr := c.Query("userid"); userIDStr != "" {
		id, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid user ID format")
			return
		}
		uid := uint(id)
		userID = &uid
	}

	var startTime, endTime *time.Time
	const dateLayout = "2006-01-02"
	if s := c.Query("start_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid start_date format, use YYYY-MM-DD")
			return
		}
		startTime = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid end_date format, use YYYY-MM-DD")
			return
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		endTime = &t
	}

	conversations, err := h.adminService.GetAllConversations(c.Request.Context(), userID, startTime, endTime)
	if err != nil {
		serviceError(c, "GetAllConversations", err)
		return
	}
	ok(c, conversations)
}

// GetStats returns topic counts per language.
func (h *AdminHandler) GetStats(c *gin.Context) {
	report, err := h.adminService.GetStats(c.Request.Context())
	if err != nil {
		serviceError(c, "GetStats", err)
		return
	}
	ok(c, report)
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		serviceError(c, "AdminDeleteReview", err)
		return
	}
	respond(c, http.StatusOK, "Review deleted", nil)
}

func (h *AdminHandler) ListFeedback(c *gin.Context) {
	page, size := pageParams(c)
	items, total, err := h.feedbackService.List(c.Request.Context(), page, size)
	if err != nil {
		serviceError(c, "ListFeedback", err)
		return
	}
	ok(c, gin.H{"content": items, "totalElements": total})
}
