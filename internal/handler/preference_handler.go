package handler

import (
	"net/http"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler serves user settings.
type PreferenceHandler struct {
	service service.PreferenceService
}

func NewPreferenceHandler(service service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.service.Get(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		serviceError(c, "GetPreferences", err)
		return
	}
	ok(c, prefs)
}

// Update applies a partial update; omitted fields keep their value.
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req model.PreferencesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	prefs, err := h.service.Update(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		serviceError(c, "UpdatePreferences", err)
		return
	}
	ok(c, prefs)
}
