package handler

import (
	"vaccine-village-go/internal/service"

	"github.com/gin-gonic/gin"
)

// OfflineHandler hands out offline content bundles.
type OfflineHandler struct {
	service service.OfflineService
}

func NewOfflineHandler(service service.OfflineService) *OfflineHandler {
	return &OfflineHandler{service: service}
}

// Prepare returns a download URL for the :language bundle.
func (h *OfflineHandler) Prepare(c *gin.Context) {
	info, err := h.service.Prepare(c.Request.Context(), currentUser(c).ID, c.Param("language"))
	if err != nil {
		serviceError(c, "PrepareOfflineBundle", err)
		return
	}
	ok(c, info)
}
