package handler

import (
	"net/http"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/responder"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the resource catalog and the language list.
type ResourceHandler struct {
	service service.ResourceService
	catalog *responder.Catalog
}

func NewResourceHandler(service service.ResourceService, catalog *responder.Catalog) *ResourceHandler {
	if catalog == nil {
		catalog = responder.DefaultCatalog()
	}
	return &ResourceHandler{service: service, catalog: catalog}
}

// List returns resources, optionally filtered by ?category=, or search hits
// when ?q= is set.
func (h *ResourceHandler) List(c *gin.Context) {
	category := c.Query("category")
	if q, has := c.GetQuery("q"); has {
		hits, err := h.service.Search(c.Request.Context(), q, category)
		if err != nil {
			serviceError(c, "SearchResources", err)
			return
		}
		ok(c, hits)
		return
	}
	switch category {
	case "", model.CategoryGeneral, model.CategorySchedules, model.CategorySafety:
	default:
		serviceError(c, "ListResources", service.ErrInvalidCategory)
		return
	}
	ok(c, h.service.List(category))
}

func (h *ResourceHandler) Get(c *gin.Context) {
	r, found := h.service.Get(c.Param("id"))
	if !found {
		fail(c, http.StatusNotFound, service.ErrResourceNotFound.Error())
		return
	}
	ok(c, r)
}

// Languages lists the supported language codes.
func (h *ResourceHandler) Languages(c *gin.Context) {
	type languageView struct {
		responder.Language
		Translated bool `json:"translated"`
	}
	langs := h.catalog.Languages()
	out := make([]languageView, 0, len(langs))
	for _, l := range langs {
		out = append(out, languageView{Language: l, Translated: h.catalog.HasTable(l.Code)})
	}
	ok(c, out)
}
