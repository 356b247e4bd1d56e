package list_sites

import (
	"net/http"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/sites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sites := h.catalog.List(r.Context())

	h.logger.Info("GET /sites - returned %d sites", len(sites))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSiteList(sites))
}
