package get_site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers/list_sites"
	catalogService "github.com/m04kA/MHT-StorefrontService/internal/service/catalog"
)

const (
	msgInvalidSiteID = "invalid site id"
	msgSiteNotFound  = "site not found"
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

// Handle GET /api/v1/sites/{siteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	siteID, err := strconv.ParseInt(vars["siteId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sites/{siteId} - invalid site id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	site, err := h.catalog.GetByID(r.Context(), siteID)
	if err != nil {
		if errors.Is(err, catalogService.ErrSiteNotFound) {
			h.logger.Warn("GET /sites/{siteId} - site id=%d not found", siteID)
			handlers.RespondNotFound(w, msgSiteNotFound)
			return
		}
		h.logger.Error("GET /sites/{siteId} - failed to get site id=%d: %v", siteID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites/{siteId} - returned site id=%d", siteID)
	handlers.RespondJSON(w, http.StatusOK, list_sites.FromDomainSite(site))
}
