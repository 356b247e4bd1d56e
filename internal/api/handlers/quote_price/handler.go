package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
	quotePrice "github.com/m04kA/MHT-StorefrontService/internal/usecase/quote_price"
)

const (
	msgInvalidQuery = "invalid query parameters"
	msgSiteNotFound = "site not found"
	msgSiteRequired = "site id is required for this pricing strategy"
	msgInvalidInput = "invalid pricing selection"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := RequestFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /pricing/quote - invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrSiteNotFound):
			handlers.RespondNotFound(w, msgSiteNotFound)

		case errors.Is(err, quotePrice.ErrSiteRequired):
			handlers.RespondBadRequest(w, msgSiteRequired)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /pricing/quote - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
