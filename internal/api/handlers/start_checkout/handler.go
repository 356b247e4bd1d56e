package start_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
	startCheckout "github.com/m04kA/MHT-StorefrontService/internal/usecase/start_checkout"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "booking id is required"
	msgBookingNotFound    = "booking not found"
	msgCheckoutFailed     = "failed to start payment, please try again"
)

type Handler struct {
	useCase StartCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase StartCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/checkout - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, startCheckout.ErrInvalidInput):
			h.logger.Warn("POST /payments/checkout - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, startCheckout.ErrBookingNotFound):
			h.logger.Warn("POST /payments/checkout - booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, startCheckout.ErrNoRedirectURL),
			errors.Is(err, startCheckout.ErrCheckoutFailed):
			h.logger.Error("POST /payments/checkout - checkout failed: booking_id=%s: %v", req.BookingID, err)
			handlers.RespondBadGateway(w, msgCheckoutFailed)

		default:
			h.logger.Error("POST /payments/checkout - failed: booking_id=%s, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/checkout - session created: booking_id=%s", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
