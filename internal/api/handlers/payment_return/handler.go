package payment_return

import (
	"errors"
	"net/http"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	trackPayment "github.com/m04kA/MHT-StorefrontService/internal/usecase/track_payment"
)

const (
	msgMissingSessionID = "session_id query parameter is required"
)

type Handler struct {
	useCase TrackPaymentUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase TrackPaymentUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/return
// Вызывается страницей после редиректа от провайдера; блокируется до
// терминального состояния трекера (не дольше interval * max_attempts)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get(domain.SessionIDQueryParam)
	if sessionID == "" {
		h.logger.Warn("GET /payments/return - missing session_id")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	req := &trackPayment.Request{
		SessionID: sessionID,
		ReturnURL: r.URL.Query().Get("return_url"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, trackPayment.ErrCancelled) {
			// Клиент ушел со страницы, отвечать уже некому
			h.logger.Warn("GET /payments/return - tracking cancelled: session_id=%s", sessionID)
			return
		}
		h.logger.Error("GET /payments/return - failed: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.metrics.AddPaymentPolls(result.Attempts)
	h.metrics.RecordPaymentTrackResult(string(result.Status))

	h.logger.Info("GET /payments/return - session_id=%s resolved as %s after %d attempts",
		sessionID, result.Status, result.Attempts)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
