package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MHT-StorefrontService/internal/api/handlers"
	submitBooking "github.com/m04kA/MHT-StorefrontService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingFields      = "please fill in all required fields"
	msgGroupTooLarge      = "group size exceeds the selected car capacity"
	msgSiteNotFound       = "site not found"
	msgSubmitFailed       = "failed to submit booking, please try again"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrGroupTooLarge):
			h.logger.Warn("POST /bookings - group too large: site_id=%d, group=%d", req.SiteID, req.GroupSize)
			handlers.RespondBadRequest(w, msgGroupTooLarge)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - validation failed: site_id=%d: %v", req.SiteID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, submitBooking.ErrSiteNotFound):
			h.logger.Warn("POST /bookings - site not found: site_id=%d", req.SiteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		case errors.Is(err, submitBooking.ErrSubmissionFailed):
			// Черновик формы на стороне клиента сохраняется, пользователь повторит отправку
			h.logger.Error("POST /bookings - submission failed: site_id=%d: %v", req.SiteID, err)
			handlers.RespondBadGateway(w, msgSubmitFailed)

		default:
			h.logger.Error("POST /bookings - failed to submit booking: site_id=%d, error=%v", req.SiteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking submitted: booking_id=%s, site_id=%d, type=%s",
		result.BookingID, result.SiteID, result.BookingType)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
