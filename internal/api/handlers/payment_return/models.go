package payment_return

import trackPayment "github.com/m04kA/MHT-StorefrontService/internal/usecase/track_payment"

// NotificationResponse одно пользовательское уведомление (toast-эквивалент)
type NotificationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TrackResponse HTTP модель результата отслеживания оплаты
type TrackResponse struct {
	Status        string                 `json:"status"` // success, expired, timeout, error
	Attempts      int                    `json:"attempts"`
	Notifications []NotificationResponse `json:"notifications"`
	// CleanURL URL страницы без session_id для замены записи в истории;
	// заполняется только при успешной оплате
	CleanURL string `json:"cleanUrl,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *trackPayment.Response) *TrackResponse {
	out := &TrackResponse{
		Status:        string(resp.Status),
		Attempts:      resp.Attempts,
		Notifications: make([]NotificationResponse, 0, len(resp.Notifications)),
		CleanURL:      resp.CleanURL,
	}
	for _, n := range resp.Notifications {
		out.Notifications = append(out.Notifications, NotificationResponse{
			Status:  string(n.Status),
			Message: n.Message,
		})
	}
	return out
}
