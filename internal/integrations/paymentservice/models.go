package paymentservice

// CheckoutSessionRequest тело запроса на создание checkout-сессии
// success_url должен содержать плейсхолдер {CHECKOUT_SESSION_ID},
// который провайдер подставит при редиректе обратно
type CheckoutSessionRequest struct {
	BookingID  string `json:"booking_id"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CheckoutSession созданная checkout-сессия
type CheckoutSession struct {
	SessionID string `json:"session_id,omitempty"`
	URL       string `json:"url"` // URL hosted checkout страницы для редиректа
}

// Значения статусов, которые возвращает провайдер
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusUnpaid  = "unpaid"
	SessionStatusOpen    = "open"
	SessionStatusExpired = "expired"
)

// CheckoutStatus статус checkout-сессии
type CheckoutStatus struct {
	// PaymentStatus статус оплаты: "paid" / "unpaid"
	PaymentStatus string `json:"payment_status"`
	// Status статус сессии: "open" / "complete" / "expired"
	Status string `json:"status"`
}

// IsPaid возвращает true, если оплата прошла
func (s *CheckoutStatus) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// IsExpired возвращает true, если сессия истекла
func (s *CheckoutStatus) IsExpired() bool {
	return s.Status == SessionStatusExpired
}
