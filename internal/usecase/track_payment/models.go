package track_payment

import "github.com/m04kA/MHT-StorefrontService/internal/domain"

// Request модель запроса на отслеживание оплаты
type Request struct {
	// SessionID идентификатор checkout-сессии из query-параметра session_id
	SessionID string
	// ReturnURL полный URL возврата; на успехе из него один раз
	// вырезается session_id для замены записи в истории браузера
	ReturnURL string
}

// Notification одно пользовательское уведомление (toast-эквивалент)
type Notification struct {
	Status  domain.PaymentStatus
	Message string
}

// Response результат отслеживания оплаты
type Response struct {
	// Status терминальное состояние: success, expired, timeout или error
	Status domain.PaymentStatus
	// Attempts количество выполненных запросов статуса
	Attempts int
	// Notifications уведомления в порядке входа в состояния,
	// ровно одно на каждое состояние
	Notifications []Notification
	// CleanURL URL возврата без session_id; заполняется только на успехе
	CleanURL string
}

// Пользовательские сообщения состояний
const (
	msgProcessing = "Payment is being processed..."
	msgSuccess    = "Payment successful! Your tour booking is confirmed."
	msgExpired    = "Payment session expired. Please try again."
	msgTimeout    = "Payment status check timed out. Please check your email for confirmation."
	msgError      = "Error checking payment status. Please try again."
)
