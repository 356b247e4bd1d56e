package bookingservice

// BookingPayload тело запроса на создание бронирования
// Формат полей зафиксирован контрактом внешнего бэкенда (snake_case)
type BookingPayload struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	SiteID          int64   `json:"site_id"`
	SiteName        string  `json:"site_name"`
	GroupSize       int     `json:"group_size"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Time            string  `json:"time"` // HH:MM
	SpecialRequests string  `json:"special_requests"`
	TotalPrice      float64 `json:"total_price"`
	BookingType     string  `json:"booking_type"` // "contact" или "payment"
}

// Booking созданное бронирование, возвращаемое бэкендом
type Booking struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	SiteID      int64   `json:"site_id"`
	SiteName    string  `json:"site_name"`
	GroupSize   int     `json:"group_size"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	TotalPrice  float64 `json:"total_price"`
	BookingType string  `json:"booking_type"`
	Status      string  `json:"status"` // pending, confirmed, cancelled
	CreatedAt   string  `json:"created_at"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Detail string `json:"detail"`
}
