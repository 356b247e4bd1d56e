package start_checkout

// Request модель запроса на создание checkout-сессии
type Request struct {
	BookingID string
}

// Response модель ответа с URL hosted checkout страницы
// Вызывающая сторона выполняет полный редирект на RedirectURL
type Response struct {
	RedirectURL string
}
