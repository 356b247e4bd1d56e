package start_checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_checkout: invalid input data")

	// ErrBookingNotFound возвращается, когда шлюз не знает указанное бронирование
	ErrBookingNotFound = errors.New("start_checkout: booking not found")

	// ErrNoRedirectURL возвращается, когда шлюз не вернул URL редиректа
	// Фатально для этой попытки оплаты: редирект не выполняется
	ErrNoRedirectURL = errors.New("start_checkout: checkout session has no redirect url")

	// ErrCheckoutFailed возвращается при сетевой/HTTP ошибке создания сессии
	ErrCheckoutFailed = errors.New("start_checkout: failed to create checkout session")

	// ErrBadSuccessURL возвращается, когда success URL не содержит
	// плейсхолдер для session id
	ErrBadSuccessURL = errors.New("start_checkout: success url has no session id placeholder")
)
