package paymentservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда шлюз не знает указанное бронирование
	ErrBookingNotFound = errors.New("paymentservice client: booking not found")

	// ErrSessionNotFound возвращается, когда checkout-сессия не найдена
	ErrSessionNotFound = errors.New("paymentservice client: checkout session not found")

	// ErrNoRedirectURL возвращается, когда в ответе на создание сессии нет URL редиректа
	ErrNoRedirectURL = errors.New("paymentservice client: response has no redirect url")

	// ErrUnavailable возвращается при сетевой ошибке или timeout
	ErrUnavailable = errors.New("paymentservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
