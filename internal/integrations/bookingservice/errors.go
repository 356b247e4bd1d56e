package bookingservice

import "errors"

var (
	// ErrRejected возвращается, когда бэкенд отклонил заявку (4xx)
	ErrRejected = errors.New("bookingservice client: booking rejected")

	// ErrUnavailable возвращается при сетевой ошибке или timeout
	ErrUnavailable = errors.New("bookingservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
