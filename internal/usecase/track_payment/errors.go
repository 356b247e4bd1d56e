package track_payment

import "errors"

var (
	// ErrInvalidInput возвращается при пустом session id
	ErrInvalidInput = errors.New("track_payment: invalid input data")

	// ErrCancelled возвращается при отмене контекста во время ожидания
	// между запросами статуса
	ErrCancelled = errors.New("track_payment: tracking cancelled")
)
