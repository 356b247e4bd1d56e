package quote_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrSiteNotFound возвращается, когда указанная локация не найдена
	ErrSiteNotFound = errors.New("quote_price: site not found")

	// ErrSiteRequired возвращается, когда стратегия flat_per_person
	// требует локацию, а она не указана
	ErrSiteRequired = errors.New("quote_price: site is required for flat per-person pricing")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
