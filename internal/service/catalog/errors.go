package catalog

import "errors"

var (
	// ErrSiteNotFound возвращается, когда локация не найдена в каталоге
	ErrSiteNotFound = errors.New("catalog: site not found")

	// ErrEmptyCatalog возвращается, когда в БД нет ни одной локации
	ErrEmptyCatalog = errors.New("catalog: no sites loaded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
