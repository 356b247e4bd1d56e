package submit_booking

import "errors"

var (
	// ErrSiteNotFound возвращается, когда выбранная локация не найдена в каталоге
	ErrSiteNotFound = errors.New("submit_booking: site not found")

	// ErrInvalidInput возвращается при некорректных или незаполненных обязательных полях
	// Ошибка исправима: пользователь дополняет форму и отправляет повторно
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrGroupTooLarge возвращается, когда размер группы превышает вместимость автомобиля
	ErrGroupTooLarge = errors.New("submit_booking: group size exceeds car capacity")

	// ErrSubmissionFailed возвращается при сетевой/HTTP ошибке отправки заявки
	// Черновик формы при этом сохраняется, пользователь может повторить отправку
	ErrSubmissionFailed = errors.New("submit_booking: failed to submit booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
