package submit_booking

import (
	"time"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	"github.com/m04kA/MHT-StorefrontService/pkg/types"
)

// Request модель запроса на отправку бронирования
// Поля повторяют черновик формы плюс выбранная локация и тип заявки
type Request struct {
	Name            string
	Email           string
	Phone           string
	SiteID          int64
	GroupSize       int
	Date            time.Time        // Дата тура (без времени)
	Time            types.TimeString // Время начала тура (например, "10:00")
	DurationHours   int
	CarType         domain.CarType
	VisitType       domain.VisitType
	PaymentMethod   domain.PaymentMethod
	SpecialRequests string
	BookingType     domain.BookingType // contact или payment
}

// toDraft собирает черновик формы для расчета стоимости
func (r *Request) toDraft() domain.BookingDraft {
	return domain.BookingDraft{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		GroupSize:       r.GroupSize,
		Date:            r.Date,
		Time:            r.Time,
		DurationHours:   r.DurationHours,
		CarType:         r.CarType,
		VisitType:       r.VisitType,
		PaymentMethod:   r.PaymentMethod,
		SpecialRequests: r.SpecialRequests,
	}
}

// Response модель ответа с принятым бронированием
type Response struct {
	BookingID   string
	SiteID      int64
	SiteName    string
	GroupSize   int
	Date        time.Time
	Time        types.TimeString
	TotalPrice  float64
	BookingType domain.BookingType
	Status      string
}
