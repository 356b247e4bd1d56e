package quote_price

import "github.com/m04kA/MHT-StorefrontService/internal/domain"

// Request модель запроса расчета стоимости по текущим выборам формы
type Request struct {
	SiteID        int64 // Обязателен только для стратегии flat_per_person
	CarType       domain.CarType
	VisitType     domain.VisitType
	DurationHours int
	GroupSize     int
	PaymentMethod domain.PaymentMethod
}

// Response модель ответа с расчетом стоимости
type Response struct {
	Strategy        string
	HourlyPrice     float64
	TotalPrice      float64
	ConfirmationFee float64 // Предоплата 25% при оплате наличными, иначе 0
}
