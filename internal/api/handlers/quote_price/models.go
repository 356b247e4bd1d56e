package quote_price

import (
	"net/url"
	"strconv"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	quotePrice "github.com/m04kA/MHT-StorefrontService/internal/usecase/quote_price"
)

// QuoteResponse HTTP модель расчета стоимости
type QuoteResponse struct {
	Strategy        string  `json:"strategy"`
	HourlyPrice     float64 `json:"hourlyPrice"`
	TotalPrice      float64 `json:"totalPrice"`
	ConfirmationFee float64 `json:"confirmationFee,omitempty"`
}

// RequestFromQuery собирает запрос use case из query-параметров
// Незаполненные параметры получают значения по умолчанию, совпадающие
// с дефолтами черновика формы
func RequestFromQuery(query url.Values) (*quotePrice.Request, error) {
	req := &quotePrice.Request{
		CarType:       domain.DefaultCarType,
		VisitType:     domain.DefaultVisitType,
		PaymentMethod: domain.DefaultPaymentMethod,
		DurationHours: domain.DefaultDurationHours,
		GroupSize:     domain.DefaultGroupSize,
	}

	if v := query.Get("carType"); v != "" {
		req.CarType = domain.CarType(v)
	}
	if v := query.Get("visitType"); v != "" {
		req.VisitType = domain.VisitType(v)
	}
	if v := query.Get("paymentMethod"); v != "" {
		req.PaymentMethod = domain.PaymentMethod(v)
	}

	if v := query.Get("durationHours"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.DurationHours = hours
	}

	if v := query.Get("groupSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.GroupSize = size
	}

	if v := query.Get("siteId"); v != "" {
		siteID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SiteID = siteID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		Strategy:        resp.Strategy,
		HourlyPrice:     resp.HourlyPrice,
		TotalPrice:      resp.TotalPrice,
		ConfirmationFee: resp.ConfirmationFee,
	}
}
