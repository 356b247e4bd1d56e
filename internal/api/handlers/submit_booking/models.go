package submit_booking

import (
	"time"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	submitBooking "github.com/m04kA/MHT-StorefrontService/internal/usecase/submit_booking"
	"github.com/m04kA/MHT-StorefrontService/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SiteID          int64  `json:"siteId"`
	GroupSize       int    `json:"groupSize"`
	Date            string `json:"date"` // "2025-10-15"
	Time            string `json:"time"` // "10:00"
	DurationHours   int    `json:"durationHours"`
	CarType         string `json:"carType"`
	VisitType       string `json:"visitType"`
	PaymentMethod   string `json:"paymentMethod"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	BookingType     string `json:"bookingType"` // "contact" или "payment"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID   string  `json:"bookingId"`
	SiteID      int64   `json:"siteId"`
	SiteName    string  `json:"siteName"`
	GroupSize   int     `json:"groupSize"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	TotalPrice  float64 `json:"totalPrice"`
	BookingType string  `json:"bookingType"`
	Status      string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время валидируются на уровне формата; пустые значения пропускаются
// и отлавливаются валидацией use case как незаполненные обязательные поля
func (r *SubmitBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var startTime types.TimeString
	if r.Time != "" {
		parsed, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		startTime = parsed
	}

	return &submitBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SiteID:          r.SiteID,
		GroupSize:       r.GroupSize,
		Date:            date,
		Time:            startTime,
		DurationHours:   r.DurationHours,
		CarType:         domain.CarType(r.CarType),
		VisitType:       domain.VisitType(r.VisitType),
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		SpecialRequests: r.SpecialRequests,
		BookingType:     domain.BookingType(r.BookingType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   resp.BookingID,
		SiteID:      resp.SiteID,
		SiteName:    resp.SiteName,
		GroupSize:   resp.GroupSize,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		TotalPrice:  resp.TotalPrice,
		BookingType: string(resp.BookingType),
		Status:      resp.Status,
	}
}
