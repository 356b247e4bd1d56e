package submit_booking

import (
	"context"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	"github.com/m04kA/MHT-StorefrontService/internal/integrations/bookingservice"
)

// CatalogService интерфейс каталога локаций
type CatalogService interface {
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
}

// PricingService интерфейс сервиса расчета стоимости
type PricingService interface {
	Total(draft *domain.BookingDraft, site *domain.Site) float64
}

// BookingServiceClient интерфейс клиента внешнего booking-бэкенда
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, payload *bookingservice.BookingPayload) (*bookingservice.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
