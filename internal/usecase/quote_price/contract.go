package quote_price

import (
	"context"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// PricingService интерфейс сервиса расчета стоимости
type PricingService interface {
	Strategy() string
	PriceFor(carType domain.CarType, visitType domain.VisitType) float64
	Total(draft *domain.BookingDraft, site *domain.Site) float64
	ConfirmationFee(total float64, method domain.PaymentMethod) float64
}

// CatalogService интерфейс каталога локаций
type CatalogService interface {
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
