package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	catalogService "github.com/m04kA/MHT-StorefrontService/internal/service/catalog"
)

// UseCase use case расчета стоимости по текущим выборам формы
// Обслуживает блок "Pricing Information" формы бронирования
type UseCase struct {
	pricing PricingService
	catalog CatalogService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, catalog CatalogService, logger Logger) *UseCase {
	return &UseCase{
		pricing: pricing,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Для стратегии flat_per_person нужна базовая цена локации
	site := &domain.Site{}
	if uc.pricing.Strategy() == config.StrategyFlatPerPerson {
		if req.SiteID <= 0 {
			uc.logger.Warn("QuotePrice: site required for flat pricing")
			return nil, ErrSiteRequired
		}
		var err error
		site, err = uc.catalog.GetByID(ctx, req.SiteID)
		if err != nil {
			if errors.Is(err, catalogService.ErrSiteNotFound) {
				uc.logger.Warn("QuotePrice: site id=%d not found", req.SiteID)
				return nil, ErrSiteNotFound
			}
			uc.logger.Error("QuotePrice: failed to get site id=%d: %v", req.SiteID, err)
			return nil, fmt.Errorf("%w: failed to get site: %v", ErrInternal, err)
		}
	}

	// 3. Считаем стоимость
	draft := domain.BookingDraft{
		GroupSize:     req.GroupSize,
		DurationHours: req.DurationHours,
		CarType:       req.CarType,
		VisitType:     req.VisitType,
		PaymentMethod: req.PaymentMethod,
	}

	hourly := uc.pricing.PriceFor(req.CarType, req.VisitType)
	total := uc.pricing.Total(&draft, site)
	fee := uc.pricing.ConfirmationFee(total, req.PaymentMethod)

	uc.logger.Info("QuotePrice: car=%s, visit=%s, hours=%d, group=%d -> hourly=%.2f, total=%.2f",
		req.CarType, req.VisitType, req.DurationHours, req.GroupSize, hourly, total)

	return &Response{
		Strategy:        uc.pricing.Strategy(),
		HourlyPrice:     hourly,
		TotalPrice:      total,
		ConfirmationFee: fee,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.CarType.IsValid() {
		return fmt.Errorf("%w: unknown car type %q", ErrInvalidInput, req.CarType)
	}

	if !req.VisitType.IsValid() {
		return fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.GroupSize < domain.MinGroupSize || req.GroupSize > req.CarType.Capacity() {
		return fmt.Errorf("%w: group size must be between %d and %d",
			ErrInvalidInput, domain.MinGroupSize, req.CarType.Capacity())
	}

	return nil
}
