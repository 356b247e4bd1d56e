package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	bookingClient "github.com/m04kA/MHT-StorefrontService/internal/integrations/bookingservice"
	catalogService "github.com/m04kA/MHT-StorefrontService/internal/service/catalog"
)

// UseCase use case отправки заявки на бронирование
type UseCase struct {
	catalog       CatalogService
	pricing       PricingService
	bookingClient BookingServiceClient
	rules         config.BookingConfig
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogService,
	pricing PricingService,
	bookingClient BookingServiceClient,
	rules config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:       catalog,
		pricing:       pricing,
		bookingClient: bookingClient,
		rules:         rules,
		logger:        logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: site=%d, group=%d, date=%s, time=%s, type=%s",
		req.SiteID, req.GroupSize, req.Date.Format(domain.DateFormat), req.Time, req.BookingType)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.rules); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем локацию из каталога
	site, err := uc.catalog.GetByID(ctx, req.SiteID)
	if err != nil {
		if errors.Is(err, catalogService.ErrSiteNotFound) {
			uc.logger.Warn("SubmitBooking: site id=%d not found", req.SiteID)
			return nil, ErrSiteNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get site id=%d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: failed to get site: %v", ErrInternal, err)
	}

	// 3. Считаем итоговую стоимость по активной стратегии
	draft := req.toDraft()
	totalPrice := uc.pricing.Total(&draft, site)

	// 4. Собираем payload для внешнего бэкенда
	payload := &bookingClient.BookingPayload{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SiteID:          site.ID,
		SiteName:        site.Name,
		GroupSize:       req.GroupSize,
		Date:            req.Date.Format(domain.DateFormat),
		Time:            req.Time.String(),
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      totalPrice,
		BookingType:     string(req.BookingType),
	}

	// 5. Отправляем заявку
	// Автоматических повторов нет: при ошибке черновик формы сохраняется
	// и пользователь отправляет заявку повторно сам
	booking, err := uc.bookingClient.CreateBooking(ctx, payload)
	if err != nil {
		if errors.Is(err, bookingClient.ErrUnavailable) {
			uc.logger.Error("SubmitBooking: booking backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}
		if errors.Is(err, bookingClient.ErrRejected) {
			uc.logger.Warn("SubmitBooking: booking rejected by backend: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	uc.logger.Info("SubmitBooking: booking accepted id=%s, total=%.2f, type=%s",
		booking.ID, totalPrice, req.BookingType)

	return &Response{
		BookingID:   booking.ID,
		SiteID:      site.ID,
		SiteName:    site.Name,
		GroupSize:   req.GroupSize,
		Date:        req.Date,
		Time:        req.Time,
		TotalPrice:  totalPrice,
		BookingType: req.BookingType,
		Status:      booking.Status,
	}, nil
}
