package start_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	paymentClient "github.com/m04kA/MHT-StorefrontService/internal/integrations/paymentservice"
)

// UseCase use case создания checkout-сессии для оплаты бронирования
type UseCase struct {
	paymentClient PaymentServiceClient
	checkout      config.CheckoutConfig
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(paymentClient PaymentServiceClient, checkout config.CheckoutConfig, logger Logger) *UseCase {
	return &UseCase{
		paymentClient: paymentClient,
		checkout:      checkout,
		logger:        logger,
	}
}

// Execute выполняет use case создания checkout-сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartCheckout: booking_id=%s", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID == "" {
		uc.logger.Warn("StartCheckout: empty booking id")
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	// success URL обязан содержать плейсхолдер: провайдер подставит в него
	// session id при редиректе обратно
	if !strings.Contains(uc.checkout.SuccessURL, domain.SessionIDPlaceholder) {
		uc.logger.Error("StartCheckout: misconfigured success url %q", uc.checkout.SuccessURL)
		return nil, ErrBadSuccessURL
	}

	// 2. Создаем checkout-сессию у провайдера
	session, err := uc.paymentClient.CreateCheckoutSession(ctx, &paymentClient.CheckoutSessionRequest{
		BookingID:  req.BookingID,
		SuccessURL: uc.checkout.SuccessURL,
		CancelURL:  uc.checkout.CancelURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentClient.ErrNoRedirectURL):
			// Ответ без URL - фатальная ошибка этой попытки, редирект не выполняем
			uc.logger.Error("StartCheckout: no redirect url for booking_id=%s", req.BookingID)
			return nil, ErrNoRedirectURL
		case errors.Is(err, paymentClient.ErrBookingNotFound):
			uc.logger.Warn("StartCheckout: booking_id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		default:
			uc.logger.Error("StartCheckout: failed to create session for booking_id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
		}
	}

	uc.logger.Info("StartCheckout: session created for booking_id=%s", req.BookingID)

	return &Response{RedirectURL: session.URL}, nil
}
