package start_checkout

import (
	"context"

	"github.com/m04kA/MHT-StorefrontService/internal/integrations/paymentservice"
)

// PaymentServiceClient интерфейс клиента платежного шлюза
type PaymentServiceClient interface {
	CreateCheckoutSession(ctx context.Context, req *paymentservice.CheckoutSessionRequest) (*paymentservice.CheckoutSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
