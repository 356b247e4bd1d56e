package payment_return

import (
	"context"

	trackPayment "github.com/m04kA/MHT-StorefrontService/internal/usecase/track_payment"
)

type TrackPaymentUseCase interface {
	Execute(ctx context.Context, req *trackPayment.Request) (*trackPayment.Response, error)
}

// Metrics интерфейс метрик трекинга оплат
type Metrics interface {
	AddPaymentPolls(n int)
	RecordPaymentTrackResult(state string)
}

// NopMetrics заглушка, когда сбор метрик выключен конфигурацией
type NopMetrics struct{}

func (NopMetrics) AddPaymentPolls(int)             {}
func (NopMetrics) RecordPaymentTrackResult(string) {}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
