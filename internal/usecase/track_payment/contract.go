package track_payment

import (
	"context"
	"time"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	"github.com/m04kA/MHT-StorefrontService/internal/integrations/paymentservice"
)

// PaymentServiceClient интерфейс клиента платежного шлюза
type PaymentServiceClient interface {
	GetCheckoutStatus(ctx context.Context, sessionID string) (*paymentservice.CheckoutStatus, error)
}

// Scheduler абстракция отложенного выполнения с поддержкой отмены
// Позволяет тестировать таймауты поллинга без реального времени
type Scheduler interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Notifier интерфейс уведомлений пользователя (toast-эквивалент)
// Вызывается ровно один раз при каждом входе в новое состояние
type Notifier interface {
	Notify(status domain.PaymentStatus, message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealScheduler планировщик на реальном времени для production
type RealScheduler struct{}

// Sleep блокируется на d или до отмены контекста
func (s *RealScheduler) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopNotifier заглушка для вызовов без подписчика на уведомления
type NopNotifier struct{}

// Notify ничего не делает
func (NopNotifier) Notify(domain.PaymentStatus, string) {}
