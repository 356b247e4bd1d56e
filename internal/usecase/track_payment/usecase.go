package track_payment

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// UseCase use case отслеживания статуса оплаты после редиректа от провайдера
//
// Явная машина состояний: idle -> processing -> {success | expired | error | timeout},
// терминальные состояния без переходов наружу. Опрос статуса перепланируется
// через Scheduler с фиксированным интервалом, не более maxAttempts запросов
type UseCase struct {
	paymentClient PaymentServiceClient
	scheduler     Scheduler
	notifier      Notifier
	interval      time.Duration
	maxAttempts   int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentClient PaymentServiceClient,
	scheduler Scheduler,
	notifier Notifier,
	cfg config.PaymentPollingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentClient: paymentClient,
		scheduler:     scheduler,
		notifier:      notifier,
		interval:      time.Duration(cfg.IntervalSeconds) * time.Second,
		maxAttempts:   cfg.MaxAttempts,
		logger:        logger,
	}
}

// Execute выполняет отслеживание оплаты до терминального состояния
// Все терминальные состояния (включая error и timeout) возвращаются
// как Response, а не как ошибка: каждое из них несет ровно одно
// пользовательское уведомление
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	uc.logger.Info("TrackPayment: session_id=%s, interval=%s, max_attempts=%d",
		req.SessionID, uc.interval, uc.maxAttempts)

	res := &Response{Status: domain.PaymentStatusNone}

	// 1. Session id обнаружен - входим в processing и начинаем опрос
	uc.transition(res, domain.PaymentStatusProcessing, msgProcessing)

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		status, err := uc.paymentClient.GetCheckoutStatus(ctx, req.SessionID)
		res.Attempts++

		// Любая транспортная ошибка терминальна, повторов нет
		if err != nil {
			uc.logger.Error("TrackPayment: status query failed for session_id=%s (attempt %d): %v",
				req.SessionID, attempt, err)
			uc.transition(res, domain.PaymentStatusError, msgError)
			return res, nil
		}

		// 2. Оплата прошла - успех, session_id вырезается из URL ровно один раз
		if status.IsPaid() {
			uc.logger.Info("TrackPayment: session_id=%s paid after %d attempts", req.SessionID, res.Attempts)
			uc.transition(res, domain.PaymentStatusSuccess, msgSuccess)
			res.CleanURL = stripSessionParam(req.ReturnURL)
			return res, nil
		}

		// 3. Сессия истекла - терминально для этой попытки оплаты
		if status.IsExpired() {
			uc.logger.Warn("TrackPayment: session_id=%s expired", req.SessionID)
			uc.transition(res, domain.PaymentStatusExpired, msgExpired)
			return res, nil
		}

		// 4. Оплата еще не завершена - ждем и опрашиваем снова
		// Повторные pending-ответы не порождают новых уведомлений
		uc.logger.Info("TrackPayment: session_id=%s still pending (attempt %d/%d)",
			req.SessionID, attempt, uc.maxAttempts)

		if attempt == uc.maxAttempts {
			break
		}

		if err := uc.scheduler.Sleep(ctx, uc.interval); err != nil {
			uc.logger.Warn("TrackPayment: session_id=%s tracking cancelled: %v", req.SessionID, err)
			return res, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
	}

	// 5. Лимит попыток исчерпан без разрешения
	uc.logger.Warn("TrackPayment: session_id=%s timed out after %d attempts", req.SessionID, res.Attempts)
	uc.transition(res, domain.PaymentStatusTimeout, msgTimeout)
	return res, nil
}

// transition переводит машину в новое состояние и эмитит ровно одно
// уведомление для него
func (uc *UseCase) transition(res *Response, to domain.PaymentStatus, message string) {
	res.Status = to
	res.Notifications = append(res.Notifications, Notification{Status: to, Message: message})
	uc.notifier.Notify(to, message)
}

// stripSessionParam вырезает session_id из query-строки URL возврата
// Используется для замены записи в истории браузера без перезагрузки
func stripSessionParam(returnURL string) string {
	if returnURL == "" {
		return ""
	}

	parsed, err := url.Parse(returnURL)
	if err != nil {
		return returnURL
	}

	query := parsed.Query()
	query.Del(domain.SessionIDQueryParam)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
