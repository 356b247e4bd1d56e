package track_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	"github.com/m04kA/MHT-StorefrontService/internal/integrations/paymentservice"
)

// fakePaymentClient возвращает заранее заданную последовательность ответов
type fakePaymentClient struct {
	responses []fakeStatusResponse
	calls     int
}

type fakeStatusResponse struct {
	status *paymentservice.CheckoutStatus
	err    error
}

func (f *fakePaymentClient) GetCheckoutStatus(_ context.Context, _ string) (*paymentservice.CheckoutStatus, error) {
	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected extra status query")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp.status, resp.err
}

// fakeScheduler не ждет реального времени, только считает вызовы
type fakeScheduler struct {
	sleeps []time.Duration
	err    error
}

func (f *fakeScheduler) Sleep(_ context.Context, d time.Duration) error {
	f.sleeps = append(f.sleeps, d)
	return f.err
}

// recordingNotifier собирает все уведомления в порядке эмиссии
type recordingNotifier struct {
	notifications []Notification
}

func (r *recordingNotifier) Notify(status domain.PaymentStatus, message string) {
	r.notifications = append(r.notifications, Notification{Status: status, Message: message})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	statusPending = &paymentservice.CheckoutStatus{
		PaymentStatus: paymentservice.PaymentStatusUnpaid,
		Status:        paymentservice.SessionStatusOpen,
	}
	statusPaid = &paymentservice.CheckoutStatus{
		PaymentStatus: paymentservice.PaymentStatusPaid,
		Status:        "complete",
	}
	statusExpired = &paymentservice.CheckoutStatus{
		PaymentStatus: paymentservice.PaymentStatusUnpaid,
		Status:        paymentservice.SessionStatusExpired,
	}
)

func newTestUseCase(client *fakePaymentClient, scheduler *fakeScheduler, notifier *recordingNotifier) *UseCase {
	return NewUseCase(client, scheduler, notifier, config.PaymentPollingConfig{
		IntervalSeconds: 2,
		MaxAttempts:     5,
	}, nopLogger{})
}

func TestExecute_SuccessAfterPendingAttempts(t *testing.T) {
	client := &fakePaymentClient{responses: []fakeStatusResponse{
		{status: statusPending},
		{status: statusPending},
		{status: statusPaid},
	}}
	scheduler := &fakeScheduler{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(client, scheduler, notifier)

	res, err := uc.Execute(context.Background(), &Request{
		SessionID: "cs_test_123",
		ReturnURL: "https://tours.example/return?session_id=cs_test_123&lang=en",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusSuccess, res.Status)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 3, client.calls)

	// Ожидание только между pending-ответами
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, scheduler.sleeps)

	// session_id вырезан из URL возврата, остальные параметры сохранены
	assert.Equal(t, "https://tours.example/return?lang=en", res.CleanURL)

	// Ровно одно уведомление на состояние: processing, затем success
	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, domain.PaymentStatusProcessing, notifier.notifications[0].Status)
	assert.Equal(t, "Payment is being processed...", notifier.notifications[0].Message)
	assert.Equal(t, domain.PaymentStatusSuccess, notifier.notifications[1].Status)
	assert.Equal(t, "Payment successful! Your tour booking is confirmed.", notifier.notifications[1].Message)
	assert.Equal(t, notifier.notifications, res.Notifications)
}

func TestExecute_TimeoutAfterMaxAttempts(t *testing.T) {
	client := &fakePaymentClient{responses: []fakeStatusResponse{
		{status: statusPending},
		{status: statusPending},
		{status: statusPending},
		{status: statusPending},
		{status: statusPending},
	}}
	scheduler := &fakeScheduler{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(client, scheduler, notifier)

	res, err := uc.Execute(context.Background(), &Request{SessionID: "cs_test_123"})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusTimeout, res.Status)
	assert.Equal(t, 5, res.Attempts)
	// Шестого запроса нет, после последней попытки ожидания нет
	assert.Equal(t, 5, client.calls)
	assert.Len(t, scheduler.sleeps, 4)

	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, domain.PaymentStatusProcessing, notifier.notifications[0].Status)
	assert.Equal(t, domain.PaymentStatusTimeout, notifier.notifications[1].Status)
	assert.Equal(t,
		"Payment status check timed out. Please check your email for confirmation.",
		notifier.notifications[1].Message)
}

func TestExecute_ExpiredSession(t *testing.T) {
	client := &fakePaymentClient{responses: []fakeStatusResponse{
		{status: statusExpired},
	}}
	scheduler := &fakeScheduler{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(client, scheduler, notifier)

	res, err := uc.Execute(context.Background(), &Request{SessionID: "cs_test_123"})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusExpired, res.Status)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, scheduler.sleeps)
	assert.Empty(t, res.CleanURL)

	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, "Payment session expired. Please try again.", notifier.notifications[1].Message)
}

func TestExecute_TransportErrorIsTerminal(t *testing.T) {
	client := &fakePaymentClient{responses: []fakeStatusResponse{
		{err: paymentservice.ErrUnavailable},
	}}
	scheduler := &fakeScheduler{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(client, scheduler, notifier)

	res, err := uc.Execute(context.Background(), &Request{SessionID: "cs_test_123"})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusError, res.Status)
	assert.Equal(t, 1, res.Attempts)
	// Ошибка терминальна: повторов нет
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, scheduler.sleeps)

	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, "Error checking payment status. Please try again.", notifier.notifications[1].Message)
}

func TestExecute_CancelledDuringWait(t *testing.T) {
	client := &fakePaymentClient{responses: []fakeStatusResponse{
		{status: statusPending},
	}}
	scheduler := &fakeScheduler{err: context.Canceled}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(client, scheduler, notifier)

	res, err := uc.Execute(context.Background(), &Request{SessionID: "cs_test_123"})

	assert.ErrorIs(t, err, ErrCancelled)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Attempts)
	// Терминального состояния нет, уведомление только о processing
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, domain.PaymentStatusProcessing, notifier.notifications[0].Status)
}

func TestExecute_EmptySessionID(t *testing.T) {
	uc := newTestUseCase(&fakePaymentClient{}, &fakeScheduler{}, &recordingNotifier{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStripSessionParam(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "removes session id keeps other params",
			in:   "https://tours.example/return?session_id=cs_1&lang=en",
			want: "https://tours.example/return?lang=en",
		},
		{
			name: "only session id leaves bare path",
			in:   "https://tours.example/return?session_id=cs_1",
			want: "https://tours.example/return",
		},
		{
			name: "no session id is unchanged",
			in:   "https://tours.example/return?lang=en",
			want: "https://tours.example/return?lang=en",
		},
		{
			name: "empty url",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripSessionParam(tt.in))
		})
	}
}
