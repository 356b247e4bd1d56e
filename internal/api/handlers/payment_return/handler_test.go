package payment_return

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	trackPayment "github.com/m04kA/MHT-StorefrontService/internal/usecase/track_payment"
)

type fakeUseCase struct {
	req  *trackPayment.Request
	resp *trackPayment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *trackPayment.Request) (*trackPayment.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type recordingMetrics struct {
	polls   int
	results []string
}

func (m *recordingMetrics) AddPaymentPolls(n int) { m.polls += n }

func (m *recordingMetrics) RecordPaymentTrackResult(state string) {
	m.results = append(m.results, state)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &trackPayment.Response{
		Status:   domain.PaymentStatusSuccess,
		Attempts: 3,
		Notifications: []trackPayment.Notification{
			{Status: domain.PaymentStatusProcessing, Message: "Payment is being processed..."},
			{Status: domain.PaymentStatusSuccess, Message: "Payment successful! Your tour booking is confirmed."},
		},
		CleanURL: "https://tours.example/return",
	}}
	metrics := &recordingMetrics{}
	h := NewHandler(uc, metrics, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/payments/return?session_id=cs_1&return_url=https%3A%2F%2Ftours.example%2Freturn%3Fsession_id%3Dcs_1", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TrackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 3, resp.Attempts)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, "https://tours.example/return", resp.CleanURL)

	// Запрос use case собран из query-параметров
	require.NotNil(t, uc.req)
	assert.Equal(t, "cs_1", uc.req.SessionID)
	assert.Equal(t, "https://tours.example/return?session_id=cs_1", uc.req.ReturnURL)

	assert.Equal(t, 3, metrics.polls)
	assert.Equal(t, []string{"success"}, metrics.results)
}

func TestHandle_MissingSessionID(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, NopMetrics{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/return", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_TerminalNonSuccessStates(t *testing.T) {
	for _, status := range []domain.PaymentStatus{
		domain.PaymentStatusExpired,
		domain.PaymentStatusTimeout,
		domain.PaymentStatusError,
	} {
		t.Run(string(status), func(t *testing.T) {
			uc := &fakeUseCase{resp: &trackPayment.Response{Status: status, Attempts: 1}}
			metrics := &recordingMetrics{}
			h := NewHandler(uc, metrics, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/return?session_id=cs_1", nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			// Терминальное состояние - это ответ, а не ошибка HTTP
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []string{string(status)}, metrics.results)
		})
	}
}

func TestHandle_Cancelled(t *testing.T) {
	uc := &fakeUseCase{err: trackPayment.ErrCancelled}
	metrics := &recordingMetrics{}
	h := NewHandler(uc, metrics, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/return?session_id=cs_1", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	// Клиент ушел: тело не пишется, метрики не записываются
	assert.Empty(t, rec.Body.String())
	assert.Zero(t, metrics.polls)
	assert.Empty(t, metrics.results)
}
