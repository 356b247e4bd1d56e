package paymentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateCheckoutSession_Success(t *testing.T) {
	var received CheckoutSessionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments/checkout/session", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_ = json.NewEncoder(w).Encode(CheckoutSession{
			SessionID: "cs_1",
			URL:       "https://pay.example/c/cs_1",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NopMetrics{}, nopLogger{})

	session, err := client.CreateCheckoutSession(context.Background(), &CheckoutSessionRequest{
		BookingID:  "bk_42",
		SuccessURL: "https://tours.example/return?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://tours.example/",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/c/cs_1", session.URL)
	assert.Equal(t, "bk_42", received.BookingID)
	assert.Contains(t, received.SuccessURL, "{CHECKOUT_SESSION_ID}")
}

func TestCreateCheckoutSession_BookingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NopMetrics{}, nopLogger{})

	_, err := client.CreateCheckoutSession(context.Background(), &CheckoutSessionRequest{BookingID: "bk_missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateCheckoutSession_NoRedirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(CheckoutSession{SessionID: "cs_1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NopMetrics{}, nopLogger{})

	_, err := client.CreateCheckoutSession(context.Background(), &CheckoutSessionRequest{BookingID: "bk_42"})
	assert.ErrorIs(t, err, ErrNoRedirectURL)
}

func TestGetCheckoutStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payments/checkout/status/cs_1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(CheckoutStatus{
			PaymentStatus: PaymentStatusPaid,
			Status:        "complete",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NopMetrics{}, nopLogger{})

	status, err := client.GetCheckoutStatus(context.Background(), "cs_1")
	require.NoError(t, err)

	assert.True(t, status.IsPaid())
	assert.False(t, status.IsExpired())
}

func TestGetCheckoutStatus_SessionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NopMetrics{}, nopLogger{})

	_, err := client.GetCheckoutStatus(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetCheckoutStatus_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем заранее, чтобы получить сетевую ошибку

	client := NewClient(srv.URL, time.Second, NopMetrics{}, nopLogger{})

	_, err := client.GetCheckoutStatus(context.Background(), "cs_1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckoutStatus_Predicates(t *testing.T) {
	pending := CheckoutStatus{PaymentStatus: PaymentStatusUnpaid, Status: SessionStatusOpen}
	assert.False(t, pending.IsPaid())
	assert.False(t, pending.IsExpired())

	expired := CheckoutStatus{PaymentStatus: PaymentStatusUnpaid, Status: SessionStatusExpired}
	assert.True(t, expired.IsExpired())
}
