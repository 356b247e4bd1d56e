package start_checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	startCheckout "github.com/m04kA/MHT-StorefrontService/internal/usecase/start_checkout"
)

type fakeUseCase struct {
	req  *startCheckout.Request
	resp *startCheckout.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *startCheckout.Request) (*startCheckout.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &startCheckout.Response{RedirectURL: "https://pay.example/c/cs_1"}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"bookingId": "bk_42"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example/c/cs_1", resp.RedirectURL)

	require.NotNil(t, uc.req)
	assert.Equal(t, "bk_42", uc.req.BookingID)
}

func TestHandle_InvalidJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", startCheckout.ErrInvalidInput, http.StatusBadRequest},
		{"booking not found", startCheckout.ErrBookingNotFound, http.StatusNotFound},
		{"no redirect url", startCheckout.ErrNoRedirectURL, http.StatusBadGateway},
		{"checkout failed", startCheckout.ErrCheckoutFailed, http.StatusBadGateway},
		{"misconfigured success url", startCheckout.ErrBadSuccessURL, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(h, `{"bookingId": "bk_42"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
