package submit_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	submitBooking "github.com/m04kA/MHT-StorefrontService/internal/usecase/submit_booking"
)

type fakeUseCase struct {
	req  *submitBooking.Request
	resp *submitBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
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

const validBody = `{
	"name": "Ahmed Al-Farsi",
	"phone": "+966500000000",
	"siteId": 1,
	"groupSize": 2,
	"date": "2026-09-10",
	"time": "10:00",
	"durationHours": 3,
	"carType": "sedan",
	"visitType": "package",
	"paymentMethod": "other",
	"bookingType": "contact"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		BookingID:   "bk_42",
		SiteID:      1,
		SiteName:    "Masjid Quba",
		GroupSize:   2,
		Date:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		TotalPrice:  96,
		BookingType: domain.BookingTypeContact,
		Status:      "pending",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bk_42", resp.BookingID)
	assert.Equal(t, "2026-09-10", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, float64(96), resp.TotalPrice)

	// Дата и время распарсены до вызова use case
	require.NotNil(t, uc.req)
	assert.Equal(t, domain.CarTypeSedan, uc.req.CarType)
	assert.False(t, uc.req.Date.IsZero())
}

func TestHandle_InvalidJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := strings.Replace(validBody, "2026-09-10", "10/09/2026", 1)
	rec := doRequest(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"group too large", submitBooking.ErrGroupTooLarge, http.StatusBadRequest},
		{"invalid input", submitBooking.ErrInvalidInput, http.StatusBadRequest},
		{"site not found", submitBooking.ErrSiteNotFound, http.StatusNotFound},
		{"submission failed", submitBooking.ErrSubmissionFailed, http.StatusBadGateway},
		{"internal error", submitBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(h, validBody)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
