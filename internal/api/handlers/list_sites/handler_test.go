package list_sites

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

type fakeCatalog struct {
	sites []*domain.Site
}

func (f *fakeCatalog) List(_ context.Context) []*domain.Site {
	return f.sites
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	catalog := &fakeCatalog{sites: []*domain.Site{
		{ID: 1, Name: "Masjid Quba", NameArabic: "مسجد قباء", Price: 120, Rating: 4.9},
		{ID: 2, Name: "Mount Uhud", NameArabic: "جبل أحد", Price: 150, Rating: 4.8},
	}}
	h := NewHandler(catalog, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SiteListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sites, 2)
	assert.Equal(t, "Masjid Quba", resp.Sites[0].Name)
	assert.Equal(t, float64(150), resp.Sites[1].Price)
}

func TestHandle_EmptyCatalog(t *testing.T) {
	h := NewHandler(&fakeCatalog{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sites":[]}`, rec.Body.String())
}
