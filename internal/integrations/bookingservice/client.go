package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// target имя внешнего сервиса в метриках
const target = "booking_service"

// Client клиент для работы с внешним booking-бэкендом
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    IntegrationMetrics
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// IntegrationMetrics интерфейс метрик исходящих запросов
type IntegrationMetrics interface {
	RecordIntegrationRequest(target, operation, result string)
}

// NopMetrics заглушка, когда сбор метрик выключен конфигурацией
type NopMetrics struct{}

func (NopMetrics) RecordIntegrationRequest(string, string, string) {}

// NewClient создает новый экземпляр клиента booking-бэкенда
// timeout задает явный лимит на каждый запрос
func NewClient(baseURL string, timeout time.Duration, metrics IntegrationMetrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// CreateBooking отправляет заявку на бронирование
// POST {base}/api/bookings
func (c *Client) CreateBooking(ctx context.Context, payload *BookingPayload) (*Booking, error) {
	url := fmt.Sprintf("%s/api/bookings", c.baseURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordIntegrationRequest(target, "create_booking", "unavailable")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		c.metrics.RecordIntegrationRequest(target, "create_booking", "rejected")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrRejected, string(respBody))
	default:
		c.metrics.RecordIntegrationRequest(target, "create_booking", "invalid_response")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		c.metrics.RecordIntegrationRequest(target, "create_booking", "invalid_response")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if booking.ID == "" {
		c.metrics.RecordIntegrationRequest(target, "create_booking", "invalid_response")
		return nil, fmt.Errorf("%w: response has no booking id", ErrInvalidResponse)
	}

	c.metrics.RecordIntegrationRequest(target, "create_booking", "ok")
	c.log.Info("BookingService: booking created id=%s, site=%s, type=%s",
		booking.ID, booking.SiteName, booking.BookingType)
	return &booking, nil
}
