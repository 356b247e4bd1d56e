package paymentservice

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
const target = "payment_service"

// Client клиент платежного шлюза (hosted checkout)
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

// NewClient создает новый экземпляр клиента платежного шлюза
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

// CreateCheckoutSession создает checkout-сессию для бронирования
// POST {base}/api/payments/checkout/session
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error) {
	url := fmt.Sprintf("%s/api/payments/checkout/session", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.RecordIntegrationRequest(target, "create_session", "unavailable")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.metrics.RecordIntegrationRequest(target, "create_session", "not_found")
		return nil, ErrBookingNotFound
	default:
		c.metrics.RecordIntegrationRequest(target, "create_session", "invalid_response")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		c.metrics.RecordIntegrationRequest(target, "create_session", "invalid_response")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Отсутствие URL редиректа - фатальная ошибка для этой попытки оплаты
	if session.URL == "" {
		c.metrics.RecordIntegrationRequest(target, "create_session", "no_redirect_url")
		return nil, ErrNoRedirectURL
	}

	c.metrics.RecordIntegrationRequest(target, "create_session", "ok")
	c.log.Info("PaymentService: checkout session created for booking_id=%s", req.BookingID)
	return &session, nil
}

// GetCheckoutStatus запрашивает статус checkout-сессии
// GET {base}/api/payments/checkout/status/{sessionId}
func (c *Client) GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	url := fmt.Sprintf("%s/api/payments/checkout/status/%s", c.baseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordIntegrationRequest(target, "get_status", "unavailable")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.metrics.RecordIntegrationRequest(target, "get_status", "not_found")
		return nil, ErrSessionNotFound
	default:
		c.metrics.RecordIntegrationRequest(target, "get_status", "invalid_response")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var status CheckoutStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		c.metrics.RecordIntegrationRequest(target, "get_status", "invalid_response")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.metrics.RecordIntegrationRequest(target, "get_status", "ok")
	return &status, nil
}
