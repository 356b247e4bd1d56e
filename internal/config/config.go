package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Database       DatabaseConfig       `toml:"database"`
	BookingService IntegrationConfig    `toml:"booking_service"`
	PaymentService IntegrationConfig    `toml:"payment_service"`
	Pricing        PricingConfig        `toml:"pricing"`
	Booking        BookingConfig        `toml:"booking"`
	Checkout       CheckoutConfig       `toml:"checkout"`
	PaymentPolling PaymentPollingConfig `toml:"payment_polling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды, явный timeout на каждый запрос
}

// PricingConfig настройки расчета стоимости
type PricingConfig struct {
	// Strategy стратегия расчета: "hourly_by_selection" (цена за час * длительность)
	// или "flat_per_person" (базовая цена локации * размер группы)
	Strategy string `toml:"strategy"`
}

// Стратегии расчета стоимости
const (
	StrategyHourlyBySelection = "hourly_by_selection"
	StrategyFlatPerPerson     = "flat_per_person"
)

// BookingConfig настройки валидации формы бронирования
// Набор обязательных полей отличался между вариантами формы,
// поэтому требуемость контактных полей вынесена в конфигурацию
type BookingConfig struct {
	RequireName  bool `toml:"require_name"`
	RequirePhone bool `toml:"require_phone"`
	RequireEmail bool `toml:"require_email"`
}

// CheckoutConfig настройки hosted checkout
type CheckoutConfig struct {
	// SuccessURL шаблон URL возврата после успешной оплаты,
	// должен содержать плейсхолдер {CHECKOUT_SESSION_ID}
	SuccessURL string `toml:"success_url"`
	// CancelURL URL возврата при отмене оплаты
	CancelURL string `toml:"cancel_url"`
}

// PaymentPollingConfig настройки опроса статуса оплаты
type PaymentPollingConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
	MaxAttempts     int `toml:"max_attempts"`
}

// Load загружает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.BookingService.Timeout == 0 {
		c.BookingService.Timeout = 10
	}
	if c.PaymentService.Timeout == 0 {
		c.PaymentService.Timeout = 10
	}
	if c.Pricing.Strategy == "" {
		c.Pricing.Strategy = StrategyHourlyBySelection
	}
	if c.PaymentPolling.IntervalSeconds == 0 {
		c.PaymentPolling.IntervalSeconds = 2
	}
	if c.PaymentPolling.MaxAttempts == 0 {
		c.PaymentPolling.MaxAttempts = 5
	}
}

func (c *Config) validate() error {
	if c.Pricing.Strategy != StrategyHourlyBySelection && c.Pricing.Strategy != StrategyFlatPerPerson {
		return fmt.Errorf("config: unknown pricing strategy %q", c.Pricing.Strategy)
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("config: booking_service.url is required")
	}
	if c.PaymentService.URL == "" {
		return fmt.Errorf("config: payment_service.url is required")
	}
	return nil
}
