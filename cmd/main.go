package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getSiteHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/get_site"
	healthHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/health"
	listSitesHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/list_sites"
	paymentReturnHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/payment_return"
	quotePriceHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/quote_price"
	startCheckoutHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/start_checkout"
	submitBookingHandler "github.com/m04kA/MHT-StorefrontService/internal/api/handlers/submit_booking"
	"github.com/m04kA/MHT-StorefrontService/internal/api/middleware"
	"github.com/m04kA/MHT-StorefrontService/internal/config"
	siteRepo "github.com/m04kA/MHT-StorefrontService/internal/infra/storage/site"
	bookingServiceClient "github.com/m04kA/MHT-StorefrontService/internal/integrations/bookingservice"
	paymentServiceClient "github.com/m04kA/MHT-StorefrontService/internal/integrations/paymentservice"
	catalogService "github.com/m04kA/MHT-StorefrontService/internal/service/catalog"
	pricingService "github.com/m04kA/MHT-StorefrontService/internal/service/pricing"
	quotePriceUC "github.com/m04kA/MHT-StorefrontService/internal/usecase/quote_price"
	startCheckoutUC "github.com/m04kA/MHT-StorefrontService/internal/usecase/start_checkout"
	submitBookingUC "github.com/m04kA/MHT-StorefrontService/internal/usecase/submit_booking"
	trackPaymentUC "github.com/m04kA/MHT-StorefrontService/internal/usecase/track_payment"
	"github.com/m04kA/MHT-StorefrontService/pkg/logger"
	"github.com/m04kA/MHT-StorefrontService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MHT-StorefrontService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled for service: %s", cfg.Metrics.ServiceName)
	}

	// Подключаемся к базе данных (каталог локаций)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов с явными таймаутами
	// Метрики исходящих запросов - заглушки, когда сбор метрик выключен
	var bookingMetrics bookingServiceClient.IntegrationMetrics = bookingServiceClient.NopMetrics{}
	var paymentClientMetrics paymentServiceClient.IntegrationMetrics = paymentServiceClient.NopMetrics{}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		paymentClientMetrics = metricsCollector
	}

	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		bookingMetrics,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		paymentClientMetrics,
		log,
	)
	log.Info("Integration clients initialized (BookingService=%s, PaymentService=%s)",
		cfg.BookingService.URL, cfg.PaymentService.URL)

	// Инициализируем репозиторий и сервисы
	siteRepository := siteRepo.NewRepository(db)

	catalogSvc := catalogService.NewService(siteRepository, log)
	pricingSvc := pricingService.NewService(cfg.Pricing)
	log.Info("Pricing strategy: %s", pricingSvc.Strategy())

	// Каталог неизменяемый: загружаем его в память один раз при старте
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogSvc.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load site catalog: %v", err)
	}
	cancelLoad()

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		catalogSvc,
		pricingSvc,
		bookingClient,
		cfg.Booking,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(pricingSvc, catalogSvc, log)
	startCheckoutUseCase := startCheckoutUC.NewUseCase(paymentClient, cfg.Checkout, log)
	trackPaymentUseCase := trackPaymentUC.NewUseCase(
		paymentClient,
		&trackPaymentUC.RealScheduler{},
		trackPaymentUC.NopNotifier{},
		cfg.PaymentPolling,
		log,
	)

	// Метрики трекинга оплат (заглушка, если метрики выключены)
	var paymentMetrics paymentReturnHandler.Metrics = paymentReturnHandler.NopMetrics{}
	if cfg.Metrics.Enabled {
		paymentMetrics = metricsCollector
	}

	// Инициализируем handlers
	listSites := listSitesHandler.NewHandler(catalogSvc, log)
	getSite := getSiteHandler.NewHandler(catalogSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	startCheckout := startCheckoutHandler.NewHandler(startCheckoutUseCase, log)
	paymentReturn := paymentReturnHandler.NewHandler(trackPaymentUseCase, paymentMetrics, log)
	health := healthHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id для трассировки в логах
	r.Use(middleware.RequestID())

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Служебные
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Каталог локаций
	api.HandleFunc("/sites", listSites.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites/{siteId}", getSite.Handle).Methods(http.MethodGet)

	// Расчет стоимости по текущим выборам формы
	api.HandleFunc("/pricing/quote", quotePrice.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Оплата: создание checkout-сессии и возврат от провайдера
	api.HandleFunc("/payments/checkout", startCheckout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/return", paymentReturn.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
