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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getCalendarMetaHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_calendar_meta"
	getCompanySettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_company_settings"
	getDailySlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_daily_slots"
	getResourceShiftHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_resource_shift"
	updateCompanySettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_company_settings"
	updateResourceShiftHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_resource_shift"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	availabilityCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	shiftRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/shift"
	catalogServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	settingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	shiftsService "github.com/m04kA/SMC-AvailabilityService/internal/service/shifts"
	getCalendarMetaUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar_meta"
	getDailySlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_daily_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied from %s", cfg.Database.MigrationsDir)

	// Инициализируем кэш ответов о доступности (если включен)
	var respCache *availabilityCache.AvailabilityCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer rdb.Close()

		// Коллектор - интерфейс: nil-указатель присваиваем только при
		// включённых метриках, чтобы не получить ненулевой интерфейс с nil внутри
		var cacheMetrics availabilityCache.MetricsCollector
		if metricsCollector != nil {
			cacheMetrics = metricsCollector
		}

		respCache = availabilityCache.New(rdb, time.Duration(cfg.Redis.CacheTTL)*time.Second, cacheMetrics)
		log.Info("Availability response cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Инициализируем интеграционного клиента
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		settingsRepository *settingsRepo.Repository
		shiftRepository    *shiftRepo.Repository
		bookingRepository  *bookingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		settingsRepository = settingsRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		catalogClient,
		txMgr,
		log,
	)
	shiftsSvc := shiftsService.NewService(
		shiftRepository,
		settingsRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем use cases.
	// Кэш - интерфейс: nil-указатель присваиваем только при включённом
	// redis, чтобы не получить ненулевой интерфейс с nil внутри
	var dailySlotsCache getDailySlotsUC.AvailabilityCache
	var calendarMetaCache getCalendarMetaUC.AvailabilityCache
	if respCache != nil {
		dailySlotsCache = respCache
		calendarMetaCache = respCache
	}

	getDailySlotsUseCase := getDailySlotsUC.New(
		catalogClient,
		settingsRepository,
		shiftRepository,
		bookingRepository,
		dailySlotsCache,
		getDailySlotsUC.RealTimeProvider{},
		log,
	)

	getCalendarMetaUseCase := getCalendarMetaUC.New(
		catalogClient,
		settingsRepository,
		shiftRepository,
		bookingRepository,
		calendarMetaCache,
		getCalendarMetaUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getDailySlots := getDailySlotsHandler.NewHandler(getDailySlotsUseCase, log)
	getCalendarMeta := getCalendarMetaHandler.NewHandler(getCalendarMetaUseCase, log)
	getCompanySettings := getCompanySettingsHandler.NewHandler(settingsSvc, log)
	updateCompanySettings := updateCompanySettingsHandler.NewHandler(settingsSvc, log)
	getResourceShift := getResourceShiftHandler.NewHandler(shiftsSvc, log)
	updateResourceShift := updateResourceShiftHandler.NewHandler(shiftsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request ID для трассировки между сервисами
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты услуги на день
	api.HandleFunc("/companies/{companyId}/services/{serviceId}/daily-slots",
		getDailySlots.Handle).Methods(http.MethodGet)

	// Помесячная сводка доступности для календаря
	api.HandleFunc("/companies/{companyId}/services/{serviceId}/calendar-meta",
		getCalendarMeta.Handle).Methods(http.MethodGet)

	// Настройки расписания компании
	api.HandleFunc("/companies/{companyId}/settings",
		getCompanySettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Обновление настроек расписания компании
	protected.HandleFunc("/companies/{companyId}/settings",
		updateCompanySettings.Handle).Methods(http.MethodPut)

	// Сетка смены ресурса за месяц
	protected.HandleFunc("/companies/{companyId}/resources/{resourceId}/shifts/{year}/{month}",
		getResourceShift.Handle).Methods(http.MethodGet)

	// Перезапись смены ресурса за месяц
	protected.HandleFunc("/companies/{companyId}/resources/{resourceId}/shifts/{year}/{month}",
		updateResourceShift.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
