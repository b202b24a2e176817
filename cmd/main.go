package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	cancelPassHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_pass"
	cancelReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_reservation"
	extendReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/extend_reservation"
	getAvailableSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_spot"
	getPassHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_pass"
	getSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spot"
	listBranchesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_branches"
	listSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_spots"
	markPassArrivedHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/mark_pass_arrived"
	reallocateReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reallocate_reservation"
	registerPassHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_pass"
	requestPassExtensionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/request_pass_extension"
	reserveSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reserve_spot"
	resetBranchHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reset_branch"
	resolvePassExtensionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/resolve_pass_extension"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	passRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pass"
	reservationServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/jobs"
	"github.com/m04kA/SMC-ParkingService/internal/service/notifications"
	passesService "github.com/m04kA/SMC-ParkingService/internal/service/passes"
	cancelReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_reservation"
	extendReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/extend_reservation"
	reallocateReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/reallocate_reservation"
	registerPassUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_pass"
	reserveSpotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_spot"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/tracing"
)

// passStore хранилище абонементов: Postgres или память
type passStore interface {
	passesService.PassRepository
	registerPassUC.PassRepository
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены); nil коллектор работает как no-op
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем трассировку
	tracerProvider, err := tracing.New(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	tracer := tracerProvider.Tracer()
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// Хранилище абонементов
	var passRepository passStore
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		passRepository = passRepo.NewRepository(db)
	} else {
		log.Warn("Database disabled, passes are kept in memory")
		passRepository = passRepo.NewMemoryRepository()
	}

	// Клиент Reservation Service и фоновая доставка уведомлений
	reservationClient := reservationServiceClient.NewClient(
		cfg.ReservationService.URL,
		time.Duration(cfg.ReservationService.Timeout)*time.Second,
		log,
	)
	dispatcher := notifications.NewDispatcher(reservationClient, notifications.Config{
		Workers:   cfg.ReservationService.Workers,
		QueueSize: cfg.ReservationService.QueueSize,
		Timeout:   time.Duration(cfg.ReservationService.Timeout) * time.Second,
	}, metricsCollector, log)
	dispatcher.Start()
	log.Info("Integration client initialized (ReservationService=%s timeout=%ds, workers=%d)",
		cfg.ReservationService.URL, cfg.ReservationService.Timeout, cfg.ReservationService.Workers)

	// Справочник филиалов и реестры мест
	directory := branches.NewDirectory(cfg.Parking.BranchList(), cfg.Parking.Layout(), log)

	// Инициализируем сервисы
	passSvc := passesService.NewService(passRepository, metricsCollector, log)

	// Инициализируем use cases
	reserveSpotUseCase := reserveSpotUC.NewUseCase(directory, dispatcher, metricsCollector, tracer, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(directory, dispatcher, metricsCollector, tracer, log)
	extendReservationUseCase := extendReservationUC.NewUseCase(directory, metricsCollector, tracer, log)
	reallocateReservationUseCase := reallocateReservationUC.NewUseCase(directory, dispatcher, metricsCollector, tracer, log)
	registerPassUseCase := registerPassUC.NewUseCase(passRepository, metricsCollector, tracer, log)

	// Периодические задачи
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler, err = jobs.NewScheduler(passSvc, cfg.Jobs.PassExpirySchedule, log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Pass expiry job scheduled: %s", cfg.Jobs.PassExpirySchedule)
	}

	// Инициализируем handlers
	listBranches := listBranchesHandler.NewHandler(directory, log)
	listSpots := listSpotsHandler.NewHandler(directory, log)
	resetBranch := resetBranchHandler.NewHandler(directory, metricsCollector, log)
	getSpot := getSpotHandler.NewHandler(directory, log)
	getAvailableSpot := getAvailableSpotHandler.NewHandler(directory, log)
	reserveSpot := reserveSpotHandler.NewHandler(reserveSpotUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	extendReservation := extendReservationHandler.NewHandler(extendReservationUseCase, log)
	reallocateReservation := reallocateReservationHandler.NewHandler(reallocateReservationUseCase, log)
	registerPass := registerPassHandler.NewHandler(registerPassUseCase, log)
	getPass := getPassHandler.NewHandler(passSvc, log)
	cancelPass := cancelPassHandler.NewHandler(passSvc, log)
	requestPassExtension := requestPassExtensionHandler.NewHandler(passSvc, log)
	resolvePassExtension := resolvePassExtensionHandler.NewHandler(passSvc, log)
	markPassArrived := markPassArrivedHandler.NewHandler(passSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(tracer))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Филиалы и дашборд ---
	api.HandleFunc("/branches", listBranches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branch}/spots", listSpots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branch}/reset", resetBranch.Handle).Methods(http.MethodPost)

	// --- Места ---
	api.HandleFunc("/branches/{branch}/spots/available", getAvailableSpot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branch}/spots/{spotId:[0-9]+}", getSpot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branch}/spots/{spotId:[0-9]+}/reservations", reserveSpot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/branches/{branch}/spots/{spotId:[0-9]+}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/branches/{branch}/spots/{spotId:[0-9]+}/extend", extendReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/branches/{branch}/spots/{spotId:[0-9]+}/reallocate", reallocateReservation.Handle).Methods(http.MethodPost)

	// --- Абонементы ---
	api.HandleFunc("/passes", registerPass.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/{passId:[0-9]+}", getPass.Handle).Methods(http.MethodGet)
	api.HandleFunc("/passes/{passId:[0-9]+}/cancel", cancelPass.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/{passId:[0-9]+}/extension", requestPassExtension.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/{passId:[0-9]+}/extension/resolve", resolvePassExtension.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/{passId:[0-9]+}/arrived", markPassArrived.Handle).Methods(http.MethodPost)

	// CORS для фронтенда
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			log.Error("Scheduler forced to stop: %v", err)
		}
	}

	// Доставляем уведомления, уже стоящие в очереди
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error("Notification dispatcher forced to stop: %v", err)
	}

	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
