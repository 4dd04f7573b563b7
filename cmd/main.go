package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/avetra/venue-booking-service/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/avetra/venue-booking-service/internal/api/handlers/check_slot"
	createBookingHandler "github.com/avetra/venue-booking-service/internal/api/handlers/create_booking"
	createClientHandler "github.com/avetra/venue-booking-service/internal/api/handlers/create_client"
	createStaffHandler "github.com/avetra/venue-booking-service/internal/api/handlers/create_staff"
	createVenueHandler "github.com/avetra/venue-booking-service/internal/api/handlers/create_venue"
	deleteClientHandler "github.com/avetra/venue-booking-service/internal/api/handlers/delete_client"
	deleteVenueHandler "github.com/avetra/venue-booking-service/internal/api/handlers/delete_venue"
	getBookingHandler "github.com/avetra/venue-booking-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/avetra/venue-booking-service/internal/api/handlers/get_calendar"
	getClientHandler "github.com/avetra/venue-booking-service/internal/api/handlers/get_client"
	getVenueHandler "github.com/avetra/venue-booking-service/internal/api/handlers/get_venue"
	getVenueAvailabilityHandler "github.com/avetra/venue-booking-service/internal/api/handlers/get_venue_availability"
	listBookingsHandler "github.com/avetra/venue-booking-service/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/avetra/venue-booking-service/internal/api/handlers/list_clients"
	listRolesHandler "github.com/avetra/venue-booking-service/internal/api/handlers/list_roles"
	listStaffHandler "github.com/avetra/venue-booking-service/internal/api/handlers/list_staff"
	listVenuesHandler "github.com/avetra/venue-booking-service/internal/api/handlers/list_venues"
	loginHandler "github.com/avetra/venue-booking-service/internal/api/handlers/login"
	recordDepositHandler "github.com/avetra/venue-booking-service/internal/api/handlers/record_deposit"
	updateBookingHandler "github.com/avetra/venue-booking-service/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/avetra/venue-booking-service/internal/api/handlers/update_booking_status"
	updateClientHandler "github.com/avetra/venue-booking-service/internal/api/handlers/update_client"
	updateVenueHandler "github.com/avetra/venue-booking-service/internal/api/handlers/update_venue"
	"github.com/avetra/venue-booking-service/internal/api/middleware"
	"github.com/avetra/venue-booking-service/internal/config"
	bookingStorage "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	clientStorage "github.com/avetra/venue-booking-service/internal/infra/storage/client"
	staffStorage "github.com/avetra/venue-booking-service/internal/infra/storage/staff"
	venueStorage "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
	"github.com/avetra/venue-booking-service/internal/service/bookings"
	"github.com/avetra/venue-booking-service/internal/service/clients"
	"github.com/avetra/venue-booking-service/internal/service/staff"
	"github.com/avetra/venue-booking-service/internal/service/venues"
	checkSlot "github.com/avetra/venue-booking-service/internal/usecase/check_slot"
	createBooking "github.com/avetra/venue-booking-service/internal/usecase/create_booking"
	getCalendar "github.com/avetra/venue-booking-service/internal/usecase/get_calendar"
	getVenueAvailability "github.com/avetra/venue-booking-service/internal/usecase/get_venue_availability"
	updateBooking "github.com/avetra/venue-booking-service/internal/usecase/update_booking"
	"github.com/avetra/venue-booking-service/pkg/authtoken"
	"github.com/avetra/venue-booking-service/pkg/dbmetrics"
	"github.com/avetra/venue-booking-service/pkg/logger"
	"github.com/avetra/venue-booking-service/pkg/metrics"
	"github.com/avetra/venue-booking-service/pkg/simpletxmanager"
	"github.com/avetra/venue-booking-service/pkg/txmanager"
)

// TransactionManager общий интерфейс для txmanager и simpletxmanager
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Инициализация логгера
	appLogger, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.Info("Starting venue-booking-service on port %d", cfg.Server.HTTPPort)

	// 3. Метрики (опционально)
	var appMetrics *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New(cfg.Metrics.ServiceName)
		appLogger.Info("Prometheus metrics enabled at %s", cfg.Metrics.Path)
	}

	// 4. Подключение к PostgreSQL
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		appLogger.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		appLogger.Error("Failed to ping database: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to database %s@%s:%d", cfg.Database.DBName, cfg.Database.Host, cfg.Database.Port)

	// 5. Сервис токенов
	tokenService := authtoken.New(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// 6. Репозитории и менеджер транзакций
	// С метриками запросы идут через обертку dbmetrics, без них - напрямую
	var (
		bookingRepo *bookingStorage.Repository
		venueRepo   *venueStorage.Repository
		clientRepo  *clientStorage.Repository
		staffRepo   *staffStorage.Repository
		txMgr       TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, appMetrics, cfg.Metrics.ServiceName, stopMetricsCh)
		bookingRepo = bookingStorage.NewRepository(wrappedDB)
		venueRepo = venueStorage.NewRepository(wrappedDB)
		clientRepo = clientStorage.NewRepository(wrappedDB)
		staffRepo = staffStorage.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepo = bookingStorage.NewRepository(db)
		venueRepo = venueStorage.NewRepository(db)
		clientRepo = clientStorage.NewRepository(db)
		staffRepo = staffStorage.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// 7. Сервисы
	bookingService := bookings.NewService(bookingRepo, appLogger)
	venueService := venues.NewService(venueRepo, bookingRepo, appLogger)
	clientService := clients.NewService(clientRepo, appLogger)
	staffService := staff.NewService(staffRepo, tokenService, appLogger)

	// 8. Use cases движка доступности
	createBookingUC := createBooking.NewUseCase(bookingRepo, venueRepo, txMgr, appLogger)
	updateBookingUC := updateBooking.NewUseCase(bookingRepo, venueRepo, txMgr, appLogger)
	checkSlotUC := checkSlot.NewUseCase(bookingRepo, venueRepo, appLogger)
	availabilityUC := getVenueAvailability.NewUseCase(bookingRepo, venueRepo, appLogger)
	calendarUC := getCalendar.NewUseCase(bookingRepo, venueRepo, appLogger)

	// 9. HTTP-обработчики
	loginH := loginHandler.NewHandler(staffService, appLogger)

	createBookingH := createBookingHandler.NewHandler(createBookingUC, appLogger)
	updateBookingH := updateBookingHandler.NewHandler(updateBookingUC, appLogger)
	checkSlotH := checkSlotHandler.NewHandler(checkSlotUC, appLogger)
	getBookingH := getBookingHandler.NewHandler(bookingService, appLogger)
	listBookingsH := listBookingsHandler.NewHandler(bookingService, appLogger)
	cancelBookingH := cancelBookingHandler.NewHandler(bookingService, appLogger)
	updateStatusH := updateBookingStatusHandler.NewHandler(bookingService, appLogger)
	recordDepositH := recordDepositHandler.NewHandler(bookingService, appLogger)

	availabilityH := getVenueAvailabilityHandler.NewHandler(availabilityUC, appLogger)
	calendarH := getCalendarHandler.NewHandler(calendarUC, appLogger)

	createVenueH := createVenueHandler.NewHandler(venueService, appLogger)
	getVenueH := getVenueHandler.NewHandler(venueService, appLogger)
	listVenuesH := listVenuesHandler.NewHandler(venueService, appLogger)
	updateVenueH := updateVenueHandler.NewHandler(venueService, appLogger)
	deleteVenueH := deleteVenueHandler.NewHandler(venueService, appLogger)

	createClientH := createClientHandler.NewHandler(clientService, appLogger)
	getClientH := getClientHandler.NewHandler(clientService, appLogger)
	listClientsH := listClientsHandler.NewHandler(clientService, appLogger)
	updateClientH := updateClientHandler.NewHandler(clientService, appLogger)
	deleteClientH := deleteClientHandler.NewHandler(clientService, appLogger)

	createStaffH := createStaffHandler.NewHandler(staffService, appLogger)
	listStaffH := listStaffHandler.NewHandler(staffService, appLogger)
	listRolesH := listRolesHandler.NewHandler(staffService, appLogger)

	// 10. Маршрутизация
	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware(appMetrics, cfg.Metrics.ServiceName))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/auth/login", loginH.Handle).Methods(http.MethodPost)

	// Маршруты, требующие аутентификации
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(tokenService))

	protected.HandleFunc("/bookings", createBookingH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookingsH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/check-slot", checkSlotH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBookingH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBookingH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBookingH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatusH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/deposit", recordDepositH.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/venues", listVenuesH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}", getVenueH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/availability", availabilityH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/calendar", calendarH.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/clients", createClientH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClientsH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", getClientH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", updateClientH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{clientId}", deleteClientH.Handle).Methods(http.MethodDelete)

	// Маршруты только для администраторов
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin(staffService))

	admin.HandleFunc("/venues", createVenueH.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/venues/{venueId}", updateVenueH.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/venues/{venueId}", deleteVenueH.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/staff", createStaffH.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/staff", listStaffH.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/roles", listRolesH.Handle).Methods(http.MethodGet)

	// 11. HTTP-сервер с graceful shutdown
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)
	appLogger.Info("Server stopped")
}
