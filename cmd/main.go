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

	addClientHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/add_client"
	addRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/add_room"
	cancelBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	generateReportHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/generate_report"
	getAvailableRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	listClientsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_clients"
	listRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/snapshot"
	memoryBookings "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/bookings"
	memoryClients "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/clients"
	memoryRooms "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/rooms"
	pgBookings "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/bookings"
	pgClients "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/clients"
	pgRooms "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/rooms"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	clientsService "github.com/m04kA/SMC-RoomBookingService/internal/service/clients"
	reportsService "github.com/m04kA/SMC-RoomBookingService/internal/service/reports"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

// RoomStore объединенный интерфейс инвентаря комнат: покрывает нужды
// сервисов и use cases для обоих драйверов хранилища
type RoomStore interface {
	Add(ctx context.Context, room domain.Room) (*domain.Room, bool, error)
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

// ClientStore объединенный интерфейс директории клиентов
type ClientStore interface {
	Add(ctx context.Context, client domain.Client) (*domain.Client, bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByTelephone(ctx context.Context, telephone string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// BookingStore объединенный интерфейс журнала бронирований
type BookingStore interface {
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Booking, error)
}

// TxManager интерфейс для transaction manager (используется в usecases)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище по выбранному драйверу
	var (
		roomRepository    RoomStore
		clientRepository  ClientStore
		bookingRepository BookingStore
		txMgr             TxManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverFiles:
		store := snapshot.NewStore(cfg.Storage.Dir)
		roomRepository = memoryRooms.NewRepository(store, log, metricsCollector)
		clientRepository = memoryClients.NewRepository(store, log, metricsCollector)
		bookingRepository = memoryBookings.NewRepository(store, log, metricsCollector)

		// Для файлового драйвера эксклюзивность обеспечивает общий мьютекс
		txMgr = simpletxmanager.NewTransactionManager()

		log.Info("Storage driver: files (dir=%s)", cfg.Storage.Dir)

	case config.StorageDriverPostgres:
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

		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		roomRepository = pgRooms.NewRepository(wrappedDB)
		clientRepository = pgClients.NewRepository(wrappedDB)
		bookingRepository = pgBookings.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

		log.Info("Storage driver: postgres")

	default:
		log.Fatal("Unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, clientRepository, cfg.Reports.Dir, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		clientRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	addRoom := addRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	addClient := addClientHandler.NewHandler(clientSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	generateReport := generateReportHandler.NewHandler(reportSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	api.HandleFunc("/rooms", addRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/clients", addClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/bookings/report", generateReport.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}
