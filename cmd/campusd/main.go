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
	"github.com/rs/cors"

	addMenuItemHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/add_menu_item"
	cancelBookingHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/cancel_booking"
	createBarberBookingHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/create_barber_booking"
	createFoodOrderHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/create_food_order"
	createLaundryBookingHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/create_laundry_booking"
	getAvailableSlotsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_available_slots"
	getCustomerTotalsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_customer_totals"
	getMyBookingsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_my_bookings"
	getMyShopHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_my_shop"
	getShopBookingsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_shop_bookings"
	getShopsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/get_shops"
	manageLaundryCatalogHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/manage_laundry_catalog"
	manageSlotsHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/manage_slots"
	updateBookingStatusHandler "github.com/haritapaliwal/campus-ease/internal/api/handlers/update_booking_status"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/config"
	barberBookingRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/barberbooking"
	foodOrderRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/foodorder"
	laundryBookingRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/laundrybooking"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	userRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/user"
	bookingsService "github.com/haritapaliwal/campus-ease/internal/service/bookings"
	catalogService "github.com/haritapaliwal/campus-ease/internal/service/catalog"
	createBarberBookingUC "github.com/haritapaliwal/campus-ease/internal/usecase/create_barber_booking"
	createFoodOrderUC "github.com/haritapaliwal/campus-ease/internal/usecase/create_food_order"
	createLaundryBookingUC "github.com/haritapaliwal/campus-ease/internal/usecase/create_laundry_booking"
	getAvailableSlotsUC "github.com/haritapaliwal/campus-ease/internal/usecase/get_available_slots"
	"github.com/haritapaliwal/campus-ease/pkg/logger"
	"github.com/haritapaliwal/campus-ease/pkg/metrics"
	"github.com/haritapaliwal/campus-ease/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting campus-ease...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Repositories
	shops := shopRepo.NewRepository(db)
	users := userRepo.NewRepository(db)
	barberBookings := barberBookingRepo.NewRepository(db)
	laundryBookings := laundryBookingRepo.NewRepository(db)
	foodOrders := foodOrderRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	bookingsSvc := bookingsService.NewService(barberBookings, laundryBookings, foodOrders, shops, users, log)
	catalogSvc := catalogService.NewService(shops, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(barberBookings, shops, log)
	createBarberBookingUseCase := createBarberBookingUC.NewUseCase(barberBookings, shops, txMgr, log)
	createLaundryBookingUseCase := createLaundryBookingUC.NewUseCase(laundryBookings, shops, txMgr, log)
	createFoodOrderUseCase := createFoodOrderUC.NewUseCase(foodOrders, txMgr, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBarberBooking := createBarberBookingHandler.NewHandler(createBarberBookingUseCase, log)
	createLaundryBooking := createLaundryBookingHandler.NewHandler(createLaundryBookingUseCase, log)
	createFoodOrder := createFoodOrderHandler.NewHandler(createFoodOrderUseCase, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getShopBookings := getShopBookingsHandler.NewHandler(bookingsSvc, log)
	getCustomerTotals := getCustomerTotalsHandler.NewHandler(bookingsSvc, log)
	getShops := getShopsHandler.NewHandler(catalogSvc, log)
	getMyShop := getMyShopHandler.NewHandler(catalogSvc, log)
	addMenuItem := addMenuItemHandler.NewHandler(catalogSvc, log)
	manageSlots := manageSlotsHandler.NewHandler(catalogSvc, log)
	manageLaundryCatalog := manageLaundryCatalogHandler.NewHandler(catalogSvc, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		r.Use(limiter.Limit)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/barber/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops", getShops.Handle).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Authenticate)

	protected.HandleFunc("/barber/bookings", createBarberBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/laundry/bookings", createLaundryBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/food/orders", createFoodOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/{kind}/my-bookings", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{kind}/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Owner routes
	owner := protected.PathPrefix("/shops").Subrouter()
	owner.Use(auth.RequireOwner)

	owner.HandleFunc("/my", getMyShop.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/{shopId}/bookings", getShopBookings.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/{shopId}/customers", getCustomerTotals.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/{shopId}/{kind}/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)
	owner.HandleFunc("/{shopId}/menu", addMenuItem.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/{shopId}/slots", manageSlots.HandleAdd).Methods(http.MethodPost)
	owner.HandleFunc("/{shopId}/slots/{label}", manageSlots.HandleSet).Methods(http.MethodPut)
	owner.HandleFunc("/{shopId}/laundry/catalog", manageLaundryCatalog.HandleAdd).Methods(http.MethodPost)
	owner.HandleFunc("/{shopId}/laundry/catalog/{itemId}", manageLaundryCatalog.HandleUpdate).Methods(http.MethodPut)
	owner.HandleFunc("/{shopId}/laundry/catalog/{itemId}", manageLaundryCatalog.HandleDelete).Methods(http.MethodDelete)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
