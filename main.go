// File: nafis/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nafis/config"
	"nafis/cron"
	"nafis/database"
	bookingRepoPkg "nafis/database/repository/booking"
	serviceRepoPkg "nafis/database/repository/service"
	settingsRepoPkg "nafis/database/repository/settings"
	testimonialRepoPkg "nafis/database/repository/testimonial"
	"nafis/handlers"
	"nafis/middleware"
	"nafis/routes"
	"nafis/services/analytics"
	"nafis/services/availability"
	"nafis/services/booking"
	"nafis/services/catalog"
	"nafis/services/notification"
	"nafis/services/settings"
	"nafis/services/storage"
	"nafis/services/tasks"
	"nafis/services/testimonials"
	"nafis/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	var storageService storage.StorageService
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: attachment storage disabled: %v", err)
	} else {
		storageService = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewFallbackBookingRepo(
		bookingRepoPkg.NewMongoBookingRepo(),
		bookingRepoPkg.NewLocalBookingStore(utils.GetCacheClient()),
	)
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	testimonialRepo := testimonialRepoPkg.NewMongoTestimonialRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	emailService := notification.NewEmailService()
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	catalogService := catalog.NewDefaultCatalogService(serviceRepo)
	testimonialService := testimonials.NewDefaultTestimonialService(testimonialRepo)
	settingsService := settings.NewDefaultSettingsService(settingsRepo)
	analyticsService := analytics.NewDefaultAnalyticsService(bookingRepo)

	calc := availability.NewCalculator(availability.BusinessHours{
		OpenHour:  config.AppConfig.OpenHour,
		CloseHour: config.AppConfig.CloseHour,
	})
	wizardService := booking.NewDefaultWizardService(
		booking.NewRedisSessionStore(),
		bookingRepo,
		serviceRepo,
		calc,
		config.AppConfig.BookingWindowDays,
		emailService,
		reminderScheduler,
	)

	// Seed the catalog and testimonials on an empty database.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogService.SeedIfEmpty(seedCtx); err != nil {
		logger.Sugar().Warnf("main: catalog seed failed: %v", err)
	}
	if err := testimonialService.SeedIfEmpty(seedCtx); err != nil {
		logger.Sugar().Warnf("main: testimonial seed failed: %v", err)
	}
	seedCancel()

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Deps{
		Wizard:       wizardService,
		Bookings:     bookingRepo,
		Catalog:      catalogService,
		Testimonials: testimonialService,
		Settings:     settingsService,
		Analytics:    analyticsService,
		Email:        emailService,
		Storage:      storageService,
	})

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(emailService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: closing reminder scheduler: %v", err)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}
