package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tranquilflow/config"
	"tranquilflow/database"
	bookingRepo "tranquilflow/database/repository/booking"
	"tranquilflow/handlers"
	"tranquilflow/middleware"
	"tranquilflow/routes"
	"tranquilflow/services/catalog"
	"tranquilflow/services/membership"
	"tranquilflow/services/payment"
	"tranquilflow/services/scheduling"
	"tranquilflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	providerLatency := time.Duration(config.AppConfig.ProviderLatencyMS) * time.Millisecond

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// Services.
	catalogService := &catalog.DefaultCatalogService{}

	sessionStore := scheduling.NewRedisSessionStore(utils.GetSessionCacheClient())
	schedulingService := &scheduling.DefaultSchedulingService{
		Logger:            logger,
		Store:             sessionStore,
		Repo:              bookings,
		Catalog:           catalogService,
		CalendarStartHour: config.AppConfig.CalendarStartHour,
		CalendarEndHour:   config.AppConfig.CalendarEndHour,
	}

	// Card tokenization goes through Stripe only when a key is configured;
	// the simulated vault is the default.
	var cardVault payment.CardVault = &payment.SimulatedCardVault{Latency: providerLatency}
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		cardVault = &payment.StripeCardVault{}
	}
	profileService := payment.NewProfileService(
		logger,
		cardVault,
		&payment.SimulatedAgreementClient{Latency: providerLatency},
		&payment.SimulatedCheckoutLinkClient{Latency: providerLatency},
		providerLatency,
	)

	membershipService := membership.NewMembershipService(logger, providerLatency)

	// Handlers.
	bundle := &routes.HandlerBundle{
		Booking:    handlers.NewBookingHandler(schedulingService, logger),
		Scheduling: handlers.NewSchedulingHandler(schedulingService, logger),
		Payment:    handlers.NewPaymentHandler(profileService, logger),
		Membership: handlers.NewMembershipHandler(membershipService, logger),
		Catalog:    handlers.NewCatalogHandler(catalogService),
	}
	routes.RegisterRoutes(router, bundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
