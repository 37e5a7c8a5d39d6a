// File: docportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docportal/config"
	"docportal/database"
	bookingRepoPkg "docportal/database/repository/booking"
	doctorRepoPkg "docportal/database/repository/doctor"
	paymentRepoPkg "docportal/database/repository/payment"
	treatmentRepoPkg "docportal/database/repository/treatment"
	userRepoPkg "docportal/database/repository/user"
	"docportal/handlers"
	"docportal/middleware"
	"docportal/routes"
	"docportal/services/availability"
	"docportal/services/booking"
	"docportal/services/doctor"
	"docportal/services/payment"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, db, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		TreatmentRepo: treatmentRepo,
		BookingRepo:   bookingRepo,
		Cache:         utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Availability: availabilityService,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:          doctorRepo,
		TreatmentRepo: treatmentRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings: bookingRepo,
		Payments: paymentRepo,
		Currency: config.AppConfig.PaymentCurrency,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService:  userService,
		Auth:         handlers.NewAuthHandler(userService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Doctor:       handlers.NewDoctorHandler(doctorService),
		Payment:      handlers.NewPaymentHandler(paymentService, bookingService),
		User:         handlers.NewUserHandler(userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
