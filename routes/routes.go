package routes

import (
	"net/http"
	"time"

	"docportal/handlers"
	"docportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/token", hb.Auth.IssueTokenHandler)
	}
}

// RegisterTreatmentRoutes registers the public availability endpoints.
func RegisterTreatmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/treatments")
	{
		api.GET("", hb.Availability.GetTreatmentsHandler)
		api.GET("/specialties", hb.Availability.GetSpecialtiesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
	}
}

// RegisterUserRoutes registers account endpoints. The upsert is public (it is
// how a fresh sign-in obtains a token); role queries require authentication
// and promotion requires the admin role.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.PUT("/:email", hb.User.UpsertUserHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/:email/admin", hb.User.CheckAdminHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware(hb.UserService))
		admin.GET("", hb.User.GetAllUsersHandler)
		admin.PUT("/:email/admin", hb.User.MakeAdminHandler)
	}
}

// RegisterDoctorRoutes sets up admin-only doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware(hb.UserService))
		api.GET("", hb.Doctor.GetDoctorsHandler)
		api.POST("", hb.Doctor.AddDoctorHandler)
		api.DELETE("/:id", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterPaymentRoutes sets up the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/intent", hb.Payment.CreateIntentHandler)
		api.POST("", hb.Payment.RecordPaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTreatmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
