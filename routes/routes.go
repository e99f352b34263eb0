package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/odacaict/domee.ro/handlers"
	"github.com/odacaict/domee.ro/middleware"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/signup", hb.Users.SignUp)
		api.POST("/signin", hb.Users.SignIn)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/signout", hb.Users.SignOut)
		protected.GET("/me", hb.Users.GetMe)
		protected.PATCH("/me", hb.Users.UpdateProfile)
		protected.PUT("/me/preferences", hb.Users.UpdatePreferences)
		protected.PUT("/me/fcm-token", hb.Users.RegisterFCMToken)
		protected.DELETE("/me", hb.Users.DeleteAccount)
	}
}

// RegisterProviderRoutes registers the salon directory and profile management.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public directory endpoints.
		api.GET("/search", hb.Providers.Search)
		api.GET("/nearby", hb.Providers.Nearby)
		api.GET("/:id", hb.Providers.GetProvider)
		api.GET("/:id/services", hb.Services.GetProviderServices)
		api.GET("/:id/reviews", hb.Reviews.GetProviderReviews)

		// Profile creation needs a signed-in account; management needs a salon.
		api.POST("/register", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Providers.Register)

		manage := api.Group("/me")
		manage.Use(middleware.JWTAuthProviderMiddleware(hb.UserRepo, hb.ProviderRepo))
		manage.GET("", hb.Providers.GetMyProfile)
		manage.PATCH("", hb.Providers.Update)
		manage.PUT("/schedule", hb.Providers.UpdateSchedule)
		manage.PUT("/payment-methods", hb.Providers.UpdatePaymentMethods)
		manage.DELETE("", hb.Providers.Delete)
		manage.GET("/bookings", hb.Bookings.GetProviderBookings)
	}
}

// RegisterServiceRoutes registers catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/search", hb.Services.Search)
		api.GET("/:id", hb.Services.GetService)

		manage := api.Group("")
		manage.Use(middleware.JWTAuthProviderMiddleware(hb.UserRepo, hb.ProviderRepo))
		manage.POST("", hb.Services.Create)
		manage.PUT("/:id", hb.Services.Update)
		manage.PUT("/:id/active", hb.Services.SetActive)
		manage.DELETE("/:id", hb.Services.Delete)
	}
}

// RegisterBookingRoutes registers the slot grid and reservation lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Slot availability is public so visitors can browse before signing up.
		api.GET("/slots", hb.Bookings.GetSlots)

		user := api.Group("")
		user.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		user.POST("", hb.Bookings.Reserve)
		user.GET("/me", hb.Bookings.GetMyBookings)
		user.GET("/:id", hb.Bookings.GetBooking)
		user.POST("/:id/cancel", hb.Bookings.Cancel)
		user.GET("/:id/payments", hb.Payments.GetBookingPayments)

		// Confirmation (cash-on-site bookings) and completion are the salon's
		// manual actions.
		provider := api.Group("")
		provider.Use(middleware.JWTAuthProviderMiddleware(hb.UserRepo, hb.ProviderRepo))
		provider.POST("/:id/confirm", hb.Bookings.Confirm)
		provider.POST("/:id/complete", hb.Bookings.Complete)
	}
}

// RegisterReviewRoutes registers review submission and responses.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Reviews.Create)
		api.POST("/:id/respond", middleware.JWTAuthProviderMiddleware(hb.UserRepo, hb.ProviderRepo), hb.Reviews.Respond)
	}
}

// RegisterNotificationRoutes registers the in-app notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.GetMyNotifications)
		api.PUT("/:id/read", hb.Notifications.MarkRead)
		api.DELETE("", hb.Notifications.ClearAll)
	}
}

// RegisterPaymentRoutes registers payment intents and the Stripe webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intent", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Payments.CreateIntent)
		// Stripe authenticates with its signature header, not a session.
		api.POST("/webhook/stripe", hb.Payments.StripeWebhook)
	}
}

// RegisterStorageRoutes registers gallery and avatar uploads.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthProviderMiddleware(hb.UserRepo, hb.ProviderRepo))
		api.POST("/images", hb.Storage.UploadImage)
		api.DELETE("/images", hb.Storage.DeleteImage)
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
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
