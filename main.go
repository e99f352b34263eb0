package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"github.com/odacaict/domee.ro/config"
	"github.com/odacaict/domee.ro/cron"
	"github.com/odacaict/domee.ro/database"
	bookingRepoPkg "github.com/odacaict/domee.ro/database/repository/booking"
	notificationRepoPkg "github.com/odacaict/domee.ro/database/repository/notification"
	paymentRepoPkg "github.com/odacaict/domee.ro/database/repository/payment"
	providerRepoPkg "github.com/odacaict/domee.ro/database/repository/provider"
	reviewRepoPkg "github.com/odacaict/domee.ro/database/repository/review"
	serviceRepoPkg "github.com/odacaict/domee.ro/database/repository/service"
	userRepoPkg "github.com/odacaict/domee.ro/database/repository/user"
	"github.com/odacaict/domee.ro/handlers"
	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/routes"
	"github.com/odacaict/domee.ro/services/booking"
	"github.com/odacaict/domee.ro/services/catalog"
	"github.com/odacaict/domee.ro/services/notification"
	"github.com/odacaict/domee.ro/services/payment"
	"github.com/odacaict/domee.ro/services/provider"
	"github.com/odacaict/domee.ro/services/review"
	"github.com/odacaict/domee.ro/services/storage"
	"github.com/odacaict/domee.ro/services/user"
	"github.com/odacaict/domee.ro/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cld, err := cloudinary.NewFromParams(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	storageService := storage.NewStorageService(cld,
		config.AppConfig.CloudinaryCloudName, config.AppConfig.CloudinaryAPISecret)

	// Repositories.
	usersRepo := userRepoPkg.NewMongoUserRepo()
	providersRepo := providerRepoPkg.NewMongoProviderRepo()
	servicesRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingsRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewsRepo := reviewRepoPkg.NewMongoReviewRepo()
	notificationsRepo := notificationRepoPkg.NewMongoNotificationRepo()
	paymentsRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: usersRepo}
	providerService := &provider.DefaultProviderService{
		Repo:     providersRepo,
		Services: servicesRepo,
	}
	catalogService := &catalog.DefaultCatalogService{Repo: servicesRepo}
	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationsRepo,
		Users: usersRepo,
		FCM:   utils.FCMClient,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	schedulingEngine := &booking.DefaultSchedulingEngine{
		Repo:         bookingsRepo,
		ProviderRepo: providersRepo,
		ServiceRepo:  servicesRepo,
		Locks:        &booking.RedisSlotLocker{Client: utils.GetLockClient()},
		Notification: notificationService,
		Reminders:    &booking.AsynqReminderScheduler{Client: reminderClient},
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentsRepo,
		BookingRepo: bookingsRepo,
		Engine:      schedulingEngine,
	}
	reviewService := &review.DefaultReviewService{
		Repo:         reviewsRepo,
		Bookings:     bookingsRepo,
		ProviderRepo: providersRepo,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService, bookingsRepo)

	// HTTP surface.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     usersRepo,
		ProviderRepo: providersRepo,

		Users:         &handlers.UserHandler{Svc: userService},
		Providers:     &handlers.ProviderHandler{Svc: providerService},
		Services:      &handlers.ServiceHandler{Svc: catalogService},
		Bookings:      &handlers.BookingHandler{Engine: schedulingEngine, Providers: providersRepo},
		Reviews:       &handlers.ReviewHandler{Svc: reviewService},
		Notifications: &handlers.NotificationHandler{Svc: notificationService},
		Payments:      &handlers.PaymentHandler{Svc: paymentService},
		Storage:       &handlers.StorageHandler{Svc: storageService},
	}
	routes.RegisterRoutes(router, handlerBundle)

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
