package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qserve/config"
	"qserve/database"
	bookingRepoPkg "qserve/database/repository/booking"
	favoriteRepoPkg "qserve/database/repository/favorite"
	messageRepoPkg "qserve/database/repository/message"
	moneyRequestRepoPkg "qserve/database/repository/moneyrequest"
	qpayRepoPkg "qserve/database/repository/qpay"
	reviewRepoPkg "qserve/database/repository/review"
	transactionRepoPkg "qserve/database/repository/transaction"
	userRepoPkg "qserve/database/repository/user"
	walletRepoPkg "qserve/database/repository/wallet"
	"qserve/handlers"
	"qserve/middleware"
	"qserve/routes"
	"qserve/services/booking"
	"qserve/services/chat"
	"qserve/services/favorite"
	"qserve/services/moneyrequest"
	"qserve/services/notification"
	"qserve/services/qpay"
	"qserve/services/review"
	"qserve/services/storage"
	"qserve/services/transaction"
	"qserve/services/user"
	"qserve/services/wallet"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	var storageService storage.StorageService
	if cfg := config.AppConfig; cfg.CloudinaryCloudName != "" {
		svc, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
		storageService = svc
	} else {
		logger.Sugar().Warn("main: cloudinary not configured, image uploads disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	walletRepo := walletRepoPkg.NewMongoWalletRepo()
	qpayRepo := qpayRepoPkg.NewMongoQPayRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	moneyRequestRepo := moneyRequestRepoPkg.NewMongoMoneyRequestRepo()
	transactionRepo := transactionRepoPkg.NewMongoTransactionRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{Users: userRepo}

	userService := &user.DefaultUserService{Repo: userRepo, Wallets: walletRepo}
	walletService := &wallet.DefaultWalletService{Repo: walletRepo}
	qpayService := &qpay.DefaultQPayService{Repo: qpayRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Users:        userRepo,
		Notification: notificationService,
	}
	moneyRequestService := &moneyrequest.DefaultMoneyRequestService{
		Repo:         moneyRequestRepo,
		Bookings:     bookingRepo,
		Notification: notificationService,
	}
	transactionService := &transaction.DefaultTransactionService{
		Repo:         transactionRepo,
		QPay:         qpayRepo,
		Bookings:     bookingRepo,
		Requests:     moneyRequestRepo,
		Users:        userRepo,
		Notification: notificationService,
	}
	chatService := &chat.DefaultChatService{
		Repo:         messageRepo,
		Users:        userRepo,
		Cache:        utils.GetCacheClient(),
		Notification: notificationService,
	}
	reviewService := &review.DefaultReviewService{Repo: reviewRepo, Users: userRepo}
	favoriteService := &favorite.DefaultFavoriteService{Repo: favoriteRepo, Users: userRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:        userService,
		Wallets:      walletService,
		QPay:         qpayService,
		Bookings:     bookingService,
		Requests:     moneyRequestService,
		Transactions: transactionService,
		Chat:         chatService,
		Reviews:      reviewService,
		Favorites:    favoriteService,
		Storage:      storageService,
	}

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
