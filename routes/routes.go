package routes

import (
	"net/http"
	"time"

	"qserve/handlers"
	"qserve/middleware"
	"qserve/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Register)
		api.POST("/login", hb.Login)
	}
}

// RegisterUserRoutes registers profile and provider-directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/me", hb.GetProfile)
		api.PATCH("/me", hb.UpdateProfile)
		api.POST("/me/image", hb.UploadProfileImage)
		api.GET("/id/:id", hb.GetUser)
		api.GET("/providers", hb.ListProviders)
	}
}

// RegisterWalletRoutes registers wallet endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wallet")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.GetWallet)
		api.POST("/deposit", hb.WalletDeposit)
		api.POST("/withdraw", hb.WalletWithdraw)
	}
}

// RegisterQPayRoutes registers QPay account endpoints. Discount and cashback
// management is restricted to admins.
func RegisterQPayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/qpay")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/register", hb.RegisterQPay)
		api.GET("/account", hb.GetQPayAccount)
		api.POST("/verify-pin", hb.VerifyQPayPin)
		api.POST("/deposit", hb.QPayDeposit)
		api.POST("/withdraw", hb.QPayWithdraw)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.PUT("/discount/:userID", hb.SetQPayDiscount)
		admin.POST("/cashback/:userID", hb.AddQPayCashback)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.CreateBooking)
		api.GET("/id/:id", hb.GetBooking)
		api.PATCH("/id/:id/status", hb.UpdateBookingStatus)
		api.GET("/customer", hb.ListCustomerBookings)
		api.GET("/provider", middleware.RequireRole(models.RoleProvider), hb.ListProviderBookings)
	}
}

// RegisterMoneyRequestRoutes registers invoice endpoints.
func RegisterMoneyRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/money-requests")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", middleware.RequireRole(models.RoleProvider), hb.CreateMoneyRequest)
		api.GET("", hb.ListMoneyRequests)
		api.GET("/id/:id", hb.GetMoneyRequest)
		api.PUT("/id/:id/pay", hb.PayMoneyRequest)
		api.PUT("/id/:id/cancel", hb.CancelMoneyRequest)
	}
}

// RegisterTransactionRoutes registers money movement and history endpoints.
func RegisterTransactionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transactions")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/send", hb.SendMoney)
		api.GET("", hb.TransactionHistory)
		api.GET("/id/:id", hb.GetTransaction)
		api.GET("/id/:id/receipt", hb.DownloadReceipt)
	}
}

// RegisterChatRoutes registers messaging endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/messages", hb.SendMessage)
		api.GET("/conversations", hb.ListConversations)
		api.GET("/conversations/:userID", hb.GetConversation)
	}
}

// RegisterReviewRoutes registers review and reaction endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.CreateReview)
		api.PATCH("/id/:id", hb.UpdateReview)
		api.DELETE("/id/:id", hb.DeleteReview)
		api.PUT("/id/:id/like", hb.LikeReview)
		api.PUT("/id/:id/dislike", hb.DislikeReview)
		api.GET("/provider/:providerID", hb.ListProviderReviews)
	}
}

// RegisterFavoriteRoutes registers provider bookmark endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.AddFavorite)
		api.GET("", hb.ListFavorites)
		api.GET("/id/:providerID", hb.CheckFavorite)
		api.DELETE("/id/:providerID", hb.RemoveFavorite)
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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterQPayRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMoneyRequestRoutes(r, hb)
	RegisterTransactionRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
}
