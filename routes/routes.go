package routes

import (
	"net/http"
	"time"

	creativeRepo "brandconnect/database/repository/creative"
	userRepo "brandconnect/database/repository/user"
	"brandconnect/handlers"
	"brandconnect/middleware"
	"brandconnect/models"
	"brandconnect/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries everything route registration needs: the
// handlers plus the repositories and tracker the auth middleware
// validates against.
type HandlerBundle struct {
	UserRepo     userRepo.UserRepository
	CreativeRepo creativeRepo.CreativeRepository
	Tracker      *session.Tracker

	User         *handlers.UserHandler
	Creative     *handlers.CreativeHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Session      *handlers.SessionHandler
	Messaging    *handlers.MessagingHandler
	Admin        *handlers.AdminHandler
	Storage      *handlers.StorageHandler
}

func (hb *HandlerBundle) auth() gin.HandlerFunc {
	return middleware.AuthMiddleware(hb.UserRepo, hb.CreativeRepo, hb.Tracker)
}

// RegisterUserRoutes registers client account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		protected := api.Group("")
		protected.Use(hb.auth())
		protected.GET("/me", hb.User.MeHandler)
		protected.PUT("/me", hb.User.UpdateHandler)
		protected.PUT("/me/fcm-token", hb.User.UpdateFCMTokenHandler)
		protected.POST("/signout", hb.User.SignOutHandler)
		protected.DELETE("/me", hb.User.DeleteHandler)
	}
}

// RegisterCreativeRoutes registers creative account, browsing,
// availability and portfolio endpoints.
func RegisterCreativeRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/creatives")
	{
		// Public endpoints: registration, login, browsing.
		api.POST("/register", hb.Creative.RegisterHandler)
		api.POST("/login", hb.Creative.LoginHandler)
		api.GET("", hb.Creative.BrowseHandler)
		api.GET("/:id", hb.Creative.GetPublicHandler)
		api.GET("/:id/availability", hb.Availability.GetPublicHandler)

		// Endpoints for the signed-in creative.
		me := api.Group("/me")
		me.Use(hb.auth(), middleware.RequireRole(models.RoleCreative))
		me.GET("", hb.Creative.MeHandler)
		me.PUT("", hb.Creative.UpdateHandler)
		me.PUT("/fcm-token", hb.Creative.UpdateFCMTokenHandler)
		me.GET("/availability", hb.Availability.GetMineHandler)
		me.PUT("/availability", hb.Availability.SaveHandler)
		me.POST("/portfolio", hb.Storage.UploadPortfolioHandler)

		signout := api.Group("")
		signout.Use(hb.auth(), middleware.RequireRole(models.RoleCreative))
		signout.POST("/signout", hb.Creative.SignOutHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(hb.auth())
		api.POST("", hb.Booking.RequestHandler)
		api.GET("", hb.Booking.ListMineHandler)
		api.PUT("/:id/respond", middleware.RequireRole(models.RoleCreative), hb.Booking.RespondHandler)
		api.PUT("/:id/complete", middleware.RequireRole(models.RoleCreative), hb.Booking.CompleteHandler)
		api.POST("/:id/rate", middleware.RequireRole(models.RoleClient), hb.Booking.RateHandler)
		api.DELETE("/:id", hb.Booking.CancelHandler)
	}
}

// RegisterSessionRoutes registers session status and renewal endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.Use(hb.auth())
		api.GET("", hb.Session.StatusHandler)
		api.POST("/extend", hb.Session.ExtendHandler)
	}
}

// RegisterMessagingRoutes registers conversation, chat and realtime
// endpoints.
func RegisterMessagingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(hb.auth())
		api.POST("/conversations", hb.Messaging.OpenHandler)
		api.GET("/conversations", hb.Messaging.ListHandler)
		api.POST("/conversations/:id", hb.Messaging.SendHandler)
		api.GET("/conversations/:id", hb.Messaging.HistoryHandler)
		api.PUT("/conversations/:id/read", hb.Messaging.MarkReadHandler)
		api.GET("/ws", hb.Messaging.ServeWSHandler)
	}
}

// RegisterAdminRoutes registers the review queue and oversight
// endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(hb.auth(), middleware.RequireRole(models.RoleAdmin))
		api.GET("/creatives", hb.Admin.ListCreativesHandler)
		api.GET("/creatives/pending", hb.Admin.ListPendingHandler)
		api.PUT("/creatives/:id/review", hb.Admin.ReviewHandler)
		api.GET("/users", hb.Admin.ListUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Brand Connect API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCreativeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
