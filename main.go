package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandconnect/config"
	"brandconnect/cron"
	"brandconnect/database"
	availabilityRepo "brandconnect/database/repository/availability"
	bookingRepo "brandconnect/database/repository/booking"
	creativeRepo "brandconnect/database/repository/creative"
	messageRepo "brandconnect/database/repository/message"
	userRepoPkg "brandconnect/database/repository/user"
	"brandconnect/handlers"
	"brandconnect/middleware"
	"brandconnect/models"
	"brandconnect/routes"
	"brandconnect/services/availability"
	"brandconnect/services/booking"
	"brandconnect/services/creative"
	"brandconnect/services/messaging"
	"brandconnect/services/notification"
	"brandconnect/services/session"
	"brandconnect/services/user"
	"brandconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: portfolio uploads disabled: %v", err)
	}

	// Repositories.
	usersRepo := userRepoPkg.NewMongoUserRepo()
	creativesRepo := creativeRepo.NewMongoCreativeRepo()
	schedulesRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookingsRepo := bookingRepo.NewMongoBookingRepo()
	messagesRepo := messageRepo.NewMongoMessageRepo()

	// Session lifecycle.
	sessionStore := &session.RedisSessionStore{Client: utils.GetSessionCacheClient()}
	notificationService := &notification.DefaultNotificationService{
		Users:     usersRepo,
		Creatives: creativesRepo,
	}
	tracker := &session.Tracker{
		Store:         sessionStore,
		Notifier:      notificationService,
		WarnThreshold: config.SessionWarningThreshold(),
		Interval:      config.SessionSweepInterval(),
	}
	renewer := &session.Renewer{Store: sessionStore, TTL: config.SessionTTL()}

	// Services.
	userService := &user.DefaultUserService{
		Repo:     usersRepo,
		Sessions: tracker,
		TokenTTL: config.SessionTTL(),
	}
	creativeService := &creative.DefaultCreativeService{
		Repo:     creativesRepo,
		Sessions: tracker,
		Notifier: notificationService,
		TokenTTL: config.SessionTTL(),
	}

	// A session expiring without renewal forces sign-out: the stored
	// token hash is cleared so the JWT dies with the session.
	tracker.OnExpire = func(record *models.SessionRecord) {
		var err error
		if record.Role == models.RoleCreative {
			err = creativeService.RevokeToken(record.AccountID)
		} else {
			err = userService.RevokeToken(record.AccountID)
		}
		if err != nil {
			logger.Warn("forced sign-out: token revocation failed",
				zap.String("accountId", record.AccountID), zap.Error(err))
		}
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:      schedulesRepo,
		Creatives: creativesRepo,
		Locker: &availability.RedisSaveLocker{
			Client: utils.GetCacheClient(),
			TTL:    time.Duration(config.AppConfig.AvailabilitySaveLockMS) * time.Millisecond,
		},
		DefaultStart:  config.AppConfig.DefaultDayStart,
		DefaultEnd:    config.AppConfig.DefaultDayEnd,
		DefaultBuffer: config.AppConfig.DefaultBufferMin,
	}

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingsRepo,
		Creatives:    creativesRepo,
		Availability: availabilityService,
		Notifier:     notificationService,
		Reminders:    &booking.ReminderScheduler{Client: reminderClient},
	}

	chatHub := messaging.NewHub()
	messagingService := &messaging.DefaultMessagingService{
		Repo:   messagesRepo,
		Hub:    chatHub,
		PubSub: utils.GetChatCacheClient(),
	}

	// Background loops.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Run(ctx)
	go messagingService.RunFanout(ctx)
	cron.InitReminderWorker(notificationService)

	// HTTP layer.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		UserRepo:     usersRepo,
		CreativeRepo: creativesRepo,
		Tracker:      tracker,

		User:         handlers.NewUserHandler(userService),
		Creative:     handlers.NewCreativeHandler(creativeService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Session:      handlers.NewSessionHandler(tracker, renewer),
		Messaging:    handlers.NewMessagingHandler(messagingService, chatHub),
		Admin:        handlers.NewAdminHandler(userService, creativeService),
		Storage:      handlers.NewStorageHandler(storageService, creativeService),
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
