package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findit-app/findit-backend/src/config"
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/logger"
	"github.com/findit-app/findit-backend/src/mail"
	"github.com/findit-app/findit-backend/src/matching"
	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/report"
	"github.com/findit-app/findit-backend/src/routes"
	"github.com/findit-app/findit-backend/src/storage"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	envFile := ".env"
	if len(os.Args) > 1 {
		envFile = os.Args[1]
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Env)

	ctx := context.Background()
	db, err := lib.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	stores := store.New(db)
	if err := stores.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create indexes")
	}

	var photos storage.PhotoStore
	if cfg.PhotoStoreEnabled() {
		s3, err := storage.NewS3PhotoStore(storage.S3Config{
			Endpoint:  cfg.PhotoStoreEndpoint,
			Region:    cfg.PhotoStoreRegion,
			AccessKey: cfg.PhotoStoreAccessKey,
			SecretKey: cfg.PhotoStoreSecretKey,
			Bucket:    cfg.PhotoStoreBucket,
			UseSSL:    cfg.PhotoStoreUseSSL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to init photo store")
		}
		photos = s3
	} else {
		logger.Warn().Msg("PHOTO_STORE_ENDPOINT not set, item photos will be dropped")
	}

	matcher := matching.NewClient(cfg.MatchServiceURL, cfg.MatchServiceTimeout, logger.Log)
	logger.Info().Str("endpoint", matcher.Endpoint()).Dur("timeout", cfg.MatchServiceTimeout).Msg("Match service client ready")

	ctrl := routes.Controllers{
		Auth: &controllers.AuthController{
			Users: stores.Users,
			Mailer: mail.NewSMTPSender(mail.SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				User:     cfg.SMTPUser,
				Password: cfg.SMTPPassword,
				FromName: "FindIt App",
				From:     cfg.EmailFrom,
			}),
			JWTSecret:   cfg.JWTSecret,
			FrontendURL: cfg.FrontendURL,
		},
		Items:         &controllers.ItemController{Items: stores.Items, Photos: photos},
		Messages:      &controllers.MessageController{Messages: stores.Matches, Notifications: stores.Notifications},
		Notifications: &controllers.NotificationController{Notifications: stores.Notifications},
		Match: &controllers.MatchController{
			Matcher: matcher,
		},
		Reports: &controllers.ReportController{
			NewRecognizer: func() report.Recognizer { return report.NewDeviceRecognizer(logger.Log) },
			Locale:        cfg.SpeechLocale,
		},
	}

	app := fiber.New(fiber.Config{
		AppName:      "FindIt",
		ErrorHandler: lib.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Origins}))
	app.Use(middleware.RequestLogger())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	routes.Register(app, ctrl, middleware.ProtectRoute(stores.Users, cfg.JWTSecret))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info().Msg("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("match_service", cfg.MatchServiceURL).Msg("Server is running")
	if err := app.Listen(cfg.Port); err != nil {
		logger.Error().Err(err).Msg("Server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := lib.DisconnectDB(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to disconnect database")
	}
}
