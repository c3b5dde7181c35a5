package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mraditya/pasarku/internal/pkg/config"
	"github.com/mraditya/pasarku/internal/pkg/database"
	"github.com/mraditya/pasarku/internal/pkg/health"
	"github.com/mraditya/pasarku/internal/pkg/logger"
	nsqpkg "github.com/mraditya/pasarku/internal/pkg/nsq"
	"github.com/mraditya/pasarku/internal/pkg/server"
	"github.com/mraditya/pasarku/services/payment/gateway"
	"github.com/mraditya/pasarku/services/payment/handler"
	httpHandler "github.com/mraditya/pasarku/services/payment/handler/http"
	"github.com/mraditya/pasarku/services/payment/repository"
	"github.com/mraditya/pasarku/services/payment/usecase"
)

func main() {
	appName := "payment-service"
	configs := config.InitConfig("config/payment.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Gateway credentials and status vocabulary live in a separate
	// reviewable file, not in environment variables
	gatewayCfg, err := config.LoadGatewayConfig(config.GetEnv("GATEWAY_CONFIG_PATH", "config/gateway.yaml"))
	if err != nil {
		zapLogger.Fatal("Failed to load gateway config", logger.Err(err))
	}
	configs.Gateway = *gatewayCfg

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize repositories
	db := postgresClient.GetDB()
	transactionRepo := repository.NewTransactionRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	packageRepo := repository.NewPackageRepository(db, redisClient)
	userRepo := repository.NewUserRepository(db)

	// Initialize gateway client
	paymentGW, err := gateway.NewPaymentGW(&configs.Gateway)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment gateway", logger.Err(err))
	}

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, paymentGW, transactionRepo, featureRepo, packageRepo, userRepo, producer)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	Handler := handler.NewHandler(paymentHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(echoMiddleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echoMiddleware.Recover())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", logger.Err(err))
	}
}
