package main

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/pkg/config"
	"github.com/bankedge/gateway/internal/pkg/database"
	"github.com/bankedge/gateway/internal/pkg/health"
	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/middleware"
	natspkg "github.com/bankedge/gateway/internal/pkg/nats"
	"github.com/bankedge/gateway/internal/pkg/server"
	docHandler "github.com/bankedge/gateway/services/documents/handler/http"
	docGateway "github.com/bankedge/gateway/services/documents/gateway/http"
	docUsecase "github.com/bankedge/gateway/services/documents/usecase"
	"github.com/bankedge/gateway/services/users/handler"
	httpHandler "github.com/bankedge/gateway/services/users/handler/http"
	otpGateway "github.com/bankedge/gateway/services/users/gateway/http"
	eventGateway "github.com/bankedge/gateway/services/users/gateway/nats"
	"github.com/bankedge/gateway/services/users/repository"
	"github.com/bankedge/gateway/services/users/usecase"
)

func main() {
	appName := "bank-gateway"
	configPath := config.GetEnv("CONFIG_PATH", "config/gateway.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be configured")
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Redis is optional; it only backs the OTP send throttle
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
	}

	// NATS is optional; it only carries auth events
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		defer natsClient.Close()
	}

	// Repositories and gateways
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	otpGW := otpGateway.NewOtpClient(configs.OTP)
	eventGW := eventGateway.NewEventGateway(natsClient)
	kycGW := docGateway.NewKycClient(configs.Services)

	// Usecases
	userUC := usecase.NewUserUC(userRepo, otpGW, eventGW, configs)
	documentUC := docUsecase.NewDocumentUC(kycGW, configs)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(userUC)
	adminHandler := httpHandler.NewUserHandler(userUC)
	documentHandler := docHandler.NewDocumentHandler(documentUC)

	throttleCfg := middleware.OTPThrottleConfig{
		Limit:  configs.OTP.SendLimit,
		Period: time.Duration(configs.OTP.SendPeriod) * time.Second,
	}
	if redisClient != nil {
		throttleCfg.RedisClient = redisClient.GetClient()
	}
	usersHandler := handler.NewHandler(authHandler, adminHandler, handler.NewOTPThrottle(throttleCfg), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// The gate runs before every handler; its decision is final for the
	// request.
	gate := middleware.NewAuthorizationGate(middleware.GatewayPolicy(), configs.JWT)
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(gate.Middleware())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.CheckFunc{CheckerName: "postgres", Fn: postgresClient.GetDB().PingContext},
	)

	// Register service routes
	usersHandler.RegisterRoutes(e)
	documentHandler.RegisterRoutes(e)
	registerWebRoutes(e, configs.App.StaticDir)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}

// registerWebRoutes serves the single-page banking console. All SPA routes
// return the same shell; client-side routing takes over from there.
func registerWebRoutes(e *echo.Echo, staticDir string) {
	spaRoutes := []string{"/", "/login", "/dashboard", "/admin", "/registration", "/kyc"}

	if staticDir == "" {
		for _, route := range spaRoutes {
			e.GET(route, func(c echo.Context) error {
				return c.HTML(http.StatusOK, "<!DOCTYPE html><html><body>banking console is not bundled with this build</body></html>")
			})
		}
		return
	}

	index := filepath.Join(staticDir, "index.html")
	for _, route := range spaRoutes {
		e.GET(route, func(c echo.Context) error {
			return c.File(index)
		})
	}

	e.Static("/static", filepath.Join(staticDir, "static"))
	e.Static("/css", filepath.Join(staticDir, "css"))
	e.Static("/js", filepath.Join(staticDir, "js"))
	e.Static("/images", filepath.Join(staticDir, "images"))
	e.File("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))
}
