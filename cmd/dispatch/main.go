package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/config"
	"github.com/fastaxi/dispatch/internal/pkg/database"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/middleware"
	"github.com/fastaxi/dispatch/internal/pkg/nsq"
	"github.com/fastaxi/dispatch/internal/pkg/server"
	"github.com/fastaxi/dispatch/internal/pkg/websocket"
	driversGW "github.com/fastaxi/dispatch/services/drivers/gateway"
	driversHTTP "github.com/fastaxi/dispatch/services/drivers/handler/http"
	driversWS "github.com/fastaxi/dispatch/services/drivers/handler/websocket"
	driversRepo "github.com/fastaxi/dispatch/services/drivers/repository"
	driversUC "github.com/fastaxi/dispatch/services/drivers/usecase"
	ledgerHTTP "github.com/fastaxi/dispatch/services/ledger/handler/http"
	ledgerRepo "github.com/fastaxi/dispatch/services/ledger/repository"
	ledgerUC "github.com/fastaxi/dispatch/services/ledger/usecase"
	ridesGW "github.com/fastaxi/dispatch/services/rides/gateway"
	ridesHTTP "github.com/fastaxi/dispatch/services/rides/handler/http"
	ridesRepo "github.com/fastaxi/dispatch/services/rides/repository"
	ridesUC "github.com/fastaxi/dispatch/services/rides/usecase"
)

func main() {
	cfg := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(cfg.App.Name, cfg.Logger)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}
	logger.SetGlobalLogger(appLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}

	producer, err := nsq.NewProducer(cfg.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}

	db := pgClient.GetDB()

	// repositories
	driverRepository := driversRepo.NewDriverRepository(cfg, db)
	presenceRepository := driversRepo.NewPresenceRepository(redisClient)
	ledgerRepository := ledgerRepo.NewLedgerRepository(cfg, db)
	rideRepository := ridesRepo.NewRideRepository(cfg, db)

	// gateways
	wsManager := websocket.NewManager(cfg.JWT)
	driverGateway := driversGW.NewDriverGW(producer)
	rideGateway := ridesGW.NewRideGW(producer, wsManager)

	// use cases
	ledgerUsecase := ledgerUC.NewLedgerUC(cfg, ledgerRepository)
	driverUsecase := driversUC.NewDriverUC(cfg, driverRepository, presenceRepository, rideRepository, ledgerUsecase, driverGateway)
	rideUsecase := ridesUC.NewRideUC(cfg, rideRepository, driverUsecase, ledgerUsecase, rideGateway)

	wsManager.SetDisconnectHandler(driverUsecase.Disconnect)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go rideUsecase.StartExpirySweep(sweepCtx)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	driversHTTP.NewDriverHandler(driverUsecase).RegisterRoutes(e)
	ledgerHTTP.NewLedgerHandler(ledgerUsecase).RegisterRoutes(e)
	ridesHTTP.NewRideHandler(rideUsecase).RegisterRoutes(e)
	driversWS.NewDriverWSHandler(wsManager, driverUsecase, rideUsecase).RegisterRoutes(e)

	shutdown := server.NewShutdownManager(appLogger)
	shutdown.Register(func(context.Context) error {
		stopSweep()
		return nil
	})
	shutdown.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})
	shutdown.Register(func(context.Context) error {
		return redisClient.Close()
	})
	shutdown.Register(func(context.Context) error {
		return pgClient.Close()
	})

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port, shutdown)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
