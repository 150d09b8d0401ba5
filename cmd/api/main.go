package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	channelsHttp "zyra-views/internal/channels/adapters/http/fiber"
	"zyra-views/internal/channels/adapters/mtproto"
	channelsUsecase "zyra-views/internal/channels/core/usecase"
	"zyra-views/internal/config"
	"zyra-views/internal/logger"
	"zyra-views/internal/session"

	_ "zyra-views/docs"
)

// @title Zyra Views API
// @version 1.0
// @description Subscribers and average post reach of public Telegram channels.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("zyra-views", cfg.Debug)

	// Session storage, read-only: only cmd/signin writes the credential
	storage, closeStorage, err := session.OpenStorage(context.Background(), cfg.Telegram)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session storage")
	}
	defer closeStorage()

	// Telegram client + session manager
	client := mtproto.NewClient(cfg.Telegram.APIID, cfg.Telegram.APIHash, mtproto.ReadOnly(storage))
	manager := session.NewManager(client, cfg.Telegram.ConnectTimeout, cfg.Telegram.CallTimeout)

	warmUp(manager)

	// Usecases
	getStatsUC := channelsUsecase.NewGetStatsUseCase(manager, client, cfg.Telegram.CallTimeout)
	checkPostUC := channelsUsecase.NewCheckPostUseCase(manager, client, cfg.Telegram.CallTimeout)

	// HTTP (Fiber) app + handlers
	handler := channelsHttp.NewChannelHandler(getStatsUC, checkPostUC)
	app := channelsHttp.NewApp(handler, cfg.ServiceAPIKey)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}
	if err := manager.Close(); err != nil {
		log.Error().Err(err).Msg("telegram client close error")
	}

	log.Info().Msg("server exiting")
}

// warmUp opens the Telegram session once before serving. Failures are only
// logged: requests retry the connection and report the session state.
func warmUp(manager *session.Manager) {
	err := manager.EnsureReady(context.Background())
	switch {
	case err == nil:
		log.Info().Msg("telegram session ready")
	case errors.Is(err, session.ErrUnauthorizedSession):
		log.Warn().Msg("telegram session is not authorized, run cmd/signin")
	default:
		log.Error().Err(err).Msg("telegram session warm-up failed")
	}
}
