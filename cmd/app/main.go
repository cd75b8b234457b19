package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"venuely/config"
	"venuely/di"
	"venuely/helper"
	"venuely/shared/logger"

	_ "venuely/docs"

	"github.com/rs/zerolog/log"
)

// @title Venuely API
// @version 1.0
// @description Event hosts post events, venue organizers invite them, and accepted invites open a chat.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeService()

	consumed := make(chan struct{})

	go func() {
		defer close(consumed)

		app.Consumer.Run(ctx)
	}()

	app.HTTP.Serve(ctx)

	stop()
	<-consumed

	log.Info().Msg("Shut down.")
}
