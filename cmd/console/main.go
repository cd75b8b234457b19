package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"venuely/internal/client"
	"venuely/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Console()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.Run(ctx, os.Stdout, os.Args); err != nil {
		log.Fatal().Err(err).Msg("console failed")
	}
}
