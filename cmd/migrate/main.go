package main

import (
	"fmt"
	"os"
	"venuely/config"
	"venuely/helper"
	"venuely/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func direction(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(*cli.Context) error {
			return helper.Run(config.Get(), name)
		},
	}
}

func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	app := &cli.App{
		Name:  "migrate",
		Usage: "apply the venuely postgres schema",
		Commands: []*cli.Command{
			direction(helper.DirectionUp, "apply every pending migration"),
			direction(helper.DirectionDown, "roll back the latest migration"),
			direction(helper.DirectionStepUp, "apply the next pending migration"),
			direction(helper.DirectionDrop, "roll back every migration"),
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(ctx *cli.Context) error {
					version, dirty, err := helper.Version(cfg)
					if err != nil {
						return err
					}

					_, err = fmt.Fprintf(ctx.App.Writer, "version %d dirty %t\n", version, dirty)

					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
