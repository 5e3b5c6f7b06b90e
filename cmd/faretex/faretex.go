package main

import (
	"os"
	"time"

	"github.com/faretex/faretex/pkg/generator"
	"github.com/faretex/faretex/pkg/notify"
	"github.com/faretex/faretex/pkg/validator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("FARETEX_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("FARETEX_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "faretex",
		Description: "Single binary of truth for faretex - converts submitted bus fare definitions into validated NeTEx documents",

		Commands: []*cli.Command{
			generator.RegisterCLI(),
			validator.RegisterCLI(),
			notify.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
