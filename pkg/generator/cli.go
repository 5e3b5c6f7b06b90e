package generator

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faretex/faretex/pkg/consumer"
	"github.com/faretex/faretex/pkg/database"
	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/netex"
	"github.com/faretex/faretex/pkg/objectstore"
	"github.com/faretex/faretex/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "generator",
		Usage: "Provides the NeTEx document generator",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the submission consumer",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := objectstore.Connect(); err != nil {
						return err
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName:       fares.QueueSubmissions,
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        NewSubmissionBatchConsumer(),
					}
					redisConsumer.Setup()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "single",
				Usage: "generate one document from a local ticket definition",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to a JSON ticket definition",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "path to write the generated XML to",
						Value: "netex-output.xml",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					data, err := os.ReadFile(c.String("file"))
					if err != nil {
						return err
					}

					ticket, err := fares.ParseTicketDescription(data)
					if err != nil {
						return err
					}

					operator, err := fares.GetOperator(context.Background(), ticket.OperatorCode)
					if err != nil {
						return err
					}

					document, err := netex.Generate(netex.NewTemplateLoader(), ticket, operator, time.Now())
					if err != nil {
						return err
					}

					if err := os.WriteFile(c.String("output"), document, 0644); err != nil {
						return err
					}

					log.Info().Str("output", c.String("output")).Msg("Generated NeTEx document")

					return nil
				},
			},
		},
	}
}
