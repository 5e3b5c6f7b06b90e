package validator

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faretex/faretex/pkg/consumer"
	"github.com/faretex/faretex/pkg/database"
	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/objectstore"
	"github.com/faretex/faretex/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "validator",
		Usage: "Provides the NeTEx schema validation runner",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the validation consumer",
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
						QueueName:       fares.QueueValidation,
						NumberConsumers: 2,
						BatchSize:       10,
						Timeout:         2 * time.Second,
						Consumer:        NewValidationBatchConsumer(),
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
		},
	}
}
