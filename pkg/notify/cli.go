package notify

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
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "notify",
		Usage: "Provides the notification runner",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the notification and alert consumers",
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

					startAlertConsumer()

					redisConsumer := consumer.RedisConsumer{
						QueueName:       fares.QueueNotify,
						NumberConsumers: 2,
						BatchSize:       10,
						Timeout:         2 * time.Second,
						Consumer:        NewNotifyBatchConsumer(),
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

func startAlertConsumer() {
	queue, err := redis_client.QueueConnection.OpenQueue(fares.QueueAlerts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open alert queue")
	}
	if err := queue.StartConsuming(20, 1*time.Second); err != nil {
		log.Fatal().Err(err).Msg("Failed to start alert consumer")
	}

	if _, err := queue.AddBatchConsumer("alert-consumer", 10, 2*time.Second, NewAlertBatchConsumer()); err != nil {
		log.Fatal().Err(err).Msg("Failed to add alert consumer")
	}
}
