package realtime

import (
	"context"
	"os"
	"venuely/config"
	"venuely/infras/kafka"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	hub    *Hub
}

func NewConsumer(cfg *config.Config, client kafka.Client, hub *Hub) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		hub:    hub,
	}
}

// Run blocks until ctx is done. Every instance joins its own consumer group so each one sees
// every change.
func (c *Consumer) Run(ctx context.Context) {
	if !c.cfg.Kafka.Enable || c.client == nil {
		log.Info().Msg("kafka disabled, realtime changes stay in process")

		return
	}

	c.client.Consume(ctx, c.groupID(), c.cfg.Kafka.Topics.Changes, c.Handle)
}

func (c *Consumer) Handle(message kafkaGo.Message) {
	change, err := kafka.Decode[Change](message)
	if err != nil {
		log.Warn().Err(err).Msg("skipping malformed realtime change")

		return
	}

	if change.Scope == "" {
		return
	}

	c.hub.Broadcast(change)
}

func (c *Consumer) groupID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = uuid.NewString()
	}

	return c.cfg.Kafka.ConsumerGroup + "." + host
}
