package realtime

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"venuely/config"
	"venuely/infras/kafka"
	"venuely/infras/otel"
	"venuely/shared/constant"

	"github.com/rs/zerolog/log"
)

type Publisher interface {
	Publish(ctx context.Context, changes ...Change) error
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	hub    *Hub
	otel   otel.Otel
}

// NewPublisher writes changes to the changes topic. With Kafka disabled it delivers straight
// to the local hub, which is enough for a single instance.
func NewPublisher(cfg *config.Config, client kafka.Client, hub *Hub, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		hub:    hub,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, changes ...Change) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(changes) == 0 {
		return nil
	}

	if !p.cfg.Kafka.Enable || p.client == nil {
		for _, change := range changes {
			p.hub.Broadcast(change)
		}

		return nil
	}

	messages := make([]kafka.Message, len(changes))
	for i, change := range changes {
		messages[i] = kafka.Message{Key: change.Scope, Value: change}
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.Changes, messages...); err != nil {
		log.Error().Err(err).Msg("failed to publish realtime changes")

		return fmt.Errorf("failed to publish realtime changes: %w", err)
	}

	return nil
}

// PublishAsync publishes on a detached context and only logs failures.
func PublishAsync(ctx context.Context, publisher Publisher, changes ...Change) {
	go func() {
		if err := publisher.Publish(context.WithoutCancel(ctx), changes...); err != nil {
			log.Warn().Err(err).Msg("failed to publish realtime changes")
		}
	}()
}
