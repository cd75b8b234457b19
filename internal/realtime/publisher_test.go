package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"venuely/config"
	"venuely/infras/kafka"
	kafkaMocks "venuely/infras/kafka/mocks"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/realtime"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	change := realtime.NewChange(realtime.OrganizerInvitesScope("o-1"), "invites", realtime.ChangeUpdate, "i-1", nil)

	tests := []struct {
		name      string
		enabled   bool
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
		wantLocal bool
	}{
		{
			name:    "kafka enabled writes keyed by scope",
			enabled: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), "venuely.changes", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						require.Len(t, messages, 1)
						assert.Equal(t, "invites:organizer:o-1", messages[0].Key)

						return nil
					})
			},
		},
		{
			name:    "kafka failure is returned",
			enabled: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: true,
		},
		{
			name:      "kafka disabled delivers locally",
			setupMock: func(*kafkaMocks.MockClient) {},
			wantLocal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.enabled
			cfg.Kafka.Topics.Changes = "venuely.changes"

			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			hub := realtime.NewHub()
			ch, unsubscribe := hub.Subscribe(change.Scope)

			defer unsubscribe()

			err := realtime.NewPublisher(cfg, client, hub, otelMocks.NewOtel()).Publish(context.Background(), change)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			_, got := receive(t, ch)
			assert.Equal(t, tt.wantLocal, got)
		})
	}
}

func TestConsumer_Handle(t *testing.T) {
	hub := realtime.NewHub()
	scope := realtime.ChatScope("c-9")

	ch, unsubscribe := hub.Subscribe(scope)
	defer unsubscribe()

	consumer := realtime.NewConsumer(&config.Config{}, nil, hub)

	consumer.Handle(kafkaGo.Message{Key: []byte(scope), Value: []byte("not json")})

	_, ok := receive(t, ch)
	assert.False(t, ok)

	value, err := json.Marshal(realtime.NewChange(scope, "messages", realtime.ChangeInsert, "m-1", map[string]string{"content": "hi"}))
	require.NoError(t, err)

	consumer.Handle(kafkaGo.Message{Key: []byte(scope), Value: value})

	change, ok := receive(t, ch)
	require.True(t, ok)
	assert.Equal(t, "m-1", change.ID)
	assert.Equal(t, "messages", change.Table)
}
