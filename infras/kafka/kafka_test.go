package kafka_test

import (
	"testing"
	"venuely/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type change struct {
	Scope string `json:"scope"`
	ID    string `json:"id"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    change
		wantErr bool
	}{
		{name: "json", value: `{"scope":"chat:c-1","id":"m-1"}`, want: change{Scope: "chat:c-1", ID: "m-1"}},
		{name: "unknown fields ignored", value: `{"scope":"chat:c-1","extra":true}`, want: change{Scope: "chat:c-1"}},
		{name: "malformed", value: `{"scope":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kafka.Decode[change](kafkaGo.Message{Key: []byte("chat:c-1"), Value: []byte(tt.value)})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
