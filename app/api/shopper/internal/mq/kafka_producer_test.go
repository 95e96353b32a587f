package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"SellerAgent/app/api/shopper/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewPublisherUnconfigured(t *testing.T) {
	assert.Nil(t, NewPublisher(config.KafkaConf{}))
	assert.Nil(t, NewPublisher(config.KafkaConf{Broker: []string{"localhost:9092"}}))

	var p *Publisher
	assert.NoError(t, p.PublishChatTurnEvent(context.Background(), ChatTurnEvent{}))
	assert.NoError(t, p.Close())
}

func TestPublishChatTurnEvent(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w)

	evt := ChatTurnEvent{SessionID: "s-1", TurnID: 42, Query: "mouse", Source: "local", ProductIDs: []string{"1"}}
	require.NoError(t, p.PublishChatTurnEvent(context.Background(), evt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("s-1"), w.msgs[0].Key)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "42", got["turn_id"])
	assert.Equal(t, "local", got["source"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishPropagatesWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := NewPublisherWithWriter(&fakeWriter{err: boom})
	assert.ErrorIs(t, p.PublishChatTurnEvent(context.Background(), ChatTurnEvent{}), boom)
}
