package mq

import (
	"context"
	"time"

	"SellerAgent/app/api/shopper/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/jsonx"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends chat turn events. A nil *Publisher drops events.
type Publisher struct {
	w Writer
}

// NewPublisher returns nil when no broker or topic is configured.
func NewPublisher(c config.KafkaConf) *Publisher {
	if len(c.Broker) == 0 || c.ChatTopic == "" {
		return nil
	}
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(c.Broker...),
		Topic:                  c.ChatTopic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           5 * time.Millisecond,
	})
}

// NewPublisherWithWriter publishes through w.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{w: w}
}

// PublishChatTurnEvent keys the message by session so one shopper's turns
// stay ordered within a partition.
func (p *Publisher) PublishChatTurnEvent(ctx context.Context, evt ChatTurnEvent) error {
	if p == nil || p.w == nil {
		return nil
	}
	body, err := jsonx.Marshal(evt)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.SessionID),
		Value: body,
	})
}

func (p *Publisher) Close() error {
	if p == nil || p.w == nil {
		return nil
	}
	return p.w.Close()
}
