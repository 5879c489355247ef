package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"cardapio/internal/domain/model"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaOrderPublisher writes order events to one topic, keyed by order id
// so every event of an order lands on the same partition.
type KafkaOrderPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second
	return cfg
}

func NewKafkaOrderPublisher(brokers []string, topic string, log *zap.Logger) (*KafkaOrderPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("start kafka producer: %w", err)
	}
	return NewKafkaOrderPublisherWithProducer(producer, topic, log), nil
}

func NewKafkaOrderPublisherWithProducer(producer sarama.SyncProducer, topic string, log *zap.Logger) *KafkaOrderPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaOrderPublisher{producer: producer, topic: topic, log: log}
}

func (p *KafkaOrderPublisher) Publish(ctx context.Context, ev model.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.OrderID, 10)),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send order event: %w", err)
	}
	p.log.Debug("order event published",
		zap.String("event_id", ev.EventID),
		zap.String("type", string(ev.Type)),
		zap.Int64("order_id", ev.OrderID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *KafkaOrderPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                    { return nil }
