package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"cardapio/internal/domain/model"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func TestKafkaOrderPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	prev := model.OrderStatusReceived
	ev := model.OrderEvent{
		Type:           model.OrderEventStatusChanged,
		OrderID:        42,
		UserID:         7,
		Status:         model.OrderStatusInPreparation,
		PreviousStatus: &prev,
		TotalAmount:    decimal.RequireFromString("29.00"),
		OccurredAt:     time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]interface{}
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["type"] != "order.status_changed" {
			return errors.New("unexpected type")
		}
		if got["previous_status"] != "RECEIVED" {
			return errors.New("unexpected previous status")
		}
		if got["event_id"] == "" {
			return errors.New("missing event id")
		}
		//money goes out as a number
		if got["total_amount"] != 29.0 {
			return errors.New("unexpected total")
		}
		return nil
	})

	p := NewKafkaOrderPublisherWithProducer(producer, "order-events", nil)
	require.NoError(t, p.Publish(context.Background(), ev))
}

func TestKafkaOrderPublisher_SendFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaOrderPublisherWithProducer(producer, "order-events", nil)
	err := p.Publish(context.Background(), model.OrderEvent{Type: model.OrderEventCreated, OrderID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestKafkaOrderPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewKafkaOrderPublisherWithProducer(producer, "order-events", nil)
	assert.ErrorIs(t, p.Publish(ctx, model.OrderEvent{OrderID: 1}), context.Canceled)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), model.OrderEvent{}))
	assert.NoError(t, p.Close())
}
