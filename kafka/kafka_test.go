package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/growshop/internal/order/domain"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     "ORD-042",
		UserID: "u1",
		Lines: []domain.OrderLine{
			{ProductID: "P1", ProductName: "Maceta", Quantity: 2, Price: 20},
			{ProductID: "P2", ProductName: "Sustrato", Quantity: 1, Price: 40},
		},
		Total:  80,
		Status: domain.StatusPending,
		ShippingAddress: domain.ShippingAddress{
			Name: "Ana", Address: "Carrer Major 1", City: "Girona", PostalCode: "17001", Country: "ES", Phone: "600000000",
		},
	}
}

func TestNewOrderPlacedEvent(t *testing.T) {
	event := NewOrderPlacedEvent(testOrder())

	assert.Equal(t, "ORD-042", event.OrderID)
	assert.Equal(t, 3, event.ItemCount)
	assert.Equal(t, 80.0, event.Total)
	assert.Equal(t, "Girona", event.City)

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "600000000")
}

func TestPublishOrderPlaced(t *testing.T) {
	t.Run("sends keyed message with headers", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != TopicOrderPlaced {
				return errors.New("wrong topic " + msg.Topic)
			}
			key, _ := msg.Key.Encode()
			if string(key) != "ORD-042" {
				return errors.New("wrong key " + string(key))
			}

			found := false
			for _, h := range msg.Headers {
				if string(h.Key) == "event_type" && string(h.Value) == EventTypeOrderPlaced {
					found = true
				}
			}
			if !found {
				return errors.New("missing event_type header")
			}

			value, _ := msg.Value.Encode()
			var event OrderPlacedEvent
			if err := json.Unmarshal(value, &event); err != nil {
				return err
			}
			if event.EventID == "" || event.Timestamp.IsZero() {
				return errors.New("event metadata not set")
			}
			return nil
		})

		p := NewPublisherWithProducer(producer)
		p.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

		require.NoError(t, p.PublishOrderPlaced(context.Background(), testOrder()))
		require.NoError(t, p.Close())
	})

	t.Run("send failure is returned", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewPublisherWithProducer(producer)
		err := p.PublishOrderPlaced(context.Background(), testOrder())
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, p.Close())
	})
}

func message(eventType string, value []byte) *sarama.ConsumerMessage {
	msg := &sarama.ConsumerMessage{Topic: TopicOrderPlaced, Value: value}
	if eventType != "" {
		msg.Headers = []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte("evt-1")},
		}
	}
	return msg
}

func TestConsumerHandleMessage(t *testing.T) {
	ctx := context.Background()
	payload, err := json.Marshal(NewOrderPlacedEvent(testOrder()))
	require.NoError(t, err)

	t.Run("dispatches to registered handler", func(t *testing.T) {
		c := newConsumer(nil, "test", []string{TopicOrderPlaced})
		var got OrderPlacedEvent
		c.RegisterHandler(EventTypeOrderPlaced, func(ctx context.Context, event OrderPlacedEvent) error {
			got = event
			return nil
		})

		require.NoError(t, c.handleMessage(ctx, message(EventTypeOrderPlaced, payload)))
		assert.Equal(t, "ORD-042", got.OrderID)
	})

	t.Run("missing event type", func(t *testing.T) {
		c := newConsumer(nil, "test", nil)
		assert.ErrorIs(t, c.handleMessage(ctx, message("", payload)), errMissingEventType)
	})

	t.Run("no handler", func(t *testing.T) {
		c := newConsumer(nil, "test", nil)
		assert.ErrorIs(t, c.handleMessage(ctx, message(EventTypeOrderPlaced, payload)), errNoHandler)
	})

	t.Run("bad payload", func(t *testing.T) {
		c := newConsumer(nil, "test", nil)
		c.RegisterHandler(EventTypeOrderPlaced, func(context.Context, OrderPlacedEvent) error { return nil })
		assert.Error(t, c.handleMessage(ctx, message(EventTypeOrderPlaced, []byte("{"))))
	})

	t.Run("handler error is returned", func(t *testing.T) {
		c := newConsumer(nil, "test", nil)
		boom := errors.New("boom")
		c.RegisterHandler(EventTypeOrderPlaced, func(context.Context, OrderPlacedEvent) error { return boom })
		assert.ErrorIs(t, c.handleMessage(ctx, message(EventTypeOrderPlaced, payload)), boom)
	})
}
