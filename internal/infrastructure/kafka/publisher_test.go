package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func sampleEvent() fulfillment.AllocationCreated {
	return fulfillment.AllocationCreated{
		EventID:      "0b1c8f4e-7d2a-4c55-9a0e-3f1b2c3d4e5f",
		AllocationID: 11,
		OrderID:      5,
		ProductID:    1,
		WarehouseID:  2,
		Amount:       20,
		Price:        decimal.RequireFromString("200.00"),
		CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishAllocationCreated(t *testing.T) {
	w := &fakeWriter{}
	p := NewAllocationPublisherWithWriter(w)

	require.NoError(t, p.PublishAllocationCreated(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "5", string(msg.Key))
	assert.Equal(t, EventTypeAllocationCreated, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, float64(11), body["allocationId"])
	assert.Equal(t, "200", body["price"])
	assert.Equal(t, "2024-03-01T10:00:00Z", body["createdAt"])
}

func TestPublishAllocationCreated_ErrorDelWriter(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := NewAllocationPublisherWithWriter(w)

	err := p.PublishAllocationCreated(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka write")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishAllocationCreated(context.Background(), sampleEvent()))
}
