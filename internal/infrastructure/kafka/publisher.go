package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// EventTypeAllocationCreated valor del header event-type.
const EventTypeAllocationCreated = "AllocationCreated"

var (
	_ fulfillment.EventPublisher = (*AllocationPublisher)(nil)
	_ fulfillment.EventPublisher = NopPublisher{}
)

// MessageWriter es la parte de *kafka.Writer que usa el publicador.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AllocationPublisher publica AllocationCreated en un tópico Kafka, con la orden como clave
// para conservar el orden por orden dentro de la partición.
type AllocationPublisher struct {
	w MessageWriter
}

// NewAllocationPublisher construye un publicador sobre un kafka.Writer hacia brokers/topic.
func NewAllocationPublisher(brokers []string, topic string) *AllocationPublisher {
	return NewAllocationPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	})
}

// NewAllocationPublisherWithWriter permite inyectar el writer (tests).
func NewAllocationPublisherWithWriter(w MessageWriter) *AllocationPublisher {
	return &AllocationPublisher{w: w}
}

// PublishAllocationCreated serializa el evento como JSON y lo escribe en el tópico.
func (p *AllocationPublisher) PublishAllocationCreated(ctx context.Context, evt fulfillment.AllocationCreated) error {
	msg, err := buildMessage(evt)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close libera el writer.
func (p *AllocationPublisher) Close() error {
	return p.w.Close()
}

func buildMessage(evt fulfillment.AllocationCreated) (kafka.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("serializar evento: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventTypeAllocationCreated)},
			{Key: "event-id", Value: []byte(evt.EventID)},
		},
		Time: evt.CreatedAt,
	}, nil
}

// NopPublisher descarta los eventos (sin brokers configurados).
type NopPublisher struct{}

func (NopPublisher) PublishAllocationCreated(context.Context, fulfillment.AllocationCreated) error {
	return nil
}
