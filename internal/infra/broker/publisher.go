package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends reservation events to a durable queue over one long-lived channel.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, evt shared.ReservationCreated) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal reservation event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    evt.ReservationID.String(),
		Type:         "reservation.created",
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops events; it stands in when AMQP is disabled or unreachable.
type NopPublisher struct{}

func (NopPublisher) PublishReservationCreated(context.Context, shared.ReservationCreated) error {
	return nil
}
