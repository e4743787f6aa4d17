// Package queue publishes resume events to RabbitMQ for the downstream
// analysis workers.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// ResumeEvent is the message body announcing a registered resume upload.
type ResumeEvent struct {
	Email      string    `json:"email"`
	StorageKey string    `json:"storage_key"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Publisher pushes events onto a named queue over an AMQP connection.
type Publisher struct {
	conn      *amqp.Connection
	queueName string
}

// NewPublisher dials the broker and declares the queue so publishes cannot
// race its creation.
func NewPublisher(url, queueName string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &Publisher{conn: conn, queueName: queueName}, nil
}

// ResumeRegistered publishes a ResumeEvent. A fresh channel per publish
// keeps the connection usable after individual channel errors.
func (p *Publisher) ResumeRegistered(_ context.Context, email, storageKey string) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(ResumeEvent{
		Email:      email,
		StorageKey: storageKey,
		UploadedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = ch.Publish("", p.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish resume event: %w", err)
	}
	return nil
}

// Close tears down the broker connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
