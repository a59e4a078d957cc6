package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"filesmanager/internal/domain/entity"
)

// Publisher pushes job payloads onto the durable queues consumed by the
// worker process.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := connectWithRetry(url, 10, 5*time.Second)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, name := range []string{ThumbnailQueue, WelcomeQueue} {
		if err := declareQueue(channel, name); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func (p *Publisher) EnqueueThumbnail(ctx context.Context, job entity.ThumbnailJob) error {
	return p.publish(ctx, ThumbnailQueue, job)
}

func (p *Publisher) EnqueueWelcome(ctx context.Context, job entity.WelcomeJob) error {
	return p.publish(ctx, WelcomeQueue, job)
}

func (p *Publisher) publish(ctx context.Context, queueName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}
	return nil
}
