// Package rabbitmq wraps the AMQP connection used for product lifecycle
// events (outbound) and stock reservation requests (inbound).
package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

const (
	// ProductEventsQueue receives product lifecycle events published by
	// this service.
	ProductEventsQueue = "product_events"
	// OrderEventsQueue delivers stock reservation requests from the
	// ordering side.
	OrderEventsQueue = "order_queue"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the queues
// this service works with.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{ProductEventsQueue, OrderEventsQueue} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
		}
	}

	log.Println("RabbitMQ client connected, queues declared.")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishProductEvent publishes a product lifecycle event (for example
// "product.created") to the product events queue. The payload is wrapped
// with an event id, the event type and a timestamp.
func (c *Client) PublishProductEvent(eventType string, payload map[string]interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	event := map[string]interface{}{
		"eventId":   uuid.New().String(),
		"eventType": eventType,
		"timestamp": time.Now().Format(time.RFC3339),
		"data":      payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	err = c.channel.Publish(
		"",                 // exchange: default exchange
		ProductEventsQueue, // routing key: the queue name
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

// ConsumeOrderEvents starts delivering messages from the order queue to
// messageHandler. A nil error from the handler acknowledges the message;
// an error nacks it without requeueing so a bad message cannot loop
// forever. Blocks until the delivery channel closes.
func (c *Client) ConsumeOrderEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msgs, err := c.channel.Consume(
		OrderEventsQueue, // queue
		"",               // consumer tag
		false,            // auto-ack: we ack manually after handling
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", OrderEventsQueue, err)
	}

	for msg := range msgs {
		if handleErr := messageHandler(msg); handleErr != nil {
			log.Printf("Order event handling failed (tag %d): %v", msg.DeliveryTag, handleErr)
			if nackErr := msg.Nack(false, false); nackErr != nil {
				log.Printf("Failed to nack message %d: %v", msg.DeliveryTag, nackErr)
			}
			continue
		}
		if ackErr := msg.Ack(false); ackErr != nil {
			log.Printf("Failed to ack message %d: %v", msg.DeliveryTag, ackErr)
		}
	}
	return nil
}
