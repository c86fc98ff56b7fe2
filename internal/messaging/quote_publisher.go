package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"keystone-site/internal/models"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// QuoteEventType - значение заголовка event_type для события новой заявки.
const QuoteEventType = "quote.requested"

// QuotePublisher публикует события о новых заявках.
type QuotePublisher interface {
	PublishQuoteRequested(ctx context.Context, event models.QuoteRequestedEvent) error
}

// RabbitMQQuotePublisher публикует события в durable fanout exchange.
type RabbitMQQuotePublisher struct {
	ch       *amqp091.Channel
	exchange string
	logger   *zap.Logger
	mu       sync.Mutex // канал не предназначен для конкурентной публикации
}

// NewRabbitMQQuotePublisher открывает канал и объявляет exchange.
func NewRabbitMQQuotePublisher(conn *amqp091.Connection, exchange string, logger *zap.Logger) (*RabbitMQQuotePublisher, error) {
	if conn == nil {
		return nil, errors.New("rabbitmq connection is nil")
	}
	log := logger.Named("QuotePublisher").With(zap.String("exchange", exchange))

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Failed to open a channel", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		log.Error("Failed to declare exchange", zap.Error(err))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}
	log.Info("Quote events exchange declared")

	return &RabbitMQQuotePublisher{ch: ch, exchange: exchange, logger: log}, nil
}

// PublishQuoteRequested публикует событие о новой заявке.
func (p *RabbitMQQuotePublisher) PublishQuoteRequested(ctx context.Context, event models.QuoteRequestedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal quote event: %w", err)
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		"",         // routing key (не используется для fanout)
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.QuoteID,
			Timestamp:    time.Now(),
			Type:         QuoteEventType,
			Headers:      amqp091.Table{"event_type": QuoteEventType},
			Body:         body,
		},
	)
	p.mu.Unlock()

	if err != nil {
		p.logger.Error("Failed to publish quote event", zap.String("quoteID", event.QuoteID), zap.Error(err))
		return fmt.Errorf("failed to publish quote event: %w", err)
	}

	p.logger.Debug("Quote event published", zap.String("quoteID", event.QuoteID))
	return nil
}

// Close закрывает канал RabbitMQ.
func (p *RabbitMQQuotePublisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}
