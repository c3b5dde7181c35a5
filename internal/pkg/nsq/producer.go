package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/retry"
	"github.com/nsqio/go-nsq"
)

// publishTimeout bounds how long one publish may spend across retries
const publishTimeout = 3 * time.Second

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	// Ping the NSQ daemon to ensure connectivity
	err = producer.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{
		producer: producer,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				return err != nil
			},
		}),
	}, nil
}

// Publish sends a message to the specified topic, retrying transient
// publish failures with backoff.
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.retrier.Execute(ctx, func(context.Context) error {
		return p.producer.Publish(topic, msgBytes)
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
