package kafka

import (
	"context"
	"log"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Handler processes one fetched message. Returning an error leaves the
// offset uncommitted so the message is redelivered.
type Handler func(ctx context.Context, key []byte, value []byte) error

// Consumer runs a fetch/handle/commit loop against one topic.
type Consumer struct {
	reader        *skafka.Reader
	handleTimeout time.Duration
	retryBackoff  time.Duration
}

// NewConsumer creates a consumer in the given consumer group. The group id
// lets multiple worker replicas split partitions instead of reprocessing the
// same messages.
func NewConsumer(brokers []string, topic string, groupID string) *Consumer {
	return &Consumer{
		reader: skafka.NewReader(skafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		}),
		handleTimeout: 10 * time.Second,
		retryBackoff:  time.Second,
	}
}

// Start blocks, fetching messages and invoking the handler until ctx is
// cancelled. A handler error skips the commit, so the message comes back.
func (c *Consumer) Start(ctx context.Context, handler Handler) {
	log.Printf("kafka consumer started. topic: %s, group: %s", c.reader.Config().Topic, c.reader.Config().GroupID)

	for {
		if ctx.Err() != nil {
			return
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("error fetching message: %v", err)
			time.Sleep(c.retryBackoff)
			continue
		}

		processCtx, cancel := context.WithTimeout(ctx, c.handleTimeout)
		err = handler(processCtx, m.Key, m.Value)
		cancel()

		if err != nil {
			// No commit: kafka redelivers this message shortly.
			log.Printf("processing failed (offset %d): %v", m.Offset, err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("failed to commit offset: %v", err)
		}
	}
}

// Close disconnects from the brokers.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
