package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shalu-233/nopcommerce/internal/events"
)

// QueuePublisher is the slice of the rabbitmq client the worker needs.
type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// warningReport is the message shape pushed to the ops queue.
type warningReport struct {
	ID             string           `json:"id"`
	SalesChannelID string           `json:"sales_channel_id"`
	CollectedAt    time.Time        `json:"collected_at"`
	Warnings       []events.Warning `json:"warnings"`
}

// WarningsWorker periodically raises the system-warnings event and relays
// any collected warnings to a RabbitMQ ops queue.
type WarningsWorker struct {
	bus            *events.Bus
	queue          QueuePublisher
	queueName      string
	salesChannelID string
	interval       time.Duration
}

// NewWarningsWorker wires the relay for one sales channel.
func NewWarningsWorker(bus *events.Bus, queue QueuePublisher, queueName, salesChannelID string, interval time.Duration) *WarningsWorker {
	return &WarningsWorker{
		bus:            bus,
		queue:          queue,
		queueName:      queueName,
		salesChannelID: salesChannelID,
		interval:       interval,
	}
}

// Run loops until ctx is cancelled. Each tick collects warnings through the
// dispatcher and publishes a report when any handler appended one.
func (w *WarningsWorker) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	log.Printf("warnings relay started (queue %s, every %s)", w.queueName, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("warnings relay stopping")
			return
		case <-ticker.C:
			if err := w.collectOnce(ctx); err != nil {
				log.Printf("warnings relay: %v", err)
			}
		}
	}
}

func (w *WarningsWorker) collectOnce(ctx context.Context) error {
	var warnings []events.Warning
	if err := w.bus.Emit(ctx, events.SystemWarningsCollect{
		SalesChannelID: w.salesChannelID,
		Warnings:       &warnings,
	}); err != nil {
		return err
	}
	if len(warnings) == 0 {
		return nil
	}

	report := warningReport{
		ID:             uuid.NewString(),
		SalesChannelID: w.salesChannelID,
		CollectedAt:    time.Now().UTC(),
		Warnings:       warnings,
	}
	body, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return w.queue.Publish(ctx, w.queueName, body)
}
