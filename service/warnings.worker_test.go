package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shalu-233/nopcommerce/internal/events"
	"github.com/shalu-233/nopcommerce/internal/settings"
	"github.com/shalu-233/nopcommerce/store"
)

type fakeQueue struct {
	published [][]byte
}

func (f *fakeQueue) Publish(ctx context.Context, queueName string, body []byte) error {
	f.published = append(f.published, body)
	return nil
}

func TestWarningsWorker_PublishesCollectedWarnings(t *testing.T) {
	bus := events.NewBus()
	pm := &MockServiceManager{Connected: true}
	sub := newTestSubscriber(pm, settings.Settings{MerchantIDRequired: true, ManualCredentials: true}, store.NewMemoryStore())
	sub.Register(bus)

	q := &fakeQueue{}
	w := NewWarningsWorker(bus, q, "ops_warnings", "sc1", time.Minute)

	if err := w.collectOnce(context.Background()); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(q.published) != 1 {
		t.Fatalf("expected 1 report, got %d", len(q.published))
	}

	var report warningReport
	if err := json.Unmarshal(q.published[0], &report); err != nil {
		t.Fatalf("bad report JSON: %v", err)
	}
	if len(report.Warnings) != 1 || report.SalesChannelID != "sc1" {
		t.Fatalf("wrong report: %+v", report)
	}
	if report.ID == "" {
		t.Error("report is missing an id")
	}
}

func TestWarningsWorker_NoWarningsNoPublish(t *testing.T) {
	bus := events.NewBus()
	pm := &MockServiceManager{Connected: true}
	sub := newTestSubscriber(pm, settings.Settings{MerchantIDRequired: false}, store.NewMemoryStore())
	sub.Register(bus)

	q := &fakeQueue{}
	w := NewWarningsWorker(bus, q, "ops_warnings", "sc1", time.Minute)

	if err := w.collectOnce(context.Background()); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(q.published) != 0 {
		t.Fatalf("expected no report, got %d", len(q.published))
	}
}
