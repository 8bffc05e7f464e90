package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/shalu-233/nopcommerce/config"
	"github.com/shalu-233/nopcommerce/internal/events"
	"github.com/shalu-233/nopcommerce/internal/locale"
	"github.com/shalu-233/nopcommerce/internal/platform"
	"github.com/shalu-233/nopcommerce/internal/provider"
	"github.com/shalu-233/nopcommerce/internal/settings"
	pkgkafka "github.com/shalu-233/nopcommerce/pkg/kafka"
	pkgrabbit "github.com/shalu-233/nopcommerce/pkg/rabbitmq"
	"github.com/shalu-233/nopcommerce/service"
	"github.com/shalu-233/nopcommerce/store"
)

const defaultSalesChannel = "default"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Stores: postgres when configured, memory fallback otherwise.
	var (
		attributes store.AttributeStore
		shipments  store.ShipmentStore
		cfgStore   settings.Store
	)
	if cfg.HasDB() {
		pg, err := store.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pg.Close()
		attributes, shipments = pg, pg

		settingsPG, err := settings.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			log.Fatalf("failed to open settings store: %v", err)
		}
		defer settingsPG.Close()
		cfgStore = settingsPG
	} else {
		log.Println("no database configured, using in-memory stores")
		mem := store.NewMemoryStore()
		attributes, shipments = mem, mem

		memSettings := settings.NewMemoryStore()
		memSettings.SetFallback(cfg.DefaultSettings())
		cfgStore = memSettings
	}

	// Optional outbound confirmations topic.
	var producer pkgkafka.Publisher
	if cfg.KAFKA_BROKER != "" && cfg.KAFKA_OUT_TOPIC != "" {
		p := pkgkafka.NewProducer(cfg.KAFKA_BROKER, cfg.KAFKA_OUT_TOPIC)
		defer p.Close()
		producer = p
	}

	// The event consumer and its collaborators.
	bus := events.NewBus()
	sub := service.NewSubscriber(
		provider.NewStripeManager(),
		cfgStore,
		attributes,
		shipments,
		locale.NewCatalog("en-US"),
		producer,
	)
	sub.Register(bus)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Kafka bridge: platform entity events -> dispatcher.
	if cfg.KAFKA_BROKER != "" && cfg.KAFKA_TOPIC != "" {
		log.Printf("connecting to kafka at %s, topic %s", cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		consumer := pkgkafka.NewConsumer([]string{cfg.KAFKA_BROKER}, cfg.KAFKA_TOPIC, cfg.KAFKA_GROUP_ID)
		bridge := platform.NewBridge(bus)

		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Start(ctx, bridge.Handle)
		}()
		defer consumer.Close()
	}

	// Warnings relay: collect system warnings and push them to the ops queue.
	if cfg.RABBITMQ_HOST != "" {
		log.Printf("connecting to rabbitmq at %s", cfg.RABBITMQ_HOST)
		rabbitClient, err := pkgrabbit.NewClient(cfg.GetRabbitMQURL())
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer rabbitClient.Close()

		if err := rabbitClient.CreateQueue(cfg.WARNINGS_QUEUE); err != nil {
			log.Fatalf("failed to create warnings queue: %v", err)
		}

		relay := service.NewWarningsWorker(bus, rabbitClient, cfg.WARNINGS_QUEUE, defaultSalesChannel, 15*time.Minute)
		wg.Add(1)
		go relay.Run(ctx, &wg)
	}

	// Wait for a shutdown signal, then stop the workers and drain.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Println("shutdown signal received")

	cancel()
	wg.Wait()
	log.Println("plugin worker stopped")
}
