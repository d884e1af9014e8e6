package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sandeepnani0902/customer-hostel-booking/config"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/bootstrap"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/inventory"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/kafka"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/repository"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/booking"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/catalog"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kvStore, cleanup, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	defer cleanup()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	inventoryRepo := repository.NewInventoryRepository(kvStore)
	ledgerRepo := repository.NewLedgerRepository(kvStore)
	listingRepo := repository.NewListingRepository(kvStore)
	generator := inventory.NewGenerator(cfg.Inventory.Listings, cfg.Inventory.RoomsPerListing, cfg.Inventory.MaxBedsPerRoom)

	opts := []booking.BookingServiceOption{
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithSeed(cfg.Inventory.Seed),
	}
	if redisStore, ok := kvStore.(*store.RedisStore); ok {
		opts = append(opts, booking.WithLocker(redisStore, time.Duration(cfg.Booking.BedLockTTLSeconds)*time.Second))
	}

	bookingService := booking.NewBookingService(
		inventoryRepo,
		ledgerRepo,
		generator,
		producer,
		cfg.Kafka.BookingEventsTopic,
		cfg.Booking.MinimumAmount,
		opts...,
	)
	catalogService := catalog.NewCatalogService(listingRepo, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)

	if err := bootstrap.Run(ctx, cfg, catalogService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
