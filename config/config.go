package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Inventory InventoryConfig `yaml:"inventory"`
	Booking   BookingConfig   `yaml:"booking"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig selects the store backend: "redis", "postgres" or "memory".
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type InventoryConfig struct {
	Listings        int   `yaml:"listings"`
	RoomsPerListing int   `yaml:"rooms_per_listing"`
	MaxBedsPerRoom  int   `yaml:"max_beds_per_room"`
	Seed            int64 `yaml:"seed"`
}

type BookingConfig struct {
	MinimumAmount     float64 `yaml:"minimum_amount"`
	BedLockTTLSeconds int     `yaml:"bed_lock_ttl_seconds"`
}

type CatalogConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Inventory.Listings == 0 {
		c.Inventory.Listings = 100
	}
	if c.Inventory.RoomsPerListing == 0 {
		c.Inventory.RoomsPerListing = 30
	}
	if c.Inventory.MaxBedsPerRoom == 0 {
		c.Inventory.MaxBedsPerRoom = 4
	}
	if c.Booking.MinimumAmount == 0 {
		c.Booking.MinimumAmount = 1000
	}
	if c.Booking.BedLockTTLSeconds == 0 {
		c.Booking.BedLockTTLSeconds = 30
	}
	if c.Catalog.CacheTTLSeconds == 0 {
		c.Catalog.CacheTTLSeconds = 300
	}
}
