package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shalu-233/nopcommerce/internal/settings"
)

// Config holds the worker's infrastructure and plugin configuration, read
// from environment variables.
type Config struct {
	// Database (PostgreSQL)
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_HOST     string
	DB_PORT     string

	// Kafka
	KAFKA_BROKER    string
	KAFKA_TOPIC     string // inbound platform events
	KAFKA_OUT_TOPIC string // outbound plugin confirmations, optional
	KAFKA_GROUP_ID  string

	// RabbitMQ
	RABBITMQ_USER     string
	RABBITMQ_PASSWORD string
	RABBITMQ_HOST     string
	RABBITMQ_PORT     string
	WARNINGS_QUEUE    string

	// Provider credentials and plugin flags, used as the settings fallback
	// when no per-channel row exists.
	STRIPE_SECRET_KEY    string
	MERCHANT_ID          string
	ONBOARDING_COMPLETED bool
	MANUAL_CREDENTIALS   bool
	PAYMENT_METHOD_ON    bool
	VAULT_ENABLED        bool
	TRACKING_ENABLED     bool
	MERCHANT_ID_REQUIRED bool
}

// LoadConfig reads the worker configuration. The provider secret key is
// mandatory when the payment method is enabled.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),

		KAFKA_BROKER:    os.Getenv("KAFKA_BROKER"),
		KAFKA_TOPIC:     os.Getenv("KAFKA_TOPIC"),
		KAFKA_OUT_TOPIC: os.Getenv("KAFKA_OUT_TOPIC"),
		KAFKA_GROUP_ID:  envOr("KAFKA_GROUP_ID", "paygate-plugin"),

		RABBITMQ_USER:     os.Getenv("RABBITMQ_USER"),
		RABBITMQ_PASSWORD: os.Getenv("RABBITMQ_PASSWORD"),
		RABBITMQ_HOST:     os.Getenv("RABBITMQ_HOST"),
		RABBITMQ_PORT:     os.Getenv("RABBITMQ_PORT"),
		WARNINGS_QUEUE:    envOr("WARNINGS_QUEUE", "ops_warnings"),

		STRIPE_SECRET_KEY:    os.Getenv("STRIPE_SECRET_KEY"),
		MERCHANT_ID:          os.Getenv("MERCHANT_ID"),
		ONBOARDING_COMPLETED: envBool("ONBOARDING_COMPLETED"),
		MANUAL_CREDENTIALS:   envBool("MANUAL_CREDENTIALS"),
		PAYMENT_METHOD_ON:    envBool("PAYMENT_METHOD_ON"),
		VAULT_ENABLED:        envBool("VAULT_ENABLED"),
		TRACKING_ENABLED:     envBool("TRACKING_ENABLED"),
		MERCHANT_ID_REQUIRED: envBool("MERCHANT_ID_REQUIRED"),
	}

	if cfg.PAYMENT_METHOD_ON && cfg.STRIPE_SECRET_KEY == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required when the payment method is enabled")
	}
	return cfg, nil
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME)
}

// HasDB reports whether a database was configured at all.
func (c *Config) HasDB() bool {
	return c.DB_HOST != "" && c.DB_NAME != ""
}

// GetRabbitMQURL formats the config into a RabbitMQ connection string,
// defaulting the standard host and port when missing.
func (c *Config) GetRabbitMQURL() string {
	host := c.RABBITMQ_HOST
	if host == "" {
		host = "localhost"
	}
	port := c.RABBITMQ_PORT
	if port == "" {
		port = "5672"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RABBITMQ_USER, c.RABBITMQ_PASSWORD, host, port)
}

// DefaultSettings builds the fallback channel settings from the environment.
func (c *Config) DefaultSettings() settings.Settings {
	return settings.Settings{
		SecretKey:           c.STRIPE_SECRET_KEY,
		MerchantID:          c.MERCHANT_ID,
		OnboardingCompleted: c.ONBOARDING_COMPLETED,
		ManualCredentials:   c.MANUAL_CREDENTIALS,
		PaymentMethodActive: c.PAYMENT_METHOD_ON,
		VaultEnabled:        c.VAULT_ENABLED,
		TrackingEnabled:     c.TRACKING_ENABLED,
		MerchantIDRequired:  c.MERCHANT_ID_REQUIRED,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
