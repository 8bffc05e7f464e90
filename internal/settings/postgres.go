package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore reads plugin settings from the platform database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to the platform database and verifies it.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres db: %v", err)
	}
	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// GetSettings loads the settings row for one sales channel.
func (s *PostgresStore) GetSettings(ctx context.Context, salesChannelID string) (Settings, error) {
	query := `
        SELECT sales_channel_id, secret_key, merchant_id, onboarding_completed,
               manual_credentials, payment_method_active, vault_enabled,
               tracking_enabled, merchant_id_required
        FROM plugin_settings
        WHERE sales_channel_id = $1`

	var cfg Settings
	err := s.db.QueryRowContext(ctx, query, salesChannelID).Scan(
		&cfg.SalesChannelID,
		&cfg.SecretKey,
		&cfg.MerchantID,
		&cfg.OnboardingCompleted,
		&cfg.ManualCredentials,
		&cfg.PaymentMethodActive,
		&cfg.VaultEnabled,
		&cfg.TrackingEnabled,
		&cfg.MerchantIDRequired,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, ErrSettingsNotFound
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load plugin settings: %v", err)
	}
	return cfg, nil
}
