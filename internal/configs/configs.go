package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"shipments"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"shipment-events"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"notifier"`
	KafkaDLQ     string `env:"KAFKA_DLQ_TOPIC" envDefault:"shipment-events-dlq"`

	SMTPHost      string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string `env:"SMTP_USER" envDefault:""`
	SMTPPass      string `env:"SMTP_PASSWORD" envDefault:""`
	SMTPFromName  string `env:"SMTP_FROM_NAME" envDefault:"ShipTrack"`
	SMTPFromEmail string `env:"SMTP_FROM_EMAIL" envDefault:"noreply@shiptrack.local"`

	GeocodeBaseURL string        `env:"GEOCODE_BASE_URL" envDefault:"https://restcountries.com/v3.1/alpha"`
	GeocodeTimeout time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"3s"`
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"24h"`

	// Static tokens standing in for the external identity provider.
	// Format of each entry: token:userID:email:role
	AuthTokens string `env:"AUTH_TOKENS" envDefault:""`

	AdminEmail string `env:"ADMIN_EMAIL" envDefault:""`

	WorldRefreshCron string `env:"WORLD_REFRESH_CRON" envDefault:"@every 15m"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

// AuthTokenEntry is one parsed AUTH_TOKENS element.
type AuthTokenEntry struct {
	Token  string
	UserID string
	Email  string
	Role   string
}

func (c Config) AuthTokenEntries() []AuthTokenEntry {
	if c.AuthTokens == "" {
		return nil
	}
	var out []AuthTokenEntry
	for _, raw := range strings.Split(c.AuthTokens, ",") {
		fields := strings.Split(strings.TrimSpace(raw), ":")
		if len(fields) != 4 || fields[0] == "" {
			continue
		}
		out = append(out, AuthTokenEntry{
			Token:  fields[0],
			UserID: fields[1],
			Email:  fields[2],
			Role:   fields[3],
		})
	}
	return out
}
