package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"freight/internal/pkg/errs"
)

const (
	defaultHTTPPort        = "8082"
	defaultDBSslMode       = "disable"
	defaultEventsTopic     = "freight.events"
	defaultOutboxBatchSize = 100
	defaultTokenTTL        = 24 * time.Hour
	minJWTSecretLength     = 32
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	KafkaHost        string
	KafkaEventsTopic string
	JWTSecret        string
	TokenTTL         time.Duration
	LogLevel         slog.Level
	OutboxBatchSize  int
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// godotenv has filled the environment. Every missing or malformed variable
// is reported at once.
func LoadConfig(getenv func(string) string) (Config, error) {
	var errList []error
	required := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			errList = append(errList, errs.NewValueIsRequiredError(key))
		}
		return v
	}
	optional := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	c := Config{
		HTTPPort:         optional("HTTP_PORT", defaultHTTPPort),
		DBHost:           required("DB_HOST"),
		DBPort:           required("DB_PORT"),
		DBUser:           required("DB_USER"),
		DBPassword:       getenv("DB_PASSWORD"),
		DBName:           required("DB_NAME"),
		DBSslMode:        optional("DB_SSLMODE", defaultDBSslMode),
		KafkaHost:        required("KAFKA_HOST"),
		KafkaEventsTopic: optional("KAFKA_EVENTS_TOPIC", defaultEventsTopic),
		JWTSecret:        required("JWT_SECRET"),
		TokenTTL:         defaultTokenTTL,
		OutboxBatchSize:  defaultOutboxBatchSize,
	}

	if c.JWTSecret != "" && len(c.JWTSecret) < minJWTSecretLength {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"JWT_SECRET", fmt.Errorf("must be at least %d bytes", minJWTSecretLength)))
	}
	if raw := getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"OUTBOX_BATCH_SIZE", fmt.Errorf("%q is not a positive integer", raw)))
		}
		c.OutboxBatchSize = size
	}
	if raw := getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"TOKEN_TTL", fmt.Errorf("%q is not a positive duration", raw)))
		}
		c.TokenTTL = ttl
	}
	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := c.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
