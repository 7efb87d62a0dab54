package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	"entregas/internal/adapters/out/postgres"
)

const (
	SignatureStorageFS = "fs"
	SignatureStorageS3 = "s3"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret    string
	JWTExpiresIn time.Duration

	TangoConnectURL          string
	TangoConnectClientID     string
	TangoConnectClientSecret string
	TangoWebhookCallbackURL  string
	TangoWebhookSecret       string
	SyncInterval             time.Duration

	SignatureStorage string
	UploadDir        string
	S3Endpoint       string
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
}

// LoadConfig reads the configuration from the environment, after loading .env when
// one exists in the working directory.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	jwtExpiresIn, jwtErr := durationVariable("JWT_EXPIRES_IN", 24*time.Hour)
	syncInterval, syncErr := durationVariable("SYNC_INTERVAL", 15*time.Minute)

	cfg := Config{
		HTTPPort: envVariable("HTTP_PORT", "8080"),

		DBHost:     envVariable("DB_HOST", "localhost"),
		DBPort:     envVariable("DB_PORT", "5432"),
		DBUser:     envVariable("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envVariable("DB_NAME", "entregas"),
		DBSslMode:  envVariable("DB_SSLMODE", "disable"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: jwtExpiresIn,

		TangoConnectURL:          os.Getenv("TANGO_CONNECT_URL"),
		TangoConnectClientID:     os.Getenv("TANGO_CONNECT_CLIENT_ID"),
		TangoConnectClientSecret: os.Getenv("TANGO_CONNECT_CLIENT_SECRET"),
		TangoWebhookCallbackURL:  os.Getenv("TANGO_WEBHOOK_CALLBACK_URL"),
		TangoWebhookSecret:       os.Getenv("TANGO_WEBHOOK_SECRET"),
		SyncInterval:             syncInterval,

		SignatureStorage: envVariable("SIGNATURE_STORAGE", SignatureStorageFS),
		UploadDir:        envVariable("UPLOAD_DIR", "uploads/firmas"),
		S3Endpoint:       os.Getenv("S3_ENDPOINT"),
		S3Region:         os.Getenv("S3_REGION"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3AccessKey:      os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:      os.Getenv("S3_SECRET_KEY"),
	}

	return cfg, errors.Join(jwtErr, syncErr, cfg.Validate())
}

// Validate reports settings the service cannot start without.
func (c Config) Validate() error {
	var secretErr, webhookErr, storageErr error
	if c.JWTSecret == "" {
		secretErr = errors.New("JWT_SECRET is required")
	}
	if c.TangoWebhookCallbackURL != "" {
		if c.TangoWebhookSecret == "" {
			webhookErr = errors.New("TANGO_WEBHOOK_SECRET is required when TANGO_WEBHOOK_CALLBACK_URL is set")
		} else if _, err := url.Parse(c.TangoWebhookCallbackURL); err != nil {
			webhookErr = fmt.Errorf("TANGO_WEBHOOK_CALLBACK_URL: %w", err)
		}
	}
	switch c.SignatureStorage {
	case SignatureStorageFS, SignatureStorageS3:
	default:
		storageErr = fmt.Errorf("SIGNATURE_STORAGE must be %q or %q, got %q",
			SignatureStorageFS, SignatureStorageS3, c.SignatureStorage)
	}
	return errors.Join(secretErr, webhookErr, storageErr)
}

// WebhookCallbackURL is the URL registered upstream for invoice notifications. It
// carries the webhook secret because the subscription only accepts a URL.
func (c Config) WebhookCallbackURL() string {
	if c.TangoWebhookCallbackURL == "" {
		return ""
	}
	u, err := url.Parse(c.TangoWebhookCallbackURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("secret", c.TangoWebhookSecret)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fallback, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}
