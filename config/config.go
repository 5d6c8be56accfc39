package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	PostgresURL  string
	Env          string
	LogLevel     slog.Level
	MaxOpenConns int
	MaxIdleConns int
	MaxUploadMB  int64
	CORSOrigins  []string

	AuditMongoURL string
	AuditMongoDB  string

	R2 R2Config

	ChromePDFTimeout time.Duration
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

// Enabled reports whether enough is set to talk to the bucket.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          orDefault(getenv("PORT"), "5000"),
		PostgresURL:   getenv("POSTGRES_URL"),
		Env:           orDefault(getenv("APP_ENV"), "development"),
		AuditMongoURL: getenv("AUDIT_MONGO_URL"),
		AuditMongoDB:  orDefault(getenv("AUDIT_MONGO_DB"), "po_audit"),
		R2: R2Config{
			AccountID:       getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: getenv("R2_SECRET_ACCESS_KEY"),
			Bucket:          getenv("R2_BUCKET"),
			PublicURL:       getenv("R2_PUBLIC_URL"),
		},
	}

	if cfg.PostgresURL == "" {
		cfg.PostgresURL = buildPostgresURL(getenv)
	}
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL or DB_HOST/DB_NAME/DB_USER must be set")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(orDefault(getenv("LOG_LEVEL"), "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.MaxOpenConns, err = intEnv(getenv, "DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = intEnv(getenv, "DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}
	mb, err := intEnv(getenv, "MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadMB = int64(mb)

	cfg.ChromePDFTimeout = 30 * time.Second
	if v := getenv("CHROME_PDF_TIMEOUT"); v != "" {
		if cfg.ChromePDFTimeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("CHROME_PDF_TIMEOUT: %w", err)
		}
	}

	for _, o := range strings.Split(orDefault(getenv("CORS_ALLOWED_ORIGINS"), "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

func buildPostgresURL(getenv func(string) string) string {
	host, name, user := getenv("DB_HOST"), getenv("DB_NAME"), getenv("DB_USER")
	if host == "" || name == "" || user == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, getenv("DB_PASSWORD")),
		Host:     host + ":" + orDefault(getenv("DB_PORT"), "5432"),
		Path:     "/" + name,
		RawQuery: "sslmode=" + orDefault(getenv("DB_SSLMODE"), "disable"),
	}
	return u.String()
}

func intEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// NewLogger builds the process-wide JSON logger.
func NewLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("service", "poadmin", "env", cfg.Env)
}
