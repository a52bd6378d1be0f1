package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// Exactly one of AdminPassword / AdminPasswordHash must be set. When the
	// hash is present it takes precedence and the plain password is ignored.
	AdminPassword     string
	AdminPasswordHash string

	// Object storage. When StorageURL is empty, photos are written to
	// UploadsDir and served from /uploads instead.
	StorageURL        string
	StorageServiceKey string
	StorageBucket     string
	UploadsDir        string

	// SMTP notification settings. Mail is disabled when SMTPHost is empty.
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	ContactNotifyTo string

	SwaggerHost string
}

// Load builds Config from environment. A .env file in the working directory is
// read first if present. Missing required values abort with a descriptive error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          os.Getenv("MYSQL_DSN"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		StorageURL:        os.Getenv("STORAGE_URL"),
		StorageServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "team-photos"),
		UploadsDir:        getEnv("UPLOADS_DIR", "./uploads"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		ContactNotifyTo:   os.Getenv("CONTACT_NOTIFY_TO"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}

	if cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if cfg.StorageURL != "" && cfg.StorageServiceKey == "" {
		return nil, fmt.Errorf("STORAGE_SERVICE_KEY is required when STORAGE_URL is set")
	}

	return cfg, nil
}

// UseObjectStorage reports whether photos go to the remote bucket rather than
// the local uploads directory.
func (c *Config) UseObjectStorage() bool {
	return c.StorageURL != ""
}

// MailEnabled reports whether contact notifications are configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.ContactNotifyTo != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
