package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Notification channel names accepted in notify.channels.
const (
	ChannelFormSubmit = "formsubmit"
	ChannelBrevo      = "brevo"
	ChannelSES        = "ses"
	ChannelTelegram   = "telegram"
	ChannelNtfy       = "ntfy"
)

// DefaultChannelOrder is the fallback order used when none is configured:
// form relay first, then the transactional email APIs, then the push relays.
var DefaultChannelOrder = []string{
	ChannelFormSubmit,
	ChannelBrevo,
	ChannelSES,
	ChannelTelegram,
	ChannelNtfy,
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the server
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Contact  ContactConfig  `yaml:"contact"`
	Notify   NotifyConfig   `yaml:"notify"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host                   string   `yaml:"host" env:"SERVER_HOST"`
	Port                   int      `yaml:"port" env:"PORT"`
	GinMode                string   `yaml:"gin_mode" env:"GIN_MODE"`
	AllowedOrigins         []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	ReadTimeoutSeconds     int      `yaml:"read_timeout_seconds" env:"SERVER_READ_TIMEOUT_SECONDS"`
	WriteTimeoutSeconds    int      `yaml:"write_timeout_seconds" env:"SERVER_WRITE_TIMEOUT_SECONDS"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds" env:"SERVER_SHUTDOWN_TIMEOUT_SECONDS"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeout returns the configured read timeout as a duration
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown budget as a duration
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig selects and locates the content store.
type DatabaseConfig struct {
	Driver                string `yaml:"driver" env:"DATABASE_DRIVER"`
	URL                   string `yaml:"url" env:"DATABASE_URL"`
	SQLitePath            string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds" env:"DATABASE_CONNECT_TIMEOUT_SECONDS"`
}

// ConnectTimeout returns the startup connection budget as a duration
func (c DatabaseConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// RedisConfig is optional; when Addr is empty the seed lock falls back to the database.
type RedisConfig struct {
	Addr               string `yaml:"addr" env:"REDIS_ADDR"`
	Password           string `yaml:"password" env:"REDIS_PASSWORD"`
	DB                 int    `yaml:"db" env:"REDIS_DB"`
	SeedLockTTLSeconds int    `yaml:"seed_lock_ttl_seconds" env:"REDIS_SEED_LOCK_TTL_SECONDS"`
}

// SeedLockTTL returns the seed lock expiry as a duration
func (c RedisConfig) SeedLockTTL() time.Duration {
	return time.Duration(c.SeedLockTTLSeconds) * time.Second
}

// AuthConfig guards the message listing. An empty secret leaves it open.
type AuthConfig struct {
	AdminSecret string `yaml:"admin_secret" env:"ADMIN_TOKEN_SECRET"`
}

// ContactConfig tunes the contact form rules.
type ContactConfig struct {
	AllowedSubjects []string `yaml:"allowed_subjects" env:"CONTACT_ALLOWED_SUBJECTS"`
	MinNameLength   int      `yaml:"min_name_length" env:"CONTACT_MIN_NAME_LENGTH"`
}

// NotifyConfig lists the notification channels in the order they are tried.
type NotifyConfig struct {
	Channels       []string         `yaml:"channels" env:"NOTIFY_CHANNELS"`
	TimeoutSeconds int              `yaml:"timeout_seconds" env:"NOTIFY_TIMEOUT_SECONDS"`
	OwnerName      string           `yaml:"owner_name" env:"NOTIFY_OWNER_NAME"`
	OwnerEmail     string           `yaml:"owner_email" env:"NOTIFY_OWNER_EMAIL"`
	SiteName       string           `yaml:"site_name" env:"NOTIFY_SITE_NAME"`
	FormSubmit     FormSubmitConfig `yaml:"formsubmit"`
	Brevo          BrevoConfig      `yaml:"brevo"`
	SES            SESConfig        `yaml:"ses"`
	Telegram       TelegramConfig   `yaml:"telegram"`
	Ntfy           NtfyConfig       `yaml:"ntfy"`
}

// Timeout returns the per-channel attempt budget as a duration
func (c NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FormSubmitConfig holds the form relay endpoint, e.g. https://formsubmit.co/<address>
type FormSubmitConfig struct {
	Endpoint     string `yaml:"endpoint" env:"FORMSUBMIT_ENDPOINT"`
	AutoResponse string `yaml:"autoresponse" env:"FORMSUBMIT_AUTORESPONSE"`
}

// BrevoConfig holds Brevo transactional email API configuration
type BrevoConfig struct {
	APIKey      string `yaml:"api_key" env:"BREVO_API_KEY"`
	BaseURL     string `yaml:"base_url" env:"BREVO_BASE_URL"`
	SenderEmail string `yaml:"sender_email" env:"BREVO_SENDER_EMAIL"`
	SenderName  string `yaml:"sender_name" env:"BREVO_SENDER_NAME"`
}

// SESConfig holds AWS SES configuration. Without static keys the default
// credential chain is used.
type SESConfig struct {
	Enabled   bool   `yaml:"enabled" env:"AWS_SES_ENABLED"`
	Region    string `yaml:"region" env:"AWS_SES_REGION"`
	AccessKey string `yaml:"access_key" env:"AWS_SES_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"AWS_SES_SECRET_KEY"`
	FromEmail string `yaml:"from_email" env:"AWS_SES_FROM_EMAIL"`
}

// TelegramConfig holds Telegram bot API configuration
type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	BaseURL  string `yaml:"base_url" env:"TELEGRAM_BASE_URL"`
}

// NtfyConfig holds ntfy push relay configuration
type NtfyConfig struct {
	BaseURL  string `yaml:"base_url" env:"NTFY_BASE_URL"`
	Topic    string `yaml:"topic" env:"NTFY_TOPIC"`
	Token    string `yaml:"token" env:"NTFY_TOKEN"`
	Priority int    `yaml:"priority" env:"NTFY_PRIORITY"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads the YAML configuration file and applies defaults.
// A missing file is not an error: every setting has a default or an
// environment override.
func Load(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides and
// validates the result.
func LoadFromEnv(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg and fills defaults.
// It loads a .env file (if present) before reading env vars, so secrets
// can live in .env locally and in real env vars in production.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return nil
}

func readFile(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	// Long enough for a full fallback chain of slow channels.
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 60
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.ConnectTimeoutSeconds == 0 {
		cfg.Database.ConnectTimeoutSeconds = 10
	}

	if cfg.Redis.SeedLockTTLSeconds == 0 {
		cfg.Redis.SeedLockTTLSeconds = 30
	}

	if len(cfg.Notify.Channels) == 0 {
		cfg.Notify.Channels = append([]string(nil), DefaultChannelOrder...)
	}
	for i, name := range cfg.Notify.Channels {
		cfg.Notify.Channels[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if cfg.Notify.TimeoutSeconds == 0 {
		cfg.Notify.TimeoutSeconds = 8
	}
	if cfg.Notify.SiteName == "" {
		cfg.Notify.SiteName = "Portfolio"
	}
	if cfg.Notify.Brevo.BaseURL == "" {
		cfg.Notify.Brevo.BaseURL = "https://api.brevo.com"
	}
	if cfg.Notify.Brevo.SenderName == "" {
		cfg.Notify.Brevo.SenderName = cfg.Notify.SiteName
	}
	if cfg.Notify.SES.Region == "" {
		cfg.Notify.SES.Region = "us-east-1"
	}
	if cfg.Notify.Telegram.BaseURL == "" {
		cfg.Notify.Telegram.BaseURL = "https://api.telegram.org"
	}
	if cfg.Notify.Ntfy.BaseURL == "" {
		cfg.Notify.Ntfy.BaseURL = "https://ntfy.sh"
	}
	if cfg.Notify.Ntfy.Priority == 0 {
		cfg.Notify.Ntfy.Priority = 4
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
}

// Validate reports settings the server cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Database.Driver {
	case DriverPostgres:
		if cfg.Database.URL == "" {
			return errors.New("DATABASE_URL not set")
		}
	case DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			return errors.New("SQLITE_PATH not set")
		}
	default:
		return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	seen := make(map[string]bool, len(cfg.Notify.Channels))
	for _, name := range cfg.Notify.Channels {
		if !knownChannel(name) {
			return fmt.Errorf("unknown notification channel %q", name)
		}
		if seen[name] {
			return fmt.Errorf("notification channel %q listed twice", name)
		}
		seen[name] = true
	}

	if cfg.Notify.TimeoutSeconds < 0 {
		return errors.New("notify timeout must not be negative")
	}
	return nil
}

func knownChannel(name string) bool {
	for _, known := range DefaultChannelOrder {
		if name == known {
			return true
		}
	}
	return false
}
