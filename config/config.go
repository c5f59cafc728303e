package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-quickadd/internal/model"
	"task-quickadd/pkg/prefix"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageMemos  = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Quick-add
	QuickAdd QuickAddConfig
	Storage  StorageConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	MaxClients        int
	ClientTTL         time.Duration
}

type QuickAddConfig struct {
	Timezone           string
	PrefixMode         prefix.Mode
	DefaultHour        int // 0 keeps the nearest-hour policy for relative dates
	NativeSegmentation bool
	EventDuration      time.Duration
}

type StorageConfig struct {
	Driver string
	Memos  MemosConfig
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // Base for user-facing links, e.g. http://localhost:5230
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	AllowedIPs    []string
	NgrokAPI      string // Local ngrok API used to discover the webhook URL
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = model.Environment(v.GetString("environment.name"))
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = v.GetDuration("rate_limit.client_ttl")

	// Quick-add
	mode, err := prefix.ParseMode(v.GetString("quick_add.prefix_mode"))
	if err != nil {
		return nil, fmt.Errorf("quick_add.prefix_mode: %w", err)
	}
	cfg.QuickAdd.PrefixMode = mode
	cfg.QuickAdd.Timezone = v.GetString("quick_add.timezone")
	cfg.QuickAdd.DefaultHour = v.GetInt("quick_add.default_hour")
	cfg.QuickAdd.NativeSegmentation = v.GetBool("quick_add.native_segmentation")
	cfg.QuickAdd.EventDuration = v.GetDuration("quick_add.event_duration")
	if h := cfg.QuickAdd.DefaultHour; h < 0 || h > 23 {
		return nil, fmt.Errorf("quick_add.default_hour must be between 0 and 23, got %d", h)
	}

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Memos.URL = v.GetString("storage.memos.url")
	cfg.Storage.Memos.AccessToken = v.GetString("storage.memos.access_token")
	cfg.Storage.Memos.ExternalURL = v.GetString("storage.memos.external_url")
	if memosToken := v.GetString("memos_access_token"); memosToken != "" {
		cfg.Storage.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Storage.Memos.ExternalURL == "" {
		cfg.Storage.Memos.ExternalURL = cfg.Storage.Memos.URL
	}
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StorageMemos:
		if cfg.Storage.Memos.URL == "" {
			return nil, errors.New("storage.memos.url is required for the memos driver")
		}
	default:
		return nil, fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.AllowedIPs = splitList(v.GetString("telegram.allowed_ips"))

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.requests_per_minute", 60)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("rate_limit.client_ttl", "5m")

	v.SetDefault("quick_add.timezone", "UTC")
	v.SetDefault("quick_add.prefix_mode", string(prefix.ModeVikunja))
	v.SetDefault("quick_add.native_segmentation", true)
	v.SetDefault("quick_add.event_duration", "1h")

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// splitList reads a comma separated value; viper does not split lists that
// come from the environment.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
