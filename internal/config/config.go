package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultReminderHour     = 17 // 5PM
	defaultReminderTimezone = "US/Pacific"
	defaultReminderChance   = 0.1
	defaultCommandPrefix    = "!"
)

// Config holds the bot's environment-derived settings. It is constructed
// once at startup and treated as read-only afterwards.
type Config struct {
	// Env is "dev" or "prod"; dev swaps in the DEV_* credentials
	Env string

	// Token is the Discord bot token
	Token string

	// ApplicationID is the Discord application ID for command registration
	ApplicationID string

	// GuildID optionally scopes command registration to one guild
	GuildID string

	// SupabaseURL is the base URL of the book club backend
	SupabaseURL string

	// SupabaseKey authenticates against the book club backend
	SupabaseKey string

	// OpenAIKey authenticates against the AI provider
	OpenAIKey string

	// WeatherKey authenticates against the weather provider
	WeatherKey string

	// DefaultChannelID is where scheduled and welcome messages go
	DefaultChannelID string

	// ReminderHour is the local hour the daily reminder may fire
	ReminderHour int

	// ReminderTimezone is the IANA timezone for the reminder check
	ReminderTimezone string

	// ReminderChance is the probability the reminder fires on its hour
	ReminderChance float64

	// CommandPrefix is the prefix for legacy text commands
	CommandPrefix string
}

// Load reads the configuration from the environment, consulting a .env
// file when present.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments use the environment
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("ENV", "prod"),
		ApplicationID:    os.Getenv("APPLICATION_ID"),
		GuildID:          os.Getenv("GUILD_ID"),
		OpenAIKey:        os.Getenv("KEY_OPEN_AI"),
		WeatherKey:       os.Getenv("KEY_WEATHER"),
		DefaultChannelID: os.Getenv("DEFAULT_CHANNEL"),
		ReminderTimezone: getEnv("REMINDER_TIMEZONE", defaultReminderTimezone),
		CommandPrefix:    getEnv("COMMAND_PREFIX", defaultCommandPrefix),
	}

	if cfg.Env == "dev" {
		logrus.Debug("~~~~~~~~~~~~ Running in development mode ~~~~~~~~~~~~")
		cfg.Token = os.Getenv("DEV_TOKEN")
		cfg.SupabaseURL = os.Getenv("DEV_SUPABASE_URL")
		cfg.SupabaseKey = os.Getenv("DEV_SUPABASE_KEY")
	} else {
		cfg.Token = os.Getenv("TOKEN")
		cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
		cfg.SupabaseKey = os.Getenv("SUPABASE_KEY")
	}

	var err error
	cfg.ReminderHour, err = getEnvInt("REMINDER_HOUR", defaultReminderHour)
	if err != nil {
		return nil, err
	}

	cfg.ReminderChance, err = getEnvFloat("REMINDER_CHANCE", defaultReminderChance)
	if err != nil {
		return nil, err
	}

	if cfg.Token == "" {
		if cfg.Env == "dev" {
			return nil, errors.New("DEV_TOKEN environment variable is not set")
		}
		return nil, errors.New("TOKEN environment variable is not set")
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, errors.New("backend URL and key environment variables are not set")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
