package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken  string
	CommandPrefix string

	// Verification web server
	Host               string // public base URL verification links point at
	Port               int
	RecaptchaSiteKey   string
	RecaptchaSecretKey string

	// Moderation settings
	AutoBanThreshold int // minimum score for a ban on join
	BanPurgeDays     int // days of message history purged with a ban

	// Storage
	DataDir string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the environment, reading a .env file first
// when one is present.
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		CommandPrefix: os.Getenv("COMMAND_PREFIX"),

		Host:               os.Getenv("HOST"),
		Port:               3000,
		RecaptchaSiteKey:   os.Getenv("RECAPTCHA_SITE_KEY"),
		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),

		AutoBanThreshold: 3,
		BanPurgeDays:     2,

		DataDir: os.Getenv("DATA_DIR"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.CommandPrefix == "" {
		config.CommandPrefix = "!ss"
	}
	if config.DataDir == "" {
		config.DataDir = "./data"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if port := os.Getenv("PORT"); port != "" {
		if parsedPort, err := strconv.Atoi(port); err == nil {
			config.Port = parsedPort
		}
	}
	if threshold := os.Getenv("AUTO_BAN_THRESHOLD"); threshold != "" {
		if parsedThreshold, err := strconv.Atoi(threshold); err == nil {
			config.AutoBanThreshold = parsedThreshold
		}
	}
	if purgeDays := os.Getenv("BAN_PURGE_DAYS"); purgeDays != "" {
		if parsedDays, err := strconv.Atoi(purgeDays); err == nil {
			config.BanPurgeDays = parsedDays
		}
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.Host == "" {
			return nil, fmt.Errorf("HOST is required")
		}
		if config.RecaptchaSiteKey == "" || config.RecaptchaSecretKey == "" {
			return nil, fmt.Errorf("RECAPTCHA_SITE_KEY and RECAPTCHA_SECRET_KEY are required")
		}
	}

	return config, nil
}
