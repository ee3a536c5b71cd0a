package devops

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration is resolved once at startup: defaults, then the optional
// yaml file named by EASATTEND_CONFIG (default config.yaml), then
// environment variables on top. A .env file is honoured when present.
type Configuration struct {
	Addr     string `yaml:"addr"`
	DSN      string `yaml:"dsn"`
	MaxConns int    `yaml:"max_conns"`

	// SigningSecret is base64 encoded.
	SigningSecret  string `yaml:"signing_secret"`
	TokenTTLSecs   int64  `yaml:"token_ttl_secs"`
	BcryptCost     int    `yaml:"bcrypt_cost"`
	SlackToken     string `yaml:"slack_token"`
	SlackInfoCh    string `yaml:"slack_info_channel"`
	SlackErrorCh   string `yaml:"slack_error_channel"`
	BootstrapEmail string `yaml:"bootstrap_email"`
	// AllowedOrigins is a comma-separated CORS origin list; empty allows all.
	AllowedOrigins string `yaml:"allowed_origins"`
}

var (
	once    sync.Once
	loaded  Configuration
	loadErr error
)

func Load() (Configuration, error) {
	once.Do(func() {
		_ = godotenv.Load()

		cfg := Configuration{
			Addr:         "0.0.0.0:8090",
			MaxConns:     10,
			TokenTTLSecs: 3600,
		}

		path := getEnv("EASATTEND_CONFIG", "config.yaml")
		if raw, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				loadErr = fmt.Errorf("unmarshal %s: %w", path, err)
				return
			}
		}

		cfg.Addr = getEnv("ADDR", cfg.Addr)
		cfg.DSN = getEnv("DSN", cfg.DSN)
		cfg.MaxConns = getEnvInt("MAX_CONNS", cfg.MaxConns)
		cfg.SigningSecret = getEnv("EASATTEND_SIGNING_SECRET", cfg.SigningSecret)
		cfg.TokenTTLSecs = int64(getEnvInt("TOKEN_TTL_SECS", int(cfg.TokenTTLSecs)))
		cfg.BcryptCost = getEnvInt("BCRYPT_COST", cfg.BcryptCost)
		cfg.SlackToken = getEnv("SLACK_BOT_TOKEN", cfg.SlackToken)
		cfg.SlackInfoCh = getEnv("SLACK_INFO_CHANNEL", cfg.SlackInfoCh)
		cfg.SlackErrorCh = getEnv("SLACK_ERROR_CHANNEL", cfg.SlackErrorCh)
		cfg.BootstrapEmail = getEnv("BOOTSTRAP_EMAIL", cfg.BootstrapEmail)
		cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", cfg.AllowedOrigins)

		if cfg.DSN == "" {
			loadErr = fmt.Errorf("missing DSN")
			return
		}
		if cfg.SigningSecret == "" {
			loadErr = fmt.Errorf("missing EASATTEND_SIGNING_SECRET")
			return
		}

		loaded = cfg
	})

	return loaded, loadErr
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
