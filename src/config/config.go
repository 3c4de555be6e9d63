package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"APP_ENV"`
	Origins string `mapstructure:"CORS_ORIGINS"`

	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`

	// Matching service, formerly hardcoded in the mobile client
	MatchServiceURL     string        `mapstructure:"MATCH_SERVICE_URL"`
	MatchServiceTimeout time.Duration `mapstructure:"MATCH_SERVICE_TIMEOUT"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	SpeechLocale string `mapstructure:"SPEECH_LOCALE"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"EMAIL_USER"`
	SMTPPassword string `mapstructure:"EMAIL_PASSWORD"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`

	// Photo bucket (S3 / MinIO)
	PhotoStoreEndpoint  string `mapstructure:"PHOTO_STORE_ENDPOINT"`
	PhotoStoreRegion    string `mapstructure:"PHOTO_STORE_REGION"`
	PhotoStoreAccessKey string `mapstructure:"PHOTO_STORE_ACCESS_KEY"`
	PhotoStoreSecretKey string `mapstructure:"PHOTO_STORE_SECRET_KEY"`
	PhotoStoreBucket    string `mapstructure:"PHOTO_STORE_BUCKET"`
	PhotoStoreUseSSL    bool   `mapstructure:"PHOTO_STORE_USE_SSL"`
}

var defaults = map[string]any{
	"PORT":                   "5000",
	"APP_ENV":                "development",
	"CORS_ORIGINS":           "*",
	"MONGODB_URI":            "mongodb://localhost:27017",
	"MONGODB_DATABASE":       "findit",
	"MATCH_SERVICE_URL":      "http://192.168.18.18:5000",
	"MATCH_SERVICE_TIMEOUT":  "10s",
	"JWT_SECRET":             "fallback-secret-key",
	"FRONTEND_URL":           "http://localhost:8081",
	"SPEECH_LOCALE":          "en-US",
	"SMTP_HOST":              "smtp.gmail.com",
	"SMTP_PORT":              587,
	"EMAIL_USER":             "",
	"EMAIL_PASSWORD":         "",
	"EMAIL_FROM":             "",
	"PHOTO_STORE_ENDPOINT":   "",
	"PHOTO_STORE_REGION":     "us-east-1",
	"PHOTO_STORE_ACCESS_KEY": "",
	"PHOTO_STORE_SECRET_KEY": "",
	"PHOTO_STORE_BUCKET":     "findit-photos",
	"PHOTO_STORE_USE_SSL":    false,
}

// Load reads configuration from an optional env file and the process environment.
// A missing file is not an error; the environment and defaults still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.MatchServiceURL = strings.TrimRight(strings.TrimSpace(cfg.MatchServiceURL), "/")
	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	return &cfg, nil
}

// PhotoStoreEnabled reports whether an object store was configured for item photos.
func (c *Config) PhotoStoreEnabled() bool {
	return strings.TrimSpace(c.PhotoStoreEndpoint) != ""
}
