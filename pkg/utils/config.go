package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Booking  BookingConfig
	Session  SessionConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// APIConfig describes the remote admin API the front-end talks to.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables the limiter
	RateBurst int
}

type BookingConfig struct {
	// MinDisplay is the floor on how long the confirmation dialog stays pending.
	MinDisplay time.Duration
}

type SessionConfig struct {
	Driver string // bolt, sqlite or postgres
	Path   string
	Secret string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads an env-style file and overlays the process environment.
// A missing file is not an error.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "room-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("API_BASE_URL", "https://rawdhat.com/api")
	v.SetDefault("API_TIMEOUT_SECONDS", 30)
	v.SetDefault("API_RATE_LIMIT", 0)
	v.SetDefault("API_RATE_BURST", 1)
	v.SetDefault("CONFIRM_MIN_DISPLAY_MS", 2000)
	v.SetDefault("SESSION_DRIVER", "bolt")
	v.SetDefault("SESSION_PATH", "data/session.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 4)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:   v.GetString("API_BASE_URL"),
			Timeout:   time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			RateLimit: v.GetFloat64("API_RATE_LIMIT"),
			RateBurst: v.GetInt("API_RATE_BURST"),
		},
		Booking: BookingConfig{
			MinDisplay: time.Duration(v.GetInt("CONFIRM_MIN_DISPLAY_MS")) * time.Millisecond,
		},
		Session: SessionConfig{
			Driver: v.GetString("SESSION_DRIVER"),
			Path:   v.GetString("SESSION_PATH"),
			Secret: v.GetString("SESSION_SECRET"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
	}

	return config, nil
}
