package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL  string
	APIToken    string
	HTTPTimeout time.Duration
}

// Load reads .env (when present) and the process environment. Environment
// variables always win over the file.
func Load() Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config: no .env file, using environment only: %v", err)
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 15)

	return Config{
		AppEnv:      v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		APIBaseURL:  v.GetString("API_BASE_URL"),
		APIToken:    v.GetString("API_TOKEN"),
		HTTPTimeout: time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
	}
}
