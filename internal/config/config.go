package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	DBDSN       string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	RedisOn     bool
	JWTSecret   string
	SwaggerHost string
	LogLevel    string
	LogPretty   bool
	ResetDB     bool
	SeedSample  bool
}

// Load builds Config from an optional .env file and the environment,
// with sensible defaults.
func Load() *Config {
	// A missing .env is fine; explicit environment always wins.
	if path := envFile(); path != "" {
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "faculty_appraisal.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("SWAGGER_HOST", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", true)
	v.SetDefault("RESET_DB", false)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.AutomaticEnv()

	return &Config{
		ServerPort:  v.GetString("SERVER_PORT"),
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:       v.GetString("DB_DSN"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RedisDB:     v.GetInt("REDIS_DB"),
		RedisPass:   v.GetString("REDIS_PASSWORD"),
		RedisOn:     v.GetBool("REDIS_ENABLED"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		SwaggerHost: v.GetString("SWAGGER_HOST"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogPretty:   v.GetBool("LOG_PRETTY"),
		ResetDB:     v.GetBool("RESET_DB"),
		SeedSample:  v.GetBool("SEED_SAMPLE_DATA"),
	}
}

func envFile() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	return ""
}
