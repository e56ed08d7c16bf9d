package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store Config
	StoreDriver    string `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURL       string `env:"MONGO_URL"`
	DBName         string `env:"DB_NAME" envDefault:"community_map"`
	RunMigrations  bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Admin Config
	AdminAccount string   `env:"ADMIN_ACCOUNT" envDefault:"admin"`
	AdminPIN     string   `env:"ADMIN_PIN" envDefault:"123456"`
	AdminAPIKeys []string `env:"ADMIN_API_KEYS"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`

	// Geocoder Config
	GeocoderURL        string        `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent  string        `env:"GEOCODER_USER_AGENT" envDefault:"CommunityMapApp/1.0"`
	GeocoderTimeout    time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`
	GeocoderRatePerSec float64       `env:"GEOCODER_RATE_PER_SEC" envDefault:"1"`
	GeocodeCacheTTL    time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"10m"`

	// Webhook Config
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`

	// Retention Config
	SweepSchedule string `env:"SWEEP_SCHEDULE"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURL:           os.Getenv("MONGO_URL"),
		DBName:             getEnv("DB_NAME", "community_map"),
		RunMigrations:      getEnvAsBool("RUN_MIGRATIONS", true),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		AdminAccount:       getEnv("ADMIN_ACCOUNT", "admin"),
		AdminPIN:           getEnv("ADMIN_PIN", "123456"),
		AdminAPIKeys:       getEnvAsList("ADMIN_API_KEYS"),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS"),
		GeocoderURL:        getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent:  getEnv("GEOCODER_USER_AGENT", "CommunityMapApp/1.0"),
		GeocoderTimeout:    getEnvAsDuration("GEOCODER_TIMEOUT", 10*time.Second),
		GeocoderRatePerSec: getEnvAsFloat("GEOCODER_RATE_PER_SEC", 1),
		GeocodeCacheTTL:    getEnvAsDuration("GEOCODE_CACHE_TTL", 10*time.Minute),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		SweepSchedule:      os.Getenv("SWEEP_SCHEDULE"),
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL environment variable is required")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
