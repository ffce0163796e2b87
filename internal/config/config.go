package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int           `yaml:"port"`
	Transport       string        `yaml:"transport"`
	MaxPrincipal    int64         `yaml:"max_principal"`
	MaxMonths       int           `yaml:"max_months"`
	MaxRate         float64       `yaml:"max_rate"`
	MaxTiers        int           `yaml:"max_tiers"`
	OTELEndpoint    string        `yaml:"otel_endpoint"`
	OTELServiceName string        `yaml:"otel_service_name"`
	LogLevel        string        `yaml:"log_level"`
	CacheBackend    string        `yaml:"cache_backend"`
	RedisAddr       string        `yaml:"redis_addr"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Port:            8000,
		Transport:       TransportStdio,
		MaxPrincipal:    1e13,
		MaxMonths:       600,
		MaxRate:         1.0,
		MaxTiers:        12,
		OTELServiceName: "mcp-kpr-server",
		LogLevel:        "INFO",
		CacheBackend:    "none",
		RedisAddr:       "localhost:6379",
		CacheTTL:        time.Hour,
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем YAML-файл
// из CONFIG_FILE (если задан), затем переменные окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.Transport = getEnvString("TRANSPORT", cfg.Transport)
	cfg.MaxPrincipal = getEnvInt64("MAX_PRINCIPAL", cfg.MaxPrincipal)
	cfg.MaxMonths = getEnvInt("MAX_MONTHS", cfg.MaxMonths)
	cfg.MaxRate = getEnvFloat("MAX_RATE", cfg.MaxRate)
	cfg.MaxTiers = getEnvInt("MAX_TIERS", cfg.MaxTiers)
	cfg.OTELEndpoint = getEnvString("OTEL_ENDPOINT", cfg.OTELEndpoint)
	cfg.OTELServiceName = getEnvString("OTEL_SERVICE_NAME", cfg.OTELServiceName)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.CacheBackend = getEnvString("CACHE_BACKEND", cfg.CacheBackend)
	cfg.RedisAddr = getEnvString("REDIS_ADDR", cfg.RedisAddr)
	cfg.CacheTTL = getEnvDuration("CACHE_TTL", cfg.CacheTTL)

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return nil, fmt.Errorf("неизвестный транспорт %q", cfg.Transport)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("чтение %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("разбор %s: %w", path, err)
	}
	return nil
}

// Addr возвращает адрес HTTP-сервера
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
