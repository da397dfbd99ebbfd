package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Cache
	Events
	Server
	Bank
	Storage
	Log
}

type Cache struct {
	Host     string
	Port     string
	Password string
}

type Events struct {
	Brokers      []string
	Topic        string
	WorkersCount int
	BufferSize   int
	Reenqueue    bool
}

type Server struct {
	Port            string
	ShutdownTimeout time.Duration
}

type Bank struct {
	BaseURL  string
	Timeout  time.Duration
	MaxConns int
}

type Storage struct {
	Backend string
}

type Log struct {
	Level  string
	Format string
}

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

func NewConfig() *Config {
	return &Config{
		Cache: Cache{
			Host:     getEnvString("CACHE_HOST", "localhost"),
			Port:     getEnvString("CACHE_PORT", "6379"),
			Password: getEnvString("CACHE_PASSWORD", ""),
		},
		Events: Events{
			Brokers:      getEnvList("EVENTS_BROKERS"),
			Topic:        getEnvString("EVENTS_TOPIC", "payments.processed"),
			WorkersCount: getEnvInt("EVENTS_WORKERS_COUNT", 2),
			BufferSize:   getEnvInt("EVENTS_BUFFER_SIZE", 256),
			Reenqueue:    getEnvBool("EVENTS_REENQUEUE", false),
		},
		Server: Server{
			Port:            getEnvString("SERVER_PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Bank: Bank{
			BaseURL:  strings.TrimRight(getEnvString("BANK_BASE_URL", "http://localhost:8080"), "/"),
			Timeout:  getEnvDuration("BANK_TIMEOUT", 10*time.Second),
			MaxConns: getEnvInt("BANK_MAX_CONNS", 64),
		},
		Storage: Storage{
			Backend: getEnvString("STORAGE_BACKEND", StorageMemory),
		},
		Log: Log{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "json"),
		},
	}
}

// EventsEnabled reports whether a broker was configured for payment events.
func (c *Config) EventsEnabled() bool {
	return len(c.Events.Brokers) > 0
}

func getEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
