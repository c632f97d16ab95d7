package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Kafka    KafkaConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver       string // "postgres" or "sqlite"
	URL          string
	Username     string
	Password     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	AutoMigrate  bool
}

// JWTConfig holds the fixed signing parameters of issued tokens.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	ContactTopic string
}

type LogConfig struct {
	Dir   string // empty disables the file sink
	Level string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            normalizePort(getEnv("PORT", ":8080")),
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:          getEnv("DATABASE_URL", "postgres://localhost:5432/museum?sslmode=disable"),
			Username:     getEnv("DB_USERNAME", "museum"),
			Password:     getEnv("DB_PASSWORD", "museum"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
			MaxLifetime:  time.Duration(getEnvInt("DB_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
			AutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "secure_random_jwt_secret_for_museum_app"),
			Issuer:   getEnv("JWT_ISSUER", "http://0.0.0.0:8080/"),
			Audience: getEnv("JWT_AUDIENCE", "http://0.0.0.0:8080/museum"),
			TTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		},
		Kafka: KafkaConfig{
			Enabled:      getEnvBool("KAFKA_ENABLED", false),
			Brokers:      getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			ContactTopic: getEnv("KAFKA_TOPIC_CONTACT", "museum.contact.submitted"),
		},
		Log: LogConfig{
			Dir:   os.Getenv("LOG_DIR"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
