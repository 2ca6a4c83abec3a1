package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings the service needs at startup. It is built
// once from the environment and passed explicitly; there is no ambient
// configuration state.
type Config struct {
	// HTTP server
	AppHost  string
	AppPort  string
	LogLevel string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDatabase     string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis feed cache
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	FeedCacheTTL  time.Duration

	// Kafka activity events; empty address disables publishing
	KafkaAddr  string
	KafkaTopic string

	// S3-compatible image storage
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	// JWT
	JWTSecretKey  string
	JWTExpiration time.Duration
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns the host:port address of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads the env file at path (missing file is not an error) and
// builds the configuration from the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDatabase: getEnv("POSTGRES_DB", "photogram"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaAddr:  getEnv("KAFKA_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", "photogram.activity"),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "photogram"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
	}

	var err error
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	feedTTLSecond, err := getEnvInt("FEED_CACHE_TTL_SECOND", 30)
	if err != nil {
		return nil, err
	}
	cfg.FeedCacheTTL = time.Duration(feedTTLSecond) * time.Second

	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", int(7*24*time.Hour/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.JWTExpiration = time.Duration(jwtExpSecond) * time.Second

	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}
