package config

import (
	"os"
	"strconv"

	"advisory-service/internal/models"
)

type AdvisoryServiceConfig struct {
	Port            string
	JWTSecret       string
	ScoringStrategy models.ScoringStrategy
	CacheTTLSeconds int
	PostgresCfg     PostgresConfig
	RedisCfg        RedisConfig
	RabbitMQCfg     RabbitMQConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Username string
	Password string
	Host     string
	Port     string
}

func New() *AdvisoryServiceConfig {
	return &AdvisoryServiceConfig{
		Port:            getEnvOrDefault("PORT", "8086"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
		ScoringStrategy: models.ScoringStrategy(getEnvOrDefault("SCORING_STRATEGY", string(models.StrategyWeighted))),
		CacheTTLSeconds: getEnvIntOrDefault("PREDICTION_CACHE_TTL_SECONDS", 600),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "advisory"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		RabbitMQCfg: RabbitMQConfig{
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
