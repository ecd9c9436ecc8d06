package config

import (
	"os"
	"strconv"
	"time"
)

func init() {
	ServiceConfig = Load()
}

var ServiceConfig *Config

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

type MongoDBConfig struct {
	URI      string
	Database string
	PoolSize uint64
	Timeout  time.Duration
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "6700"),
			Host:         getEnv("HOST", "0.0.0.0"),
			ReadTimeout:  time.Duration(getIntEnv("READ_TIMEOUT_SECONDS", 15)) * time.Second,
			WriteTimeout: time.Duration(getIntEnv("WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
			AllowedOrigins: []string{
				getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
			},
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DB", "prep_service"),
			PoolSize: uint64(getIntEnv("MONGO_POOL_SIZE", 100)),
			Timeout:  time.Duration(getIntEnv("MONGO_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
