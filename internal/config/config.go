package config

import (
	"os"
	"strconv"
)

const ServiceName = "stocktrail"

// Config holds the things that change between environments. Everything has a
// local-development default except the Kafka broker, whose absence disables
// audit event publishing.
type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MySQLDSN    string
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string
	WorkerCount int
	QueueSize   int
}

func Load() *Config {
	return &Config{
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", ":8080"),
		GRPCAddr:    getEnvOrDefault("GRPC_ADDR", ":50051"),
		MySQLDSN:    getEnvOrDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/stocktrail?parseTime=true"),
		RedisAddr:   getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnvOrDefault("KAFKA_TOPIC", "stock-logs"),
		WorkerCount: getEnvIntOrDefault("WORKER_COUNT", 10),
		QueueSize:   getEnvIntOrDefault("QUEUE_SIZE", 10000),
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
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
