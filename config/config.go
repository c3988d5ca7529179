package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const defaultConnectionLimit = 10

// Config holds everything resolved from the environment at startup.
// The handles built from it are passed down explicitly; nothing in this
// package keeps package-level state.
type Config struct {
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	DBAdminUser     string
	DBAdminPassword string

	ConnectionLimit int

	Port          string
	PublicBaseURL string

	RedisAddr   string
	KafkaBroker string
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL: firstEnv("DATABASE_URL", "DB_URL"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "restaurant_search"),

		ConnectionLimit: intEnv("DB_CONNECTION_LIMIT", defaultConnectionLimit),

		Port:        getenv("PORT", "3000"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
	}

	cfg.DBAdminUser = getenv("DB_ADMIN_USER", cfg.DBUser)
	cfg.DBAdminPassword = getenv("DB_ADMIN_PASSWORD", cfg.DBPassword)
	cfg.PublicBaseURL = getenv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getenv("REDIS_PORT", "6379")
	}

	return cfg
}

// DSN is the connection string for the application pool. A configured
// connection URL always wins over the discrete variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// AdminDSN targets the postgres maintenance database with the admin
// credentials, used only for the CREATE DATABASE step.
func (c *Config) AdminDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		c.DBHost, c.DBPort, c.DBAdminUser, c.DBAdminPassword)
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(cfg.ConnectionLimit)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(cfg *Config, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
