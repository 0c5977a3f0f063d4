package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"Backend-Questionnaire/src/utils"

	"github.com/joho/godotenv"
)

// Config is read once at process start.
type Config struct {
	MongoURI       string
	MongoDB        string
	OperatorSecret string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RedisURI       string
	IdempotencyTTL time.Duration
	AppPort        string
	AllowedOrigins string
	SeedOnStart    bool
}

var ErrMissingMongoURI = errors.New("MONGO_URI environment variable not set")

const generatedSecretLength = 64

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "QuestionnaireDB"),
		OperatorSecret: os.Getenv("OPERATOR_SECRET"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: getDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RedisURI:       os.Getenv("REDIS_URI"),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		AppPort:        getEnv("APP_URI", "8888"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SeedOnStart:    getBool("SEED_ON_START", false),
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	if cfg.JWTSecret == "" {
		secret, err := utils.GenerateRandomString(generatedSecretLength)
		if err != nil {
			return nil, fmt.Errorf("generate JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
		log.Println("⚠️ Warning: JWT_SECRET not set, using a per-process secret; access tokens die with the process")
	}
	if cfg.OperatorSecret == "" {
		log.Println("⚠️ Warning: OPERATOR_SECRET not set, questionnaire listing is locked")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Warning: invalid %s=%q, using %s", key, val, fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
