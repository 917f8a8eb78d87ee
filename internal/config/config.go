package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RabbitURL        string
	RabbitExchange   string
	JWTSecret        string
	TokenExpiry      time.Duration
	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiModel      string
	GeneratorTimeout time.Duration
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SMTPFrom         string
	FEAddress        string
}

var ServiceConfig *Config

func init() {
	ServiceConfig = New()
}

// New loads the optional .env file and then snapshots the environment.
// Loading has to happen here rather than in main: ServiceConfig is built
// during package init, before main runs.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system env")
	}

	tokenDays, _ := strconv.Atoi(getEnv("TOKEN_EXPIRY_DAYS", "7"))
	genTimeout, _ := strconv.Atoi(getEnv("GENERATOR_TIMEOUT_SECONDS", "8"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DB", "aptirise"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PWD", ""),
		RedisDB:          redisDB,
		RabbitURL:        getEnv("RABBITMQ_URI", ""),
		RabbitExchange:   getEnv("RABBITMQ_EXCHANGE", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenExpiry:      time.Duration(tokenDays) * 24 * time.Hour,
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeneratorTimeout: time.Duration(genTimeout) * time.Second,
		SMTPHost:         getEnv("APTIRISE_SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnv("APTIRISE_SMTP_PORT", "587"),
		SMTPUser:         getEnv("APTIRISE_SMTP_USER", ""),
		SMTPPassword:     getEnv("APTIRISE_SMTP_PASSWORD", ""),
		SMTPFrom:         getEnv("APTIRISE_SMTP_EMAIL", ""),
		FEAddress:        getEnv("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if fallback == "" {
		log.Printf("[Config] %s not set", key)
	}
	return fallback
}
