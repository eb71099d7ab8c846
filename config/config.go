package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Which repository backend holds the calendar: "file", "postgres" or "redis"
	EventsBackend  string
	EventsFilePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Firebase Admin credentials (identity verification)
	FirebaseProjectID   string
	FirebaseClientEmail string
	FirebasePrivateKey  string

	// Optional HS256 secret used instead of Firebase in local development
	AuthDevSecret string

	KafkaBrokers []string
	KafkaTopic   string

	AllowedOrigins []string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		EventsBackend:  os.Getenv("EVENTS_BACKEND"),
		EventsFilePath: os.Getenv("EVENTS_FILE_PATH"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseClientEmail: os.Getenv("FIREBASE_CLIENT_EMAIL"),
		FirebasePrivateKey:  os.Getenv("FIREBASE_PRIVATE_KEY"),

		AuthDevSecret: os.Getenv("AUTH_DEV_SECRET"),

		KafkaTopic: os.Getenv("KAFKA_TOPIC"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EventsBackend == "" {
		cfg.EventsBackend = "file"
	}
	if cfg.EventsFilePath == "" {
		cfg.EventsFilePath = "./data/events.json"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "calendar.bookings"
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return cfg
}
