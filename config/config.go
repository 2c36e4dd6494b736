package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	JWTSecret string
	TokenTTL  time.Duration

	StorageURL    string
	StorageKey    string
	StorageBucket string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "inventory_management_db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      10 * time.Hour,
		StorageURL:    os.Getenv("STORAGE_URL"),
		StorageKey:    os.Getenv("STORAGE_KEY"),
		StorageBucket: getEnv("STORAGE_BUCKET", "documents"),
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}
	return cfg
}
