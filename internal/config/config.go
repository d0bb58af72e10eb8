package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	MongoURI   string
	MongoDB    string
	AppPort    string
	AppEnv     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		MongoURI:   os.Getenv("MONGO_URI"),
		MongoDB:    getOrDefault("MONGO_DB", "orders"),
		AppPort:    getOrDefault("APP_PORT", "8080"),
		AppEnv:     getOrDefault("APP_ENV", "development"),
	}

	if cfg.DBHost == "" && cfg.MongoURI == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
